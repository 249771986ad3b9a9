package entity

import "github.com/shopspring/decimal"

// ItemKind tipo de documento al que pertenece una línea.
type ItemKind string

const (
	SalesOrderItem    ItemKind = "sales_order_item"
	PurchaseOrderItem ItemKind = "purchase_order_item"
	InvoiceItem       ItemKind = "invoice_item"
	VendorBillItem    ItemKind = "vendor_bill_item"
)

// ItemKinds todos los tipos de línea soportados.
var ItemKinds = []ItemKind{SalesOrderItem, PurchaseOrderItem, InvoiceItem, VendorBillItem}

// LineItem línea (documento, producto, cantidad, subtotal). UnitPrice solo aplica a órdenes de compra.
type LineItem struct {
	ID         string
	Kind       ItemKind
	DocumentID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.NullDecimal
	SubTotal   decimal.Decimal
}
