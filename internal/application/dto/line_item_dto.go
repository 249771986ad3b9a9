package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// DocumentRef campos de documento padre; solo se usa el que corresponde al tipo de línea.
type DocumentRef struct {
	SalesOrderID    *string `json:"sales_order_id,omitempty"`
	PurchaseOrderID *string `json:"purchase_order_id,omitempty"`
	InvoiceID       *string `json:"invoice_id,omitempty"`
	VendorBillID    *string `json:"vendor_bill_id,omitempty"`
}

// For devuelve el id de documento del tipo indicado.
func (d DocumentRef) For(kind entity.ItemKind) *string {
	switch kind {
	case entity.SalesOrderItem:
		return d.SalesOrderID
	case entity.PurchaseOrderItem:
		return d.PurchaseOrderID
	case entity.InvoiceItem:
		return d.InvoiceID
	case entity.VendorBillItem:
		return d.VendorBillID
	}
	return nil
}

// DocumentRefOf construye la referencia con el campo del tipo indicado.
func DocumentRefOf(kind entity.ItemKind, id string) DocumentRef {
	var d DocumentRef
	switch kind {
	case entity.SalesOrderItem:
		d.SalesOrderID = &id
	case entity.PurchaseOrderItem:
		d.PurchaseOrderID = &id
	case entity.InvoiceItem:
		d.InvoiceID = &id
	case entity.VendorBillItem:
		d.VendorBillID = &id
	}
	return d
}

// CreateLineItemRequest línea de documento. quantity por defecto 1; sub_total explícito gana.
type CreateLineItemRequest struct {
	DocumentRef
	ProductID *string          `json:"product_id"`
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	SubTotal  *decimal.Decimal `json:"sub_total"`
}

// UpdateLineItemRequest actualización parcial. Sin sub_total explícito se recalcula
// si cambian producto o cantidad.
type UpdateLineItemRequest struct {
	DocumentRef
	ProductID *string          `json:"product_id"`
	Quantity  *int             `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	SubTotal  *decimal.Decimal `json:"sub_total"`
}

// LineItemResponse salida de una línea; el documento sale con el nombre de campo de su tipo.
type LineItemResponse struct {
	ID string `json:"id"`
	DocumentRef
	ProductID string              `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	SubTotal  decimal.Decimal     `json:"sub_total"`
}
