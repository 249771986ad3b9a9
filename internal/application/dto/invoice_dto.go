package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest factura de cliente contra una orden de venta.
type CreateInvoiceRequest struct {
	SalesOrderID *string          `json:"sales_order_id"`
	CreatedBy    *string          `json:"created_by"`
	Status       string           `json:"status"`
	Amount       *decimal.Decimal `json:"amount"`
}

// UpdateInvoiceRequest actualización parcial.
type UpdateInvoiceRequest struct {
	SalesOrderID *string          `json:"sales_order_id"`
	Status       *string          `json:"status"`
	Amount       *decimal.Decimal `json:"amount"`
}

// InvoiceResponse salida de una factura de cliente.
type InvoiceResponse struct {
	ID           string          `json:"id"`
	SalesOrderID string          `json:"sales_order_id"`
	CreatedBy    *string         `json:"created_by"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateVendorBillRequest factura de proveedor contra una orden de compra.
type CreateVendorBillRequest struct {
	VendorID        *string          `json:"vendor_id"`
	PurchaseOrderID *string          `json:"purchase_order_id"`
	Status          string           `json:"status"`
	Amount          *decimal.Decimal `json:"amount"`
}

// UpdateVendorBillRequest actualización parcial.
type UpdateVendorBillRequest struct {
	VendorID        *string          `json:"vendor_id"`
	PurchaseOrderID *string          `json:"purchase_order_id"`
	Status          *string          `json:"status"`
	Amount          *decimal.Decimal `json:"amount"`
}

// VendorBillResponse salida de una factura de proveedor.
type VendorBillResponse struct {
	ID              string          `json:"id"`
	VendorID        string          `json:"vendor_id"`
	PurchaseOrderID string          `json:"purchase_order_id"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}
