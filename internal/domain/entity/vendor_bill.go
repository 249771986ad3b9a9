package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorBill factura de proveedor asociada a una orden de compra.
type VendorBill struct {
	ID              string
	VendorID        string
	PurchaseOrderID string
	Status          string
	Amount          decimal.Decimal
	CreatedAt       time.Time
}
