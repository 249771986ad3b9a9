package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusDraft estado inicial de órdenes de compra y venta.
const OrderStatusDraft = "draft"

// PurchaseOrder orden de compra a un proveedor (Partner con rol vendor).
type PurchaseOrder struct {
	ID               string
	VendorID         *string
	ProjectID        *string
	CreatedBy        *string
	ExpectedDelivery *time.Time
	Status           string
	TotalAmount      decimal.NullDecimal
	Tax              decimal.NullDecimal
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
