package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder orden de venta a un cliente (Partner con rol customer). TotalAmount alimenta el ingreso del proyecto.
type SalesOrder struct {
	ID          string
	OrderNo     string
	PartnerID   *string
	ProjectID   *string
	CreatedBy   *string
	OrderDate   *time.Time
	Status      string
	TotalAmount decimal.NullDecimal
	Tax         decimal.NullDecimal
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
