package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatusPending estado inicial de facturas de cliente y de proveedor.
const DocumentStatusPending = "pending"

// Invoice factura de cliente emitida contra una orden de venta.
type Invoice struct {
	ID           string
	SalesOrderID string
	CreatedBy    *string
	Status       string
	Amount       decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
