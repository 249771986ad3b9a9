package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio del catálogo.
// UnitPrice y Cost son opcionales; el subtotal de las líneas usa UnitPrice y cae a Cost.
type Product struct {
	ID          string
	Name        string
	Description string
	UnitPrice   decimal.NullDecimal
	Cost        decimal.NullDecimal
	Unit        string
	Category    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
