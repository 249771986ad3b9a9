package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Cost        *decimal.Decimal `json:"cost"`
	Unit        string           `json:"unit"`
	Category    string           `json:"category"`
	IsAvailable *bool            `json:"is_available"`
}

// UpdateProductRequest actualización parcial.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Cost        *decimal.Decimal `json:"cost"`
	Unit        *string          `json:"unit"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"is_available"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	UnitPrice   decimal.NullDecimal `json:"unit_price"`
	Cost        decimal.NullDecimal `json:"cost"`
	Unit        string              `json:"unit"`
	Category    string              `json:"category"`
	IsAvailable bool                `json:"is_available"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
