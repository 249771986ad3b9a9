package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest alta de gasto. UserID por defecto es el usuario autenticado.
type CreateExpenseRequest struct {
	ProjectID   *string          `json:"project_id"`
	UserID      *string          `json:"user_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        *Date            `json:"date"`
	Status      string           `json:"status"`
}

// UpdateExpenseRequest actualización parcial.
type UpdateExpenseRequest struct {
	ProjectID   *string          `json:"project_id"`
	UserID      *string          `json:"user_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *Date            `json:"date"`
	Status      *string          `json:"status"`
}

// ExpenseQuery filtros del listado.
type ExpenseQuery struct {
	ProjectID string `query:"project_id"`
	UserID    string `query:"user_id"`
	Status    string `query:"status"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string              `json:"id"`
	ProjectID   *string             `json:"project_id"`
	UserID      *string             `json:"user_id"`
	Amount      decimal.NullDecimal `json:"amount"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Date        *Date               `json:"date"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
