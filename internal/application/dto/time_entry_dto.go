package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTimeEntryRequest registro de horas. UserID por defecto es el usuario autenticado.
type CreateTimeEntryRequest struct {
	TaskID      *string          `json:"task_id"`
	UserID      *string          `json:"user_id"`
	Date        *Date            `json:"date"`
	Hours       *decimal.Decimal `json:"hours" validate:"required"`
	Description string           `json:"description"`
	Billable    *bool            `json:"billable"`
}

// UpdateTimeEntryRequest actualización parcial.
type UpdateTimeEntryRequest struct {
	TaskID      *string          `json:"task_id"`
	UserID      *string          `json:"user_id"`
	Date        *Date            `json:"date"`
	Hours       *decimal.Decimal `json:"hours"`
	Description *string          `json:"description"`
	Billable    *bool            `json:"billable"`
}

// TimeEntryQuery filtros del listado (from/to en formato 2006-01-02).
type TimeEntryQuery struct {
	UserID string `query:"user_id"`
	TaskID string `query:"task_id"`
	From   string `query:"from"`
	To     string `query:"to"`
}

// TimeEntryResponse salida de una entrada de horas.
type TimeEntryResponse struct {
	ID          string          `json:"id"`
	TaskID      *string         `json:"task_id"`
	UserID      *string         `json:"user_id"`
	Date        *Date           `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
	Billable    bool            `json:"billable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
