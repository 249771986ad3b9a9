package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatusPending estado inicial de un gasto.
const ExpenseStatusPending = "pending"

// Expense gasto imputado (opcionalmente) a un proyecto. UserID es quien lo registró.
type Expense struct {
	ID          string
	ProjectID   *string
	UserID      *string
	Amount      decimal.NullDecimal
	Category    string
	Description string
	Date        *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
