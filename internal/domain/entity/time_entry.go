package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry horas registradas por un usuario, opcionalmente sobre una tarea.
type TimeEntry struct {
	ID          string
	TaskID      *string
	UserID      *string
	Date        *time.Time
	Hours       decimal.Decimal
	Description string
	Billable    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
