package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proyecto (forma máquina).
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on_hold"
)

// Project representa un proyecto. ManagerID es opcional (NULL en DB).
type Project struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string
	StartDate   *time.Time
	Deadline    *time.Time
	Status      string
	Priority    string
	Budget      decimal.NullDecimal
	Tag         string
	ImageURL    string
	Progress    int // pista almacenada; el resumen financiero no la usa
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
