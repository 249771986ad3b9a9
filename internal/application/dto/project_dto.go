package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. Status admite forma máquina o etiqueta.
type CreateProjectRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	ManagerID   *string          `json:"manager_id"`
	StartDate   *Date            `json:"start_date"`
	Deadline    *Date            `json:"deadline"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	Budget      *decimal.Decimal `json:"budget"`
	Tag         string           `json:"tag"`
	ImageURL    string           `json:"image_url"`
	Progress    *int             `json:"progress" validate:"omitempty,min=0,max=100"`
}

// UpdateProjectRequest actualización parcial; nil = sin cambios.
type UpdateProjectRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	ManagerID   *string          `json:"manager_id"`
	StartDate   *Date            `json:"start_date"`
	Deadline    *Date            `json:"deadline"`
	Status      *string          `json:"status"`
	Priority    *string          `json:"priority"`
	Budget      *decimal.Decimal `json:"budget"`
	Tag         *string          `json:"tag"`
	ImageURL    *string          `json:"image_url"`
	Progress    *int             `json:"progress" validate:"omitempty,min=0,max=100"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ManagerID   *string             `json:"manager_id"`
	StartDate   *Date               `json:"start_date"`
	Deadline    *Date               `json:"deadline"`
	Status      string              `json:"status"`
	StatusLabel string              `json:"status_label"`
	Priority    string              `json:"priority"`
	Budget      decimal.NullDecimal `json:"budget"`
	Tag         string              `json:"tag"`
	ImageURL    string              `json:"image_url"`
	Progress    int                 `json:"progress"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TaskCounts conteo de tareas del resumen.
type TaskCounts struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// ProjectSummaryResponse resumen financiero. El consumidor calcula profit = revenue - cost.
type ProjectSummaryResponse struct {
	Project    ProjectResponse `json:"project"`
	Progress   int             `json:"progress"`
	TaskCounts TaskCounts      `json:"taskCounts"`
	Revenue    Number          `json:"revenue"`
	Cost       Number          `json:"cost"`
}
