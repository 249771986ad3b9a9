package dto

import "time"

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	Title          string  `json:"title" validate:"required,min=1,max=300"`
	Description    string  `json:"description"`
	ProjectID      *string `json:"project_id"`
	CreatedBy      *string `json:"created_by"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	EstimatedHours *int    `json:"estimated_hours" validate:"omitempty,min=0"`
	Deadline       *Date   `json:"deadline"`
}

// UpdateTaskRequest actualización parcial; nil = sin cambios.
type UpdateTaskRequest struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=300"`
	Description    *string `json:"description"`
	ProjectID      *string `json:"project_id"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	EstimatedHours *int    `json:"estimated_hours" validate:"omitempty,min=0"`
	Deadline       *Date   `json:"deadline"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ProjectID      *string   `json:"project_id"`
	CreatedBy      *string   `json:"created_by"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	Priority       string    `json:"priority"`
	EstimatedHours *int      `json:"estimated_hours"`
	Deadline       *Date     `json:"deadline"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TaskAssigneeRequest par tarea↔usuario.
type TaskAssigneeRequest struct {
	TaskID string `json:"task_id" query:"task_id" validate:"required"`
	UserID string `json:"user_id" query:"user_id" validate:"required"`
}

// TaskAssigneeResponse asignación creada o listada.
type TaskAssigneeResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
