package entity

import "time"

// Estados de tarea (forma máquina).
const (
	TaskNew        = "new"
	TaskInProgress = "in_progress"
	TaskBlocked    = "blocked"
	TaskDone       = "done"
)

// Task representa una tarea de un proyecto.
type Task struct {
	ID             string
	Title          string
	Description    string
	ProjectID      *string
	CreatedBy      *string
	Status         string
	Priority       string
	EstimatedHours *int
	Deadline       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskAssignee asignación usuario↔tarea; el par (TaskID, UserID) es único.
type TaskAssignee struct {
	ID        string
	TaskID    string
	UserID    string
	CreatedAt time.Time
}
