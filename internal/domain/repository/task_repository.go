package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	List(ctx context.Context, limit, offset int) ([]*entity.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskAssigneeRepository define el puerto de persistencia para las asignaciones usuario↔tarea.
// Create devuelve domain.ErrDuplicate si el par (task_id, user_id) ya existe.
type TaskAssigneeRepository interface {
	Create(ctx context.Context, a *entity.TaskAssignee) error
	List(ctx context.Context, limit, offset int) ([]*entity.TaskAssignee, error)
	ListByTask(ctx context.Context, taskID string) ([]*entity.TaskAssignee, error)
	// DeletePair devuelve false si el par no existía.
	DeletePair(ctx context.Context, taskID, userID string) (bool, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
