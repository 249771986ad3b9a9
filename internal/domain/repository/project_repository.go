package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	List(ctx context.Context, limit, offset int) ([]*entity.Project, error)
}

// ProjectCascadeRepository pasos del borrado de un proyecto. Se usa siempre atado a una tx.
type ProjectCascadeRepository interface {
	DeleteTimeEntriesByProject(ctx context.Context, projectID string) (int64, error)
	DeleteAssigneesByProject(ctx context.Context, projectID string) (int64, error)
	DeleteTasksByProject(ctx context.Context, projectID string) (int64, error)
	DeleteExpensesByProject(ctx context.Context, projectID string) (int64, error)
	DetachSalesOrders(ctx context.Context, projectID string) (int64, error)
	DetachPurchaseOrders(ctx context.Context, projectID string) (int64, error)
	DeleteProject(ctx context.Context, projectID string) (int64, error)
}
