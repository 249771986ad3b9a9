package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// TimeEntryFilter filtros opcionales del listado. Campos vacíos/nil no filtran.
type TimeEntryFilter struct {
	UserID string
	TaskID string
	From   *time.Time
	To     *time.Time
}

// TimeEntryRepository define el puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(ctx context.Context, e *entity.TimeEntry) error
	GetByID(ctx context.Context, id string) (*entity.TimeEntry, error)
	Update(ctx context.Context, e *entity.TimeEntry) error
	List(ctx context.Context, f TimeEntryFilter, limit, offset int) ([]*entity.TimeEntry, error)
	// ListByProject devuelve las entradas cuyas tareas pertenecen al proyecto (join con tasks).
	ListByProject(ctx context.Context, projectID string) ([]*entity.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}
