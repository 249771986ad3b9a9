package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// ProjectTxRunner ejecuta el borrado en cascada de un proyecto dentro de una transacción.
type ProjectTxRunner interface {
	RunProjectDelete(ctx context.Context, fn func(repo repository.ProjectCascadeRepository) error) error
}

// RefValidator valida FK y aplica los defaults del actor antes de escribir.
type RefValidator interface {
	Prepare(ctx context.Context, ent integrity.Entity, op integrity.Op, refs integrity.Refs, actorID string) (integrity.Refs, error)
	Validate(ctx context.Context, ent integrity.Entity, op integrity.Op, refs integrity.Refs) error
}
