package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// ExpenseFilter filtros opcionales del listado de gastos.
type ExpenseFilter struct {
	ProjectID string
	UserID    string
	Status    string
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context, f ExpenseFilter, limit, offset int) ([]*entity.Expense, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}
