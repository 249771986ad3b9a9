package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// ProjectSummaryUseCase calcula el resumen financiero de un proyecto.
//
// Tareas, órdenes de venta, gastos y horas se cargan en paralelo (errgroup);
// los usuarios de las horas se resuelven en una sola consulta por ids distintos.
type ProjectSummaryUseCase struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	sales    repository.SalesOrderRepository
	expenses repository.ExpenseRepository
	entries  repository.TimeEntryRepository
	users    repository.UserRepository
}

// NewProjectSummaryUseCase construye el caso de uso.
func NewProjectSummaryUseCase(
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	sales repository.SalesOrderRepository,
	expenses repository.ExpenseRepository,
	timeEntries repository.TimeEntryRepository,
	users repository.UserRepository,
) *ProjectSummaryUseCase {
	return &ProjectSummaryUseCase{
		projects: projects,
		tasks:    tasks,
		sales:    sales,
		expenses: expenses,
		entries:  timeEntries,
		users:    users,
	}
}

// Compute carga los datos del proyecto y devuelve el Summary. Proyecto inexistente → NotFoundError.
func (uc *ProjectSummaryUseCase) Compute(ctx context.Context, projectID string) (*Summary, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("summary: proyecto: %w", err)
	}
	if project == nil {
		return nil, domain.NotFound("project", projectID)
	}

	var (
		tasks    []*entity.Task
		orders   []*entity.SalesOrder
		expenses []*entity.Expense
		entries  []*entity.TimeEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tasks, err = uc.tasks.ListByProject(gctx, projectID); err != nil {
			return fmt.Errorf("summary: tareas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orders, err = uc.sales.ListByProject(gctx, projectID); err != nil {
			return fmt.Errorf("summary: órdenes de venta: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = uc.expenses.ListByProject(gctx, projectID); err != nil {
			return fmt.Errorf("summary: gastos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if entries, err = uc.entries.ListByProject(gctx, projectID); err != nil {
			return fmt.Errorf("summary: horas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	users := map[string]*entity.User{}
	if ids := LaborUserIDs(entries); len(ids) > 0 {
		if users, err = uc.users.GetByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("summary: usuarios: %w", err)
		}
	}

	return Compute(project, tasks, orders, expenses, entries, users), nil
}

// GetSummary devuelve el resumen con la forma que consume el front-end.
func (uc *ProjectSummaryUseCase) GetSummary(ctx context.Context, projectID string) (*dto.ProjectSummaryResponse, error) {
	s, err := uc.Compute(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectSummaryResponse{
		Project:    dto.FromProject(s.Project),
		Progress:   s.Progress,
		TaskCounts: dto.TaskCounts{Total: s.Total, Done: s.Done},
		Revenue:    dto.NewNumber(s.Revenue),
		Cost:       dto.NewNumber(s.Cost),
	}, nil
}
