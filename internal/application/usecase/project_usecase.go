package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// ProjectUseCase casos de uso de proyectos, incluido el borrado en cascada.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	tasks    repository.TaskRepository
	refs     RefValidator
	txRunner ProjectTxRunner
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, tasks repository.TaskRepository, refs RefValidator, txRunner ProjectTxRunner) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, tasks: tasks, refs: refs, txRunner: txRunner}
}

// CascadeResult filas afectadas por cada paso del borrado.
type CascadeResult struct {
	TimeEntries    int64
	Assignees      int64
	Tasks          int64
	Expenses       int64
	SalesOrders    int64 // desvinculadas
	PurchaseOrders int64 // desvinculadas
}

// Create crea un proyecto. manager_id toma el actor si no viene.
func (uc *ProjectUseCase) Create(ctx context.Context, actorID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	status, err := normalizeProjectStatus(in.Status)
	if err != nil {
		return nil, err
	}
	refs, err := uc.refs.Prepare(ctx, integrity.EntityProject, integrity.OpCreate, integrity.Refs{
		"manager_id": in.ManagerID,
	}, actorID)
	if err != nil {
		return nil, err
	}
	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
	}
	t := now()
	p := &entity.Project{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		ManagerID:   refs.Get("manager_id"),
		StartDate:   in.StartDate.TimePtr(),
		Deadline:    in.Deadline.TimePtr(),
		Status:      status,
		Priority:    in.Priority,
		Budget:      nullDecimal(in.Budget),
		Tag:         in.Tag,
		ImageURL:    in.ImageURL,
		Progress:    progress,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProject(p)
	return &out, nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProject(p)
	return &out, nil
}

// List lista proyectos con paginación.
func (uc *ProjectUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.ProjectResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromProject), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ManagerID != nil {
		if err := uc.refs.Validate(ctx, integrity.EntityProject, integrity.OpUpdate, integrity.Refs{"manager_id": in.ManagerID}); err != nil {
			return nil, err
		}
		p.ManagerID = optionalRef(in.ManagerID)
	}
	if in.Status != nil {
		status, err := normalizeProjectStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate.TimePtr()
	}
	if in.Deadline != nil {
		p.Deadline = in.Deadline.TimePtr()
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}
	if in.Budget != nil {
		p.Budget = nullDecimal(in.Budget)
	}
	if in.Tag != nil {
		p.Tag = *in.Tag
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	p.UpdatedAt = now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProject(p)
	return &out, nil
}

// ListTasks lista las tareas del proyecto.
func (uc *ProjectUseCase) ListTasks(ctx context.Context, projectID string) ([]dto.TaskResponse, error) {
	if _, err := uc.get(ctx, projectID); err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return dto.MapList(tasks, dto.FromTask), nil
}

// Delete borra el proyecto y sus dependientes en una sola transacción, en este orden:
// horas de sus tareas, asignaciones, tareas, gastos; órdenes de venta y de compra se
// desvinculan (project_id = NULL); por último el proyecto. Facturas no se tocan.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) (*CascadeResult, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	var res CascadeResult
	err := uc.txRunner.RunProjectDelete(ctx, func(repo repository.ProjectCascadeRepository) error {
		steps := []struct {
			name string
			run  func(context.Context, string) (int64, error)
			dst  *int64
		}{
			{"horas", repo.DeleteTimeEntriesByProject, &res.TimeEntries},
			{"asignaciones", repo.DeleteAssigneesByProject, &res.Assignees},
			{"tareas", repo.DeleteTasksByProject, &res.Tasks},
			{"gastos", repo.DeleteExpensesByProject, &res.Expenses},
			{"órdenes de venta", repo.DetachSalesOrders, &res.SalesOrders},
			{"órdenes de compra", repo.DetachPurchaseOrders, &res.PurchaseOrders},
		}
		for _, s := range steps {
			n, err := s.run(ctx, id)
			if err != nil {
				return fmt.Errorf("borrar proyecto %s: %s: %w", id, s.name, err)
			}
			*s.dst = n
		}
		n, err := repo.DeleteProject(ctx, id)
		if err != nil {
			return fmt.Errorf("borrar proyecto %s: %w", id, err)
		}
		if n == 0 {
			return domain.NotFound("project", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (uc *ProjectUseCase) get(ctx context.Context, id string) (*entity.Project, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("project", id)
	}
	return p, nil
}
