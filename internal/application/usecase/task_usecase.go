package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas y sus asignaciones.
type TaskUseCase struct {
	repo      repository.TaskRepository
	assignees repository.TaskAssigneeRepository
	refs      RefValidator
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, assignees repository.TaskAssigneeRepository, refs RefValidator) *TaskUseCase {
	return &TaskUseCase{repo: repo, assignees: assignees, refs: refs}
}

// Create crea una tarea. created_by toma el actor si no viene.
func (uc *TaskUseCase) Create(ctx context.Context, actorID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	status, err := normalizeTaskStatus(in.Status)
	if err != nil {
		return nil, err
	}
	refs, err := uc.refs.Prepare(ctx, integrity.EntityTask, integrity.OpCreate, integrity.Refs{
		"project_id": in.ProjectID,
		"created_by": in.CreatedBy,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	task := &entity.Task{
		ID:             newID(),
		Title:          in.Title,
		Description:    in.Description,
		ProjectID:      refs.Get("project_id"),
		CreatedBy:      refs.Get("created_by"),
		Status:         status,
		Priority:       in.Priority,
		EstimatedHours: in.EstimatedHours,
		Deadline:       in.Deadline.TimePtr(),
		CreatedAt:      t,
		UpdatedAt:      t,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	out := dto.FromTask(task)
	return &out, nil
}

// GetByID obtiene una tarea.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromTask(task)
	return &out, nil
}

// List lista tareas con paginación.
func (uc *TaskUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.TaskResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromTask), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProjectID != nil {
		if err := uc.refs.Validate(ctx, integrity.EntityTask, integrity.OpUpdate, integrity.Refs{"project_id": in.ProjectID}); err != nil {
			return nil, err
		}
		task.ProjectID = optionalRef(in.ProjectID)
	}
	if in.Status != nil {
		status, err := normalizeTaskStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.EstimatedHours != nil {
		task.EstimatedHours = in.EstimatedHours
	}
	if in.Deadline != nil {
		task.Deadline = in.Deadline.TimePtr()
	}
	task.UpdatedAt = now()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	out := dto.FromTask(task)
	return &out, nil
}

// Delete elimina la tarea; sus horas y asignaciones caen por FK en cascada.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// Assign asigna un usuario a una tarea. El par repetido devuelve ConflictError.
func (uc *TaskUseCase) Assign(ctx context.Context, in dto.TaskAssigneeRequest) (*dto.TaskAssigneeResponse, error) {
	if err := uc.refs.Validate(ctx, integrity.EntityTaskAssignee, integrity.OpCreate, integrity.Refs{
		"task_id": &in.TaskID,
		"user_id": &in.UserID,
	}); err != nil {
		return nil, err
	}
	a := &entity.TaskAssignee{ID: newID(), TaskID: in.TaskID, UserID: in.UserID, CreatedAt: now()}
	if err := uc.assignees.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.ConflictError{Message: "Assignment already exists"}
		}
		return nil, err
	}
	out := dto.FromTaskAssignee(a)
	return &out, nil
}

// Unassign elimina la asignación del par; si no existía devuelve NotFoundError.
func (uc *TaskUseCase) Unassign(ctx context.Context, in dto.TaskAssigneeRequest) error {
	if in.TaskID == "" || in.UserID == "" {
		return domain.Invalid("task_id", "", "task_id and user_id are required")
	}
	ok, err := uc.assignees.DeletePair(ctx, in.TaskID, in.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("task assignee", in.TaskID+"/"+in.UserID)
	}
	return nil
}

// ListAssignees lista los usuarios asignados a una tarea.
func (uc *TaskUseCase) ListAssignees(ctx context.Context, taskID string) ([]dto.TaskAssigneeResponse, error) {
	if _, err := uc.get(ctx, taskID); err != nil {
		return nil, err
	}
	list, err := uc.assignees.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromTaskAssignee), nil
}

// ListAllAssignees lista todas las asignaciones.
func (uc *TaskUseCase) ListAllAssignees(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.TaskAssigneeResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.assignees.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromTaskAssignee), limit, offset), nil
}

func (uc *TaskUseCase) get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.NotFound("task", id)
	}
	return task, nil
}
