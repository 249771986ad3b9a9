package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var (
	_ repository.TaskRepository         = (*TaskRepo)(nil)
	_ repository.TaskAssigneeRepository = (*TaskAssigneeRepo)(nil)
)

const taskColumns = `id, title, description, project_id, created_by, status, priority, estimated_hours, deadline, created_at, updated_at`

// TaskRepo implementación de TaskRepository.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.CreatedBy, &t.Status, &t.Priority,
		&t.EstimatedHours, &t.Deadline, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.ProjectID, t.CreatedBy, t.Status, t.Priority,
		t.EstimatedHours, t.Deadline, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	row := r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return one(row, scanTask, "get task")
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, project_id = $4, created_by = $5, status = $6,
			priority = $7, estimated_hours = $8, deadline = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.ProjectID, t.CreatedBy, t.Status,
		t.Priority, t.EstimatedHours, t.Deadline, t.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// List lista tareas con paginación.
func (r *TaskRepo) List(ctx context.Context, limit, offset int) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return collect(rows, scanTask)
}

// ListByProject devuelve todas las tareas del proyecto.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}
	return collect(rows, scanTask)
}

// Delete elimina una tarea; horas y asignaciones caen por ON DELETE CASCADE.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// TaskAssigneeRepo implementación de TaskAssigneeRepository.
type TaskAssigneeRepo struct {
	q Querier
}

// NewTaskAssigneeRepository construye el adaptador.
func NewTaskAssigneeRepository(q Querier) *TaskAssigneeRepo {
	return &TaskAssigneeRepo{q: q}
}

func scanAssignee(row pgx.Row) (*entity.TaskAssignee, error) {
	var a entity.TaskAssignee
	if err := row.Scan(&a.ID, &a.TaskID, &a.UserID, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la asignación; el par repetido devuelve domain.ErrDuplicate.
func (r *TaskAssigneeRepo) Create(ctx context.Context, a *entity.TaskAssignee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO task_assignees (id, task_id, user_id, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.TaskID, a.UserID, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert task assignee: %w", err)
	}
	return nil
}

// List lista todas las asignaciones.
func (r *TaskAssigneeRepo) List(ctx context.Context, limit, offset int) ([]*entity.TaskAssignee, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, task_id, user_id, created_at FROM task_assignees
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list task assignees: %w", err)
	}
	return collect(rows, scanAssignee)
}

// ListByTask lista las asignaciones de una tarea.
func (r *TaskAssigneeRepo) ListByTask(ctx context.Context, taskID string) ([]*entity.TaskAssignee, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, task_id, user_id, created_at FROM task_assignees
		WHERE task_id = $1 ORDER BY created_at`, taskID)
	if err != nil {
		return nil, fmt.Errorf("list assignees by task: %w", err)
	}
	return collect(rows, scanAssignee)
}

// DeletePair quita la asignación; false si no existía.
func (r *TaskAssigneeRepo) DeletePair(ctx context.Context, taskID, userID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM task_assignees WHERE task_id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("delete task assignee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByUser cuenta las tareas asignadas al usuario.
func (r *TaskAssigneeRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM task_assignees WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assignees by user: %w", err)
	}
	return n, nil
}
