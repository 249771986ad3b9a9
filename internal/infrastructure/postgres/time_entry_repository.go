package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

const timeEntryColumns = `id, task_id, user_id, date, hours, description, billable, created_at, updated_at`

// TimeEntryRepo implementación de TimeEntryRepository.
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador.
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

func scanTimeEntry(row pgx.Row) (*entity.TimeEntry, error) {
	var e entity.TimeEntry
	err := row.Scan(&e.ID, &e.TaskID, &e.UserID, &e.Date, &e.Hours, &e.Description, &e.Billable, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste una entrada de horas.
func (r *TimeEntryRepo) Create(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.TaskID, e.UserID, e.Date, e.Hours, e.Description, e.Billable, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *TimeEntryRepo) GetByID(ctx context.Context, id string) (*entity.TimeEntry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id)
	return one(row, scanTimeEntry, "get time entry")
}

// Update actualiza una entrada.
func (r *TimeEntryRepo) Update(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET task_id = $2, user_id = $3, date = $4, hours = $5, description = $6,
			billable = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.TaskID, e.UserID, e.Date, e.Hours, e.Description, e.Billable, e.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// List lista entradas aplicando los filtros presentes.
func (r *TimeEntryRepo) List(ctx context.Context, f repository.TimeEntryFilter, limit, offset int) ([]*entity.TimeEntry, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.TaskID != "" {
		add("task_id = $%d", f.TaskID)
	}
	if f.From != nil {
		add("date >= $%d", *f.From)
	}
	if f.To != nil {
		add("date <= $%d", *f.To)
	}
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY date DESC NULLS LAST, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return collect(rows, scanTimeEntry)
}

// ListByProject entradas cuyas tareas pertenecen al proyecto.
func (r *TimeEntryRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.TimeEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT te.id, te.task_id, te.user_id, te.date, te.hours, te.description, te.billable, te.created_at, te.updated_at
		FROM time_entries te
		JOIN tasks t ON t.id = te.task_id
		WHERE t.project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list time entries by project: %w", err)
	}
	return collect(rows, scanTimeEntry)
}

// Delete elimina una entrada.
func (r *TimeEntryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}
