package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectColumns = `id, name, description, manager_id, start_date, deadline, status, priority,
	budget, tag, image_url, progress, created_at, updated_at`

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.StartDate, &p.Deadline, &p.Status, &p.Priority,
		&p.Budget, &p.Tag, &p.ImageURL, &p.Progress, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ManagerID, p.StartDate, p.Deadline, p.Status, p.Priority,
		p.Budget, p.Tag, p.ImageURL, p.Progress, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	row := r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return one(row, scanProject, "get project")
}

// Update actualiza un proyecto.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, manager_id = $4, start_date = $5, deadline = $6,
			status = $7, priority = $8, budget = $9, tag = $10, image_url = $11, progress = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.ManagerID, p.StartDate, p.Deadline,
		p.Status, p.Priority, p.Budget, p.Tag, p.ImageURL, p.Progress, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista proyectos con paginación, los más recientes primero.
func (r *ProjectRepo) List(ctx context.Context, limit, offset int) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return collect(rows, scanProject)
}
