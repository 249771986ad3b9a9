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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, project_id, user_id, amount, category, description, date, status, created_at, updated_at`

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(&e.ID, &e.ProjectID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ProjectID, e.UserID, e.Amount, e.Category, e.Description, e.Date, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	row := r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	return one(row, scanExpense, "get expense")
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	query := `
		UPDATE expenses SET project_id = $2, user_id = $3, amount = $4, category = $5, description = $6,
			date = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ProjectID, e.UserID, e.Amount, e.Category, e.Description, e.Date, e.Status, e.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// List lista gastos aplicando los filtros presentes.
func (r *ExpenseRepo) List(ctx context.Context, f repository.ExpenseFilter, limit, offset int) ([]*entity.Expense, error) {
	var (
		where []string
		args  []any
	)
	for _, c := range []struct {
		col string
		val string
	}{{"project_id", f.ProjectID}, {"user_id", f.UserID}, {"status", f.Status}} {
		if c.val == "" {
			continue
		}
		args = append(args, c.val)
		where = append(where, fmt.Sprintf("%s = $%d", c.col, len(args)))
	}
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return collect(rows, scanExpense)
}

// ListByProject todos los gastos del proyecto.
func (r *ExpenseRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list expenses by project: %w", err)
	}
	return collect(rows, scanExpense)
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
