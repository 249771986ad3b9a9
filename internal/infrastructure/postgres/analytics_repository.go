package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de cartera.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetPortfolioTotals agrega estados, ingresos y costos de todos los proyectos.
// Ingreso: total_amount de órdenes de venta con proyecto. Mano de obra: horas × hourly_rate
// de entradas cuya tarea pertenece a un proyecto.
func (r *AnalyticsRepo) GetPortfolioTotals(ctx context.Context) (*repository.PortfolioTotals, error) {
	out := &repository.PortfolioTotals{}

	var err error
	if out.ProjectsByStatus, err = r.countByStatus(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`); err != nil {
		return nil, fmt.Errorf("analytics.GetPortfolioTotals: projects: %w", err)
	}
	if out.TasksByStatus, err = r.countByStatus(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`); err != nil {
		return nil, fmt.Errorf("analytics.GetPortfolioTotals: tasks: %w", err)
	}

	const totals = `
	SELECT
	    (SELECT COALESCE(SUM(total_amount), 0) FROM sales_orders WHERE project_id IS NOT NULL)  AS revenue,
	    (SELECT COALESCE(SUM(amount), 0)       FROM expenses     WHERE project_id IS NOT NULL)  AS expense_total,
	    (SELECT COALESCE(SUM(te.hours * u.hourly_rate), 0)
	       FROM time_entries te
	       JOIN tasks t ON t.id = te.task_id AND t.project_id IS NOT NULL
	       JOIN users u ON u.id = te.user_id)                                                    AS labor_cost,
	    (SELECT COUNT(*) FROM invoices WHERE status = $1)                                        AS pending_invoices`

	err = r.q.QueryRow(ctx, totals, entity.DocumentStatusPending).Scan(
		&out.Revenue,
		&out.ExpenseTotal,
		&out.LaborCost,
		&out.PendingInvoices,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPortfolioTotals: %w", err)
	}
	return out, nil
}

func (r *AnalyticsRepo) countByStatus(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	var (
		status string
		n      int
	)
	counts := make(map[string]int)
	_, err = pgx.ForEachRow(rows, []any{&status, &n}, func() error {
		counts[status] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
