package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.ProjectCascadeRepository = (*ProjectCascadeRepo)(nil)

// ProjectCascadeRepo pasos del borrado de un proyecto; se construye con la tx del TxRunner.
type ProjectCascadeRepo struct {
	q Querier
}

// NewProjectCascadeRepository construye el repo sobre una tx.
func NewProjectCascadeRepository(q Querier) *ProjectCascadeRepo {
	return &ProjectCascadeRepo{q: q}
}

func (r *ProjectCascadeRepo) exec(ctx context.Context, what, query, projectID string) (int64, error) {
	tag, err := r.q.Exec(ctx, query, projectID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteTimeEntriesByProject borra las horas registradas en tareas del proyecto.
func (r *ProjectCascadeRepo) DeleteTimeEntriesByProject(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "delete time entries", `
		DELETE FROM time_entries
		WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1)`, projectID)
}

// DeleteAssigneesByProject borra las asignaciones de las tareas del proyecto.
func (r *ProjectCascadeRepo) DeleteAssigneesByProject(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "delete assignees", `
		DELETE FROM task_assignees
		WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1)`, projectID)
}

// DeleteTasksByProject borra las tareas del proyecto.
func (r *ProjectCascadeRepo) DeleteTasksByProject(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "delete tasks", `DELETE FROM tasks WHERE project_id = $1`, projectID)
}

// DeleteExpensesByProject borra los gastos imputados al proyecto.
func (r *ProjectCascadeRepo) DeleteExpensesByProject(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "delete expenses", `DELETE FROM expenses WHERE project_id = $1`, projectID)
}

// DetachSalesOrders deja las órdenes de venta sin proyecto.
func (r *ProjectCascadeRepo) DetachSalesOrders(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "detach sales orders",
		`UPDATE sales_orders SET project_id = NULL, updated_at = now() WHERE project_id = $1`, projectID)
}

// DetachPurchaseOrders deja las órdenes de compra sin proyecto.
func (r *ProjectCascadeRepo) DetachPurchaseOrders(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "detach purchase orders",
		`UPDATE purchase_orders SET project_id = NULL, updated_at = now() WHERE project_id = $1`, projectID)
}

// DeleteProject borra la fila del proyecto.
func (r *ProjectCascadeRepo) DeleteProject(ctx context.Context, projectID string) (int64, error) {
	return r.exec(ctx, "delete project", `DELETE FROM projects WHERE id = $1`, projectID)
}
