package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// Nombres de los pasos de cascada tal como quedan en Store.Steps.
const (
	StepTimeEntries    = "time_entries"
	StepAssignees      = "task_assignees"
	StepTasks          = "tasks"
	StepExpenses       = "expenses"
	StepSalesOrders    = "sales_orders"
	StepPurchaseOrders = "purchase_orders"
	StepProject        = "project"
)

// TxRunner simula la transacción: si fn falla se restaura el estado previo.
type TxRunner struct{ s *Store }

func (r *TxRunner) RunProjectDelete(ctx context.Context, fn func(repo repository.ProjectCascadeRepository) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	steps := len(r.s.Steps)
	if err := fn(&cascadeRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		r.s.Steps = r.s.Steps[:steps]
		return err
	}
	return nil
}

// cascadeRepo corre con el lock del TxRunner ya tomado.
type cascadeRepo struct{ s *Store }

func (c *cascadeRepo) step(name string) error {
	if c.s.FailStep == name {
		return fmt.Errorf("fallo simulado en %s", name)
	}
	c.s.Steps = append(c.s.Steps, name)
	return nil
}

func (c *cascadeRepo) projectTasks(projectID string) map[string]bool {
	ids := make(map[string]bool)
	for _, t := range c.s.tasks.all(func(t entity.Task) bool { return eq(t.ProjectID, projectID) }) {
		ids[t.ID] = true
	}
	return ids
}

func (c *cascadeRepo) DeleteTimeEntriesByProject(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepTimeEntries); err != nil {
		return 0, err
	}
	tasks := c.projectTasks(projectID)
	var n int64
	for _, e := range c.s.timeEntries.all(func(e entity.TimeEntry) bool { return e.TaskID != nil && tasks[*e.TaskID] }) {
		c.s.timeEntries.remove(e.ID)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DeleteAssigneesByProject(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepAssignees); err != nil {
		return 0, err
	}
	tasks := c.projectTasks(projectID)
	var n int64
	for _, a := range c.s.assignees.all(func(a entity.TaskAssignee) bool { return tasks[a.TaskID] }) {
		c.s.assignees.remove(a.ID)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DeleteTasksByProject(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepTasks); err != nil {
		return 0, err
	}
	var n int64
	for id := range c.projectTasks(projectID) {
		c.s.tasks.remove(id)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DeleteExpensesByProject(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepExpenses); err != nil {
		return 0, err
	}
	var n int64
	for _, e := range c.s.expenses.all(func(e entity.Expense) bool { return eq(e.ProjectID, projectID) }) {
		c.s.expenses.remove(e.ID)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DetachSalesOrders(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepSalesOrders); err != nil {
		return 0, err
	}
	var n int64
	for _, o := range c.s.sales.all(func(o entity.SalesOrder) bool { return eq(o.ProjectID, projectID) }) {
		o.ProjectID = nil
		c.s.sales.put(o.ID, o)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DetachPurchaseOrders(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepPurchaseOrders); err != nil {
		return 0, err
	}
	var n int64
	for _, o := range c.s.purchases.all(func(o entity.PurchaseOrder) bool { return eq(o.ProjectID, projectID) }) {
		o.ProjectID = nil
		c.s.purchases.put(o.ID, o)
		n++
	}
	return n, nil
}

func (c *cascadeRepo) DeleteProject(_ context.Context, projectID string) (int64, error) {
	if err := c.step(StepProject); err != nil {
		return 0, err
	}
	if c.s.projects.remove(projectID) {
		return 1, nil
	}
	return 0, nil
}

// Resolver implementa integrity.Resolver sobre el store.
type Resolver struct{ s *Store }

func (r *Resolver) Resolve(_ context.Context, kind integrity.Kind, id string) (*integrity.Reference, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ok bool
	ref := &integrity.Reference{ID: id}
	switch kind {
	case integrity.KindUser:
		_, ok = r.s.users.get(id)
	case integrity.KindProject:
		_, ok = r.s.projects.get(id)
	case integrity.KindTask:
		_, ok = r.s.tasks.get(id)
	case integrity.KindPartner:
		var p entity.Partner
		p, ok = r.s.partners.get(id)
		ref.Role = p.Role
	case integrity.KindProduct:
		_, ok = r.s.products.get(id)
	case integrity.KindPurchaseOrder:
		_, ok = r.s.purchases.get(id)
	case integrity.KindSalesOrder:
		_, ok = r.s.sales.get(id)
	case integrity.KindInvoice:
		_, ok = r.s.invoices.get(id)
	case integrity.KindVendorBill:
		_, ok = r.s.bills.get(id)
	default:
		return nil, fmt.Errorf("resolve: tipo desconocido %q", kind)
	}
	if !ok {
		return nil, nil
	}
	return ref, nil
}

// AnalyticsRepo mismos agregados que la consulta SQL del dashboard.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) GetPortfolioTotals(_ context.Context) (*repository.PortfolioTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := &repository.PortfolioTotals{
		ProjectsByStatus: make(map[string]int),
		TasksByStatus:    make(map[string]int),
	}
	for _, p := range r.s.projects.rows {
		out.ProjectsByStatus[p.Status]++
	}
	for _, t := range r.s.tasks.rows {
		out.TasksByStatus[t.Status]++
	}
	for _, o := range r.s.sales.rows {
		if o.ProjectID != nil && o.TotalAmount.Valid {
			out.Revenue = out.Revenue.Add(o.TotalAmount.Decimal)
		}
	}
	for _, e := range r.s.expenses.rows {
		if e.ProjectID != nil && e.Amount.Valid {
			out.ExpenseTotal = out.ExpenseTotal.Add(e.Amount.Decimal)
		}
	}
	out.LaborCost = decimal.Zero
	for _, e := range r.s.timeEntries.rows {
		if e.TaskID == nil || e.UserID == nil {
			continue
		}
		t, ok := r.s.tasks.get(*e.TaskID)
		if !ok || t.ProjectID == nil {
			continue
		}
		if u, ok := r.s.users.get(*e.UserID); ok {
			out.LaborCost = out.LaborCost.Add(e.Hours.Mul(u.HourlyRate))
		}
	}
	for _, inv := range r.s.invoices.rows {
		if inv.Status == entity.DocumentStatusPending {
			out.PendingInvoices++
		}
	}
	return out, nil
}
