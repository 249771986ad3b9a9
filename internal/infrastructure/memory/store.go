// Package memory implementa los puertos de persistencia en memoria.
// Reproduce las reglas de borrado y unicidad del esquema PostgreSQL; se usa en tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// table filas por id en orden de inserción.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// all filas que cumplen keep, en orden de inserción.
func (t *table[T]) all(keep func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	c := &table[T]{rows: make(map[string]T, len(t.rows)), order: append([]string(nil), t.order...)}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	return c
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

// Store estado completo en memoria. Las filas se guardan por valor; lecturas y escrituras copian.
type Store struct {
	mu sync.RWMutex

	users       *table[entity.User]
	projects    *table[entity.Project]
	tasks       *table[entity.Task]
	assignees   *table[entity.TaskAssignee]
	timeEntries *table[entity.TimeEntry]
	expenses    *table[entity.Expense]
	partners    *table[entity.Partner]
	products    *table[entity.Product]
	purchases   *table[entity.PurchaseOrder]
	sales       *table[entity.SalesOrder]
	invoices    *table[entity.Invoice]
	bills       *table[entity.VendorBill]
	items       map[entity.ItemKind]*table[entity.LineItem]

	// Steps registra los pasos de cascada ejecutados, en orden.
	Steps []string
	// FailStep hace fallar el paso de cascada con ese nombre (para probar el rollback).
	FailStep string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	s := &Store{
		users:       newTable[entity.User](),
		projects:    newTable[entity.Project](),
		tasks:       newTable[entity.Task](),
		assignees:   newTable[entity.TaskAssignee](),
		timeEntries: newTable[entity.TimeEntry](),
		expenses:    newTable[entity.Expense](),
		partners:    newTable[entity.Partner](),
		products:    newTable[entity.Product](),
		purchases:   newTable[entity.PurchaseOrder](),
		sales:       newTable[entity.SalesOrder](),
		invoices:    newTable[entity.Invoice](),
		bills:       newTable[entity.VendorBill](),
		items:       make(map[entity.ItemKind]*table[entity.LineItem]),
	}
	for _, k := range entity.ItemKinds {
		s.items[k] = newTable[entity.LineItem]()
	}
	return s
}

// snapshot copia superficial de todas las tablas (los valores son structs).
type snapshot struct {
	users       *table[entity.User]
	projects    *table[entity.Project]
	tasks       *table[entity.Task]
	assignees   *table[entity.TaskAssignee]
	timeEntries *table[entity.TimeEntry]
	expenses    *table[entity.Expense]
	purchases   *table[entity.PurchaseOrder]
	sales       *table[entity.SalesOrder]
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		users:       s.users.clone(),
		projects:    s.projects.clone(),
		tasks:       s.tasks.clone(),
		assignees:   s.assignees.clone(),
		timeEntries: s.timeEntries.clone(),
		expenses:    s.expenses.clone(),
		purchases:   s.purchases.clone(),
		sales:       s.sales.clone(),
	}
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.projects = snap.projects
	s.tasks = snap.tasks
	s.assignees = snap.assignees
	s.timeEntries = snap.timeEntries
	s.expenses = snap.expenses
	s.purchases = snap.purchases
	s.sales = snap.sales
}

// Repositorios por entidad; todos comparten el mismo Store.
func (s *Store) Users() *UserRepo                   { return &UserRepo{s} }
func (s *Store) Projects() *ProjectRepo             { return &ProjectRepo{s} }
func (s *Store) Tasks() *TaskRepo                   { return &TaskRepo{s} }
func (s *Store) Assignees() *AssigneeRepo           { return &AssigneeRepo{s} }
func (s *Store) TimeEntries() *TimeEntryRepo        { return &TimeEntryRepo{s} }
func (s *Store) Expenses() *ExpenseRepo             { return &ExpenseRepo{s} }
func (s *Store) Partners() *PartnerRepo             { return &PartnerRepo{s} }
func (s *Store) Products() *ProductRepo             { return &ProductRepo{s} }
func (s *Store) PurchaseOrders() *PurchaseOrderRepo { return &PurchaseOrderRepo{s} }
func (s *Store) SalesOrders() *SalesOrderRepo       { return &SalesOrderRepo{s} }
func (s *Store) Invoices() *InvoiceRepo             { return &InvoiceRepo{s} }
func (s *Store) VendorBills() *VendorBillRepo       { return &VendorBillRepo{s} }
func (s *Store) LineItems() *LineItemRepo           { return &LineItemRepo{s} }
func (s *Store) Analytics() *AnalyticsRepo          { return &AnalyticsRepo{s} }
func (s *Store) Resolver() *Resolver                { return &Resolver{s} }
func (s *Store) TxRunner() *TxRunner                { return &TxRunner{s} }

var (
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.ProjectRepository       = (*ProjectRepo)(nil)
	_ repository.TaskRepository          = (*TaskRepo)(nil)
	_ repository.TaskAssigneeRepository  = (*AssigneeRepo)(nil)
	_ repository.TimeEntryRepository     = (*TimeEntryRepo)(nil)
	_ repository.ExpenseRepository       = (*ExpenseRepo)(nil)
	_ repository.PartnerRepository       = (*PartnerRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.SalesOrderRepository    = (*SalesOrderRepo)(nil)
	_ repository.InvoiceRepository       = (*InvoiceRepo)(nil)
	_ repository.VendorBillRepository    = (*VendorBillRepo)(nil)
	_ repository.LineItemRepository      = (*LineItemRepo)(nil)
	_ repository.AnalyticsRepository     = (*AnalyticsRepo)(nil)
	_ integrity.Resolver                 = (*Resolver)(nil)
)

func ptr[T any](v T) *T { return &v }

func ptrs[T any](list []T) []*T {
	out := make([]*T, len(list))
	for i := range list {
		out[i] = ptr(list[i])
	}
	return out
}

func eq(p *string, v string) bool { return p != nil && *p == v }

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.users.rows {
		if o.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users.get(id); ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users.get(id); ok {
			out[id] = ptr(u)
		}
	}
	return out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users.all(nil) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, o := range r.s.users.rows {
		if id != u.ID && o.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if _, ok := r.s.users.get(u.ID); ok {
		r.s.users.put(u.ID, *u)
	}
	return nil
}

func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.users.all(nil), limit, offset)), nil
}

// Delete aplica las mismas reglas que las FK: asignaciones en cascada, resto a NULL.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.users.remove(id) {
		return nil
	}
	for _, a := range r.s.assignees.all(func(a entity.TaskAssignee) bool { return a.UserID == id }) {
		r.s.assignees.remove(a.ID)
	}
	for _, p := range r.s.projects.all(func(p entity.Project) bool { return eq(p.ManagerID, id) }) {
		p.ManagerID = nil
		r.s.projects.put(p.ID, p)
	}
	for _, t := range r.s.tasks.all(func(t entity.Task) bool { return eq(t.CreatedBy, id) }) {
		t.CreatedBy = nil
		r.s.tasks.put(t.ID, t)
	}
	for _, e := range r.s.timeEntries.all(func(e entity.TimeEntry) bool { return eq(e.UserID, id) }) {
		e.UserID = nil
		r.s.timeEntries.put(e.ID, e)
	}
	for _, e := range r.s.expenses.all(func(e entity.Expense) bool { return eq(e.UserID, id) }) {
		e.UserID = nil
		r.s.expenses.put(e.ID, e)
	}
	return nil
}

// ProjectRepo proyectos en memoria.
type ProjectRepo struct{ s *Store }

func (r *ProjectRepo) Create(_ context.Context, p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects.put(p.ID, *p)
	return nil
}

func (r *ProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.projects.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProjectRepo) Update(_ context.Context, p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects.get(p.ID); ok {
		r.s.projects.put(p.ID, *p)
	}
	return nil
}

func (r *ProjectRepo) List(_ context.Context, limit, offset int) ([]*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.projects.all(nil), limit, offset)), nil
}

// TaskRepo tareas en memoria.
type TaskRepo struct{ s *Store }

func (r *TaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks.put(t.ID, *t)
	return nil
}

func (r *TaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.tasks.get(id); ok {
		return &t, nil
	}
	return nil, nil
}

func (r *TaskRepo) Update(_ context.Context, t *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tasks.get(t.ID); ok {
		r.s.tasks.put(t.ID, *t)
	}
	return nil
}

func (r *TaskRepo) List(_ context.Context, limit, offset int) ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.tasks.all(nil), limit, offset)), nil
}

func (r *TaskRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(r.s.tasks.all(func(t entity.Task) bool { return eq(t.ProjectID, projectID) })), nil
}

// Delete borra la tarea con sus horas y asignaciones.
func (r *TaskRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteTaskLocked(id)
	return nil
}

func (s *Store) deleteTaskLocked(id string) {
	s.tasks.remove(id)
	for _, a := range s.assignees.all(func(a entity.TaskAssignee) bool { return a.TaskID == id }) {
		s.assignees.remove(a.ID)
	}
	for _, e := range s.timeEntries.all(func(e entity.TimeEntry) bool { return eq(e.TaskID, id) }) {
		s.timeEntries.remove(e.ID)
	}
}

// AssigneeRepo asignaciones en memoria con unicidad del par (task, user).
type AssigneeRepo struct{ s *Store }

func (r *AssigneeRepo) Create(_ context.Context, a *entity.TaskAssignee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.assignees.rows {
		if o.TaskID == a.TaskID && o.UserID == a.UserID {
			return domain.ErrDuplicate
		}
	}
	r.s.assignees.put(a.ID, *a)
	return nil
}

func (r *AssigneeRepo) List(_ context.Context, limit, offset int) ([]*entity.TaskAssignee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.assignees.all(nil), limit, offset)), nil
}

func (r *AssigneeRepo) ListByTask(_ context.Context, taskID string) ([]*entity.TaskAssignee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(r.s.assignees.all(func(a entity.TaskAssignee) bool { return a.TaskID == taskID })), nil
}

func (r *AssigneeRepo) DeletePair(_ context.Context, taskID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.assignees.all(nil) {
		if a.TaskID == taskID && a.UserID == userID {
			return r.s.assignees.remove(a.ID), nil
		}
	}
	return false, nil
}

func (r *AssigneeRepo) CountByUser(_ context.Context, userID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.assignees.all(func(a entity.TaskAssignee) bool { return a.UserID == userID })), nil
}

// TimeEntryRepo horas en memoria.
type TimeEntryRepo struct{ s *Store }

func (r *TimeEntryRepo) Create(_ context.Context, e *entity.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.timeEntries.put(e.ID, *e)
	return nil
}

func (r *TimeEntryRepo) GetByID(_ context.Context, id string) (*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if e, ok := r.s.timeEntries.get(id); ok {
		return &e, nil
	}
	return nil, nil
}

func (r *TimeEntryRepo) Update(_ context.Context, e *entity.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.timeEntries.get(e.ID); ok {
		r.s.timeEntries.put(e.ID, *e)
	}
	return nil
}

func (r *TimeEntryRepo) List(_ context.Context, f repository.TimeEntryFilter, limit, offset int) ([]*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := r.s.timeEntries.all(func(e entity.TimeEntry) bool {
		if f.UserID != "" && !eq(e.UserID, f.UserID) {
			return false
		}
		if f.TaskID != "" && !eq(e.TaskID, f.TaskID) {
			return false
		}
		if f.From != nil && (e.Date == nil || e.Date.Before(*f.From)) {
			return false
		}
		if f.To != nil && (e.Date == nil || e.Date.After(*f.To)) {
			return false
		}
		return true
	})
	sort.SliceStable(list, func(i, j int) bool { return dateAfter(list[i].Date, list[j].Date) })
	return ptrs(page(list, limit, offset)), nil
}

// dateAfter orden descendente con las fechas nulas al final.
func dateAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

func (r *TimeEntryRepo) ListByProject(_ context.Context, projectID string) ([]*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(r.s.timeEntries.all(func(e entity.TimeEntry) bool {
		if e.TaskID == nil {
			return false
		}
		t, ok := r.s.tasks.get(*e.TaskID)
		return ok && eq(t.ProjectID, projectID)
	})), nil
}

func (r *TimeEntryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.timeEntries.remove(id)
	return nil
}

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct{ s *Store }

func (r *ExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses.put(e.ID, *e)
	return nil
}

func (r *ExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if e, ok := r.s.expenses.get(id); ok {
		return &e, nil
	}
	return nil, nil
}

func (r *ExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.expenses.get(e.ID); ok {
		r.s.expenses.put(e.ID, *e)
	}
	return nil
}

func (r *ExpenseRepo) List(_ context.Context, f repository.ExpenseFilter, limit, offset int) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := r.s.expenses.all(func(e entity.Expense) bool {
		return (f.ProjectID == "" || eq(e.ProjectID, f.ProjectID)) &&
			(f.UserID == "" || eq(e.UserID, f.UserID)) &&
			(f.Status == "" || e.Status == f.Status)
	})
	return ptrs(page(list, limit, offset)), nil
}

func (r *ExpenseRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(r.s.expenses.all(func(e entity.Expense) bool { return eq(e.ProjectID, projectID) })), nil
}

func (r *ExpenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses.remove(id)
	return nil
}
