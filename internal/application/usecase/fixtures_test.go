package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

// env store en memoria y casos de uso cableados como en cmd/api.
type env struct {
	store     *memory.Store
	projects  *usecase.ProjectUseCase
	tasks     *usecase.TaskUseCase
	sales     *usecase.SalesOrderUseCase
	purchases *usecase.PurchaseOrderUseCase
	items     *usecase.LineItemUseCase
	entries   *usecase.TimeEntryUseCase
	expenses  *usecase.ExpenseUseCase
	users     *usecase.UserUseCase
}

func newEnv() *env {
	s := memory.NewStore()
	refs := integrity.NewValidator(s.Resolver())
	return &env{
		store:     s,
		projects:  usecase.NewProjectUseCase(s.Projects(), s.Tasks(), refs, s.TxRunner()),
		tasks:     usecase.NewTaskUseCase(s.Tasks(), s.Assignees(), refs),
		sales:     usecase.NewSalesOrderUseCase(s.SalesOrders(), refs),
		purchases: usecase.NewPurchaseOrderUseCase(s.PurchaseOrders(), refs),
		items:     usecase.NewLineItemUseCase(s.LineItems(), s.Products(), refs),
		entries:   usecase.NewTimeEntryUseCase(s.TimeEntries(), refs),
		expenses:  usecase.NewExpenseUseCase(s.Expenses(), refs),
		users:     usecase.NewUserUseCase(s.Users(), s.Assignees()),
	}
}

func (e *env) user(t *testing.T, rate int64) string {
	t.Helper()
	id := uuid.NewString()
	now := time.Now().UTC()
	require.NoError(t, e.store.Users().Create(context.Background(), &entity.User{
		ID: id, Name: "u", Email: id + "@test.local", PasswordHash: "x",
		Role: entity.RoleTeamMember, HourlyRate: decimal.NewFromInt(rate), CreatedAt: now, UpdatedAt: now,
	}))
	return id
}

func (e *env) partner(t *testing.T, role string) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, e.store.Partners().Create(context.Background(), &entity.Partner{ID: id, Name: "p", Role: role}))
	return id
}

func (e *env) product(t *testing.T, unitPrice, cost *decimal.Decimal) string {
	t.Helper()
	id := uuid.NewString()
	p := &entity.Product{ID: id, Name: "prod", IsAvailable: true}
	if unitPrice != nil {
		p.UnitPrice = decimal.NewNullDecimal(*unitPrice)
	}
	if cost != nil {
		p.Cost = decimal.NewNullDecimal(*cost)
	}
	require.NoError(t, e.store.Products().Create(context.Background(), p))
	return id
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }

func intp(n int) *int { return &n }
