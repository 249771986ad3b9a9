package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Proyectos-api/pkg/config"
)

// setupTestDB usa una base dedicada (TEST_DATABASE_URL); sin ella los tests se saltan.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido: se omiten los tests contra PostgreSQL")
	}
	require.NoError(t, postgres.Migrate(dsn))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE TABLE users, projects, partners, products CASCADE`)
	require.NoError(t, err)
	return pool
}

type fixture struct {
	users      *postgres.UserRepo
	projects   *postgres.ProjectRepo
	tasks      *postgres.TaskRepo
	assignees  *postgres.TaskAssigneeRepo
	entries    *postgres.TimeEntryRepo
	expenses   *postgres.ExpenseRepo
	sales      *postgres.SalesOrderRepo
	purchases  *postgres.PurchaseOrderRepo
	tx         *postgres.TxRunner
	refs       *integrity.Validator
	projectID  string
	userID     string
	doneTaskID string
	salesID    string
	purchaseID string
}

// seedProject escenario: 4 tareas (1 done) con una asignación, 5 h a 50/h,
// un gasto de 200, una orden de venta de 1000 y una de compra.
func seedProject(t *testing.T, pool *pgxpool.Pool) *fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	f := &fixture{
		users:      postgres.NewUserRepository(pool),
		projects:   postgres.NewProjectRepository(pool),
		tasks:      postgres.NewTaskRepository(pool),
		assignees:  postgres.NewTaskAssigneeRepository(pool),
		entries:    postgres.NewTimeEntryRepository(pool),
		expenses:   postgres.NewExpenseRepository(pool),
		sales:      postgres.NewSalesOrderRepository(pool),
		purchases:  postgres.NewPurchaseOrderRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		refs:       integrity.NewValidator(postgres.NewReferenceResolver(pool)),
		projectID:  uuid.NewString(),
		userID:     uuid.NewString(),
		salesID:    uuid.NewString(),
		purchaseID: uuid.NewString(),
	}

	require.NoError(t, f.users.Create(ctx, &entity.User{
		ID: f.userID, Name: "Ana", Email: f.userID + "@test.local", PasswordHash: "x",
		Role: entity.RoleManager, HourlyRate: decimal.NewFromInt(50), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.projects.Create(ctx, &entity.Project{
		ID: f.projectID, Name: "Integración", ManagerID: &f.userID, Status: entity.ProjectPlanned, CreatedAt: now, UpdatedAt: now,
	}))
	for _, st := range []string{entity.TaskDone, entity.TaskNew, entity.TaskNew, entity.TaskBlocked} {
		id := uuid.NewString()
		require.NoError(t, f.tasks.Create(ctx, &entity.Task{
			ID: id, Title: st, ProjectID: &f.projectID, Status: st, CreatedAt: now, UpdatedAt: now,
		}))
		if st == entity.TaskDone {
			f.doneTaskID = id
		}
	}
	require.NoError(t, f.assignees.Create(ctx, &entity.TaskAssignee{
		ID: uuid.NewString(), TaskID: f.doneTaskID, UserID: f.userID, CreatedAt: now,
	}))
	require.NoError(t, f.entries.Create(ctx, &entity.TimeEntry{
		ID: uuid.NewString(), TaskID: &f.doneTaskID, UserID: &f.userID, Hours: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.expenses.Create(ctx, &entity.Expense{
		ID: uuid.NewString(), ProjectID: &f.projectID, UserID: &f.userID,
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(200)), Status: "pending", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.sales.Create(ctx, &entity.SalesOrder{
		ID: f.salesID, OrderNo: "SO-1", ProjectID: &f.projectID, Status: "draft",
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000)), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.purchases.Create(ctx, &entity.PurchaseOrder{
		ID: f.purchaseID, ProjectID: &f.projectID, Status: "draft", CreatedAt: now, UpdatedAt: now,
	}))
	return f
}

func TestPostgres_ResumenDeProyecto(t *testing.T) {
	pool := setupTestDB(t)
	f := seedProject(t, pool)

	entries, err := f.entries.ListByProject(context.Background(), f.projectID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	uc := analytics.NewProjectSummaryUseCase(f.projects, f.tasks, f.sales, f.expenses, f.entries, f.users)
	got, err := uc.Compute(context.Background(), f.projectID)
	require.NoError(t, err)

	assert.Equal(t, 25, got.Progress)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 1, got.Done)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(1000)), got.Revenue.String())
	assert.True(t, got.Cost.Equal(decimal.NewFromInt(450)), got.Cost.String())
}

func TestPostgres_GetByIDs(t *testing.T) {
	pool := setupTestDB(t)
	f := seedProject(t, pool)

	got, err := f.users.GetByIDs(context.Background(), []string{f.userID, uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[f.userID].HourlyRate.Equal(decimal.NewFromInt(50)))

	empty, err := f.users.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostgres_BorradoEnCascada(t *testing.T) {
	pool := setupTestDB(t)
	f := seedProject(t, pool)
	ctx := context.Background()

	res, err := usecase.NewProjectUseCase(f.projects, f.tasks, f.refs, f.tx).Delete(ctx, f.projectID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, res.TimeEntries)
	assert.EqualValues(t, 1, res.Assignees)
	assert.EqualValues(t, 4, res.Tasks)
	assert.EqualValues(t, 1, res.Expenses)
	assert.EqualValues(t, 1, res.SalesOrders)
	assert.EqualValues(t, 1, res.PurchaseOrders)

	p, err := f.projects.GetByID(ctx, f.projectID)
	require.NoError(t, err)
	assert.Nil(t, p)

	so, err := f.sales.GetByID(ctx, f.salesID)
	require.NoError(t, err)
	require.NotNil(t, so)
	assert.Nil(t, so.ProjectID)

	po, err := f.purchases.GetByID(ctx, f.purchaseID)
	require.NoError(t, err)
	require.NotNil(t, po)
	assert.Nil(t, po.ProjectID)

	var remaining int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM tasks`).Scan(&remaining))
	assert.Zero(t, remaining)
}

func TestPostgres_CascadaRevierteAnteError(t *testing.T) {
	pool := setupTestDB(t)
	f := seedProject(t, pool)
	ctx := context.Background()
	boom := errors.New("fallo a mitad de la cascada")

	err := f.tx.RunProjectDelete(ctx, func(repo repository.ProjectCascadeRepository) error {
		_, err := repo.DeleteTimeEntriesByProject(ctx, f.projectID)
		require.NoError(t, err)
		_, err = repo.DeleteAssigneesByProject(ctx, f.projectID)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	entries, err := f.entries.ListByProject(ctx, f.projectID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assignees, err := f.assignees.ListByTask(ctx, f.doneTaskID)
	require.NoError(t, err)
	assert.Len(t, assignees, 1)
}
