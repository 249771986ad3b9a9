package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

func newSummaryUseCase(s *memory.Store) *analytics.ProjectSummaryUseCase {
	return analytics.NewProjectSummaryUseCase(s.Projects(), s.Tasks(), s.SalesOrders(), s.Expenses(), s.TimeEntries(), s.Users())
}

// 4 tareas (1 done), una orden de 1000, un gasto de 200 y 5 h a 50/h.
func TestProjectSummary_Completo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	now := time.Now()
	projectID, userID := "p-1", "u-1"

	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: userID, Email: "a@b.c", HourlyRate: decimal.NewFromInt(50)}))
	require.NoError(t, s.Projects().Create(ctx, &entity.Project{ID: projectID, Name: "P", Status: entity.ProjectInProgress, CreatedAt: now}))
	for i, st := range []string{entity.TaskDone, entity.TaskNew, entity.TaskNew, entity.TaskBlocked} {
		id := string(rune('a' + i))
		require.NoError(t, s.Tasks().Create(ctx, &entity.Task{ID: id, ProjectID: &projectID, Status: st}))
	}
	taskID := "a"
	require.NoError(t, s.SalesOrders().Create(ctx, &entity.SalesOrder{
		ID: "so-1", ProjectID: &projectID, TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}))
	require.NoError(t, s.Expenses().Create(ctx, &entity.Expense{
		ID: "ex-1", ProjectID: &projectID, Amount: decimal.NewNullDecimal(decimal.NewFromInt(200)),
	}))
	require.NoError(t, s.TimeEntries().Create(ctx, &entity.TimeEntry{
		ID: "te-1", TaskID: &taskID, UserID: &userID, Hours: decimal.NewFromInt(5),
	}))

	got, err := newSummaryUseCase(s).GetSummary(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Progress)
	assert.Equal(t, 4, got.TaskCounts.Total)
	assert.Equal(t, 1, got.TaskCounts.Done)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(1000)), got.Revenue.String())
	assert.True(t, got.Cost.Equal(decimal.NewFromInt(450)), got.Cost.String())
	assert.Equal(t, projectID, got.Project.ID)
}

func TestProjectSummary_SinDatos(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Projects().Create(ctx, &entity.Project{ID: "p", Status: entity.ProjectCompleted}))

	got, err := newSummaryUseCase(s).GetSummary(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.Cost.IsZero())
}

func TestProjectSummary_ProyectoInexistente(t *testing.T) {
	_, err := newSummaryUseCase(memory.NewStore()).GetSummary(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboard_Totales(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := "p"
	require.NoError(t, s.Projects().Create(ctx, &entity.Project{ID: p, Status: entity.ProjectInProgress}))
	require.NoError(t, s.SalesOrders().Create(ctx, &entity.SalesOrder{ID: "so", ProjectID: &p, TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(70))}))
	require.NoError(t, s.Invoices().Create(ctx, &entity.Invoice{ID: "inv", SalesOrderID: "so", Status: entity.DocumentStatusPending}))

	got, err := analytics.NewDashboardUseCase(s.Analytics()).GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PendingInvoices)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(70)))
}
