package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

func TestProjectCreate_ManagerPorDefectoEsElActor(t *testing.T) {
	e := newEnv()
	actor := e.user(t, 0)

	p, err := e.projects.Create(context.Background(), actor, dto.CreateProjectRequest{Name: "Web"})
	require.NoError(t, err)
	require.NotNil(t, p.ManagerID)
	assert.Equal(t, actor, *p.ManagerID)
	assert.Equal(t, entity.ProjectPlanned, p.Status)
}

func TestProjectCreate_EstadoPorEtiqueta(t *testing.T) {
	e := newEnv()
	p, err := e.projects.Create(context.Background(), "", dto.CreateProjectRequest{Name: "Web", Status: "In Progress"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectInProgress, p.Status)
	assert.Equal(t, "In Progress", p.StatusLabel)
}

func TestProjectCreate_ManagerInexistente(t *testing.T) {
	e := newEnv()
	_, err := e.projects.Create(context.Background(), "", dto.CreateProjectRequest{Name: "Web", ManagerID: str("00000000-0000-0000-0000-00000000dead")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectGet_Inexistente(t *testing.T) {
	e := newEnv()
	_, err := e.projects.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar un proyecto elimina sus tareas; leerlas después da NOT_FOUND.
func TestProjectDelete_CascadaYTareasNoEncontradas(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	actor := e.user(t, 50)
	customer := e.partner(t, entity.PartnerCustomer)

	p, err := e.projects.Create(ctx, actor, dto.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)
	var taskIDs []string
	for i := 0; i < 2; i++ {
		task, err := e.tasks.Create(ctx, actor, dto.CreateTaskRequest{Title: "t", ProjectID: &p.ID})
		require.NoError(t, err)
		taskIDs = append(taskIDs, task.ID)
	}
	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: taskIDs[0], UserID: actor})
	require.NoError(t, err)
	entry, err := e.entries.Create(ctx, actor, dto.CreateTimeEntryRequest{TaskID: &taskIDs[0], Hours: dec("2")})
	require.NoError(t, err)
	_, err = e.expenses.Create(ctx, actor, dto.CreateExpenseRequest{ProjectID: &p.ID, Amount: dec("10")})
	require.NoError(t, err)
	so, err := e.sales.Create(ctx, actor, dto.CreateSalesOrderRequest{PartnerID: &customer, ProjectID: &p.ID})
	require.NoError(t, err)

	res, err := e.projects.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.TimeEntries)
	assert.Equal(t, int64(1), res.Assignees)
	assert.Equal(t, int64(2), res.Tasks)
	assert.Equal(t, int64(1), res.Expenses)
	assert.Equal(t, int64(1), res.SalesOrders)
	assert.Equal(t, []string{
		memory.StepTimeEntries, memory.StepAssignees, memory.StepTasks, memory.StepExpenses,
		memory.StepSalesOrders, memory.StepPurchaseOrders, memory.StepProject,
	}, e.store.Steps)

	for _, id := range taskIDs {
		_, err := e.tasks.GetByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	_, err = e.entries.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.projects.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La orden de venta sobrevive, sin proyecto.
	got, err := e.sales.GetByID(ctx, so.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProjectID)
}

func TestProjectDelete_FalloRevierteTodo(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	p, err := e.projects.Create(ctx, "", dto.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)
	task, err := e.tasks.Create(ctx, "", dto.CreateTaskRequest{Title: "t", ProjectID: &p.ID})
	require.NoError(t, err)

	e.store.FailStep = memory.StepSalesOrders
	_, err = e.projects.Delete(ctx, p.ID)
	require.Error(t, err)

	_, err = e.tasks.GetByID(ctx, task.ID)
	assert.NoError(t, err, "la tarea debe seguir tras el rollback")
	_, err = e.projects.GetByID(ctx, p.ID)
	assert.NoError(t, err)
	assert.Empty(t, e.store.Steps)
}

func TestProjectDelete_Inexistente(t *testing.T) {
	e := newEnv()
	_, err := e.projects.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.store.Steps)
}

func TestProjectUpdate_EstadoInvalido(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	p, err := e.projects.Create(ctx, "", dto.CreateProjectRequest{Name: "P"})
	require.NoError(t, err)

	_, err = e.projects.Update(ctx, p.ID, dto.UpdateProjectRequest{Status: str("archived")})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "status", fe.Field)
}
