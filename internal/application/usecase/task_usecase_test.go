package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

func TestAssign_DosVecesEsConflicto(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	u := e.user(t, 0)
	task, err := e.tasks.Create(ctx, u, dto.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)

	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u})
	require.NoError(t, err)

	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Assignment already exists", err.Error())

	list, err := e.tasks.ListAssignees(ctx, task.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAssign_UsuarioInexistente(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	task, err := e.tasks.Create(ctx, "", dto.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)

	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: "ghost"})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "user_id", fe.Field)
}

func TestUnassign_ParInexistente(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	u := e.user(t, 0)
	task, err := e.tasks.Create(ctx, u, dto.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)

	err = e.tasks.Unassign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u})
	require.NoError(t, err)
	require.NoError(t, e.tasks.Unassign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u}))

	count, err := e.users.TaskCount(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 0, count.TaskCount)
}

func TestTaskCreate_CreatedByPorDefectoYEstado(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	u := e.user(t, 0)

	task, err := e.tasks.Create(ctx, u, dto.CreateTaskRequest{Title: "T", Status: "Done"})
	require.NoError(t, err)
	require.NotNil(t, task.CreatedBy)
	assert.Equal(t, u, *task.CreatedBy)
	assert.Equal(t, entity.TaskDone, task.Status)
}

func TestTaskCreate_ProyectoInexistente(t *testing.T) {
	e := newEnv()
	_, err := e.tasks.Create(context.Background(), "", dto.CreateTaskRequest{Title: "T", ProjectID: str("missing")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskDelete_ArrastraHorasYAsignaciones(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	u := e.user(t, 10)
	task, err := e.tasks.Create(ctx, u, dto.CreateTaskRequest{Title: "T"})
	require.NoError(t, err)
	_, err = e.tasks.Assign(ctx, dto.TaskAssigneeRequest{TaskID: task.ID, UserID: u})
	require.NoError(t, err)
	entry, err := e.entries.Create(ctx, u, dto.CreateTimeEntryRequest{TaskID: &task.ID, Hours: dec("1")})
	require.NoError(t, err)

	require.NoError(t, e.tasks.Delete(ctx, task.ID))

	_, err = e.entries.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	count, err := e.users.TaskCount(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 0, count.TaskCount)
}
