package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
)

func TestTimeEntryCreate_DefaultsDelActor(t *testing.T) {
	e := newEnv()
	u := e.user(t, 30)

	got, err := e.entries.Create(context.Background(), u, dto.CreateTimeEntryRequest{Hours: dec("1.5")})
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, u, *got.UserID)
	assert.False(t, got.Billable)
	assert.Nil(t, got.TaskID)
}

func TestTimeEntryCreate_HorasNegativas(t *testing.T) {
	e := newEnv()
	_, err := e.entries.Create(context.Background(), "", dto.CreateTimeEntryRequest{Hours: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimeEntryList_FiltraPorUsuario(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	a := e.user(t, 0)
	b := e.user(t, 0)
	for _, u := range []string{a, a, b} {
		_, err := e.entries.Create(ctx, u, dto.CreateTimeEntryRequest{Hours: dec("1")})
		require.NoError(t, err)
	}

	list, err := e.entries.List(ctx, dto.TimeEntryQuery{UserID: a}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}
