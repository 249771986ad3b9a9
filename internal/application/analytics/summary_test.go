package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Proyectos-api/internal/application/analytics"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name   string
		status string
		total  int
		done   int
		want   int
	}{
		{"sin tareas planificado", entity.ProjectPlanned, 0, 0, 0},
		{"sin tareas completado", entity.ProjectCompleted, 0, 0, 100},
		{"una de cuatro", entity.ProjectInProgress, 4, 1, 25},
		{"un tercio redondea abajo", entity.ProjectInProgress, 3, 1, 33},
		{"dos tercios redondea arriba", entity.ProjectInProgress, 3, 2, 67},
		{"media exacta redondea arriba", entity.ProjectInProgress, 8, 1, 13},
		{"todas", entity.ProjectCompleted, 5, 5, 100},
		{"ninguna aunque el proyecto esté completado", entity.ProjectCompleted, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.Progress(tt.status, tt.total, tt.done))
		})
	}
}

func TestProgress_MonotonoConTotalFijo(t *testing.T) {
	for total := 1; total <= 30; total++ {
		prev := -1
		for done := 0; done <= total; done++ {
			p := analytics.Progress(entity.ProjectInProgress, total, done)
			assert.GreaterOrEqual(t, p, prev, "total=%d done=%d", total, done)
			assert.True(t, p >= 0 && p <= 100)
			prev = p
		}
	}
}

func TestLaborUserIDs_Distintos(t *testing.T) {
	u1, u2 := "u-1", "u-2"
	entries := []*entity.TimeEntry{{UserID: &u1}, {UserID: &u2}, {UserID: &u1}, {UserID: nil}}

	assert.Equal(t, []string{"u-1", "u-2"}, analytics.LaborUserIDs(entries))
}

func TestLaborCost_UsuarioAusenteCuentaCero(t *testing.T) {
	u1, ghost := "u-1", "u-x"
	entries := []*entity.TimeEntry{
		{UserID: &u1, Hours: decimal.NewFromInt(2)},
		{UserID: &ghost, Hours: decimal.NewFromInt(10)},
		{Hours: decimal.NewFromInt(3)},
	}
	users := map[string]*entity.User{"u-1": {ID: "u-1", HourlyRate: decimal.NewFromInt(40)}}

	got := analytics.LaborCost(entries, users)

	assert.True(t, got.Equal(decimal.NewFromInt(80)), got.String())
}

func TestRevenue_NullCuentaCero(t *testing.T) {
	orders := []*entity.SalesOrder{
		{TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000))},
		{},
	}
	assert.True(t, analytics.Revenue(orders).Equal(decimal.NewFromInt(1000)))
}

func TestCompute_ProyectoVacio(t *testing.T) {
	p := &entity.Project{ID: "p-1", Status: entity.ProjectPlanned}

	s := analytics.Compute(p, nil, nil, nil, nil, nil)

	assert.Equal(t, 0, s.Progress)
	assert.Equal(t, 0, s.Total)
	assert.True(t, s.Revenue.IsZero())
	assert.True(t, s.Cost.IsZero())
}
