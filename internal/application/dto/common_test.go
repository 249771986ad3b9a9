package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
)

func TestNumber_SeSerializaSinComillas(t *testing.T) {
	tests := map[string]string{
		"0":       "0",
		"1000":    "1000",
		"450.5":   "450.5",
		"-12.345": "-12.345",
	}
	for in, want := range tests {
		b, err := json.Marshal(dto.NewNumber(decimal.RequireFromString(in)))
		require.NoError(t, err)
		assert.Equal(t, want, string(b), in)
	}
}

func TestNumber_EnResumen(t *testing.T) {
	b, err := json.Marshal(dto.ProjectSummaryResponse{
		Revenue: dto.NewNumber(decimal.NewFromInt(1000)),
		Cost:    dto.NewNumber(decimal.NewFromInt(450)),
	})
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, float64(1000), m["revenue"])
	assert.Equal(t, float64(450), m["cost"])
}
