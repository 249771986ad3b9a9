package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/pricing"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func intp(i int) *int { return &i }

func TestDerive_CantidadPorPrecio(t *testing.T) {
	p := &entity.Product{UnitPrice: price("12.50")}

	got := pricing.Derive(nil, intp(3), p)

	assert.True(t, got.Equal(decimal.RequireFromString("37.50")), got.String())
}

func TestDerive_SubtotalExplicitoGana(t *testing.T) {
	p := &entity.Product{UnitPrice: price("12.50")}
	explicit := decimal.RequireFromString("30")

	got := pricing.Derive(&explicit, intp(3), p)

	assert.True(t, got.Equal(decimal.NewFromInt(30)))
}

func TestDerive_CantidadPorDefecto(t *testing.T) {
	p := &entity.Product{UnitPrice: price("9.99")}

	got := pricing.Derive(nil, nil, p)

	assert.True(t, got.Equal(decimal.RequireFromString("9.99")))
}

func TestDerive_CantidadCero(t *testing.T) {
	p := &entity.Product{UnitPrice: price("9.99")}

	got := pricing.Derive(nil, intp(0), p)

	assert.True(t, got.IsZero())
}

func TestUnitPrice_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		p    *entity.Product
		want string
	}{
		{"precio de venta", &entity.Product{UnitPrice: price("10"), Cost: price("6")}, "10"},
		{"cae al costo", &entity.Product{Cost: price("6")}, "6"},
		{"sin precio ni costo", &entity.Product{}, "0"},
		{"producto nil", nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.UnitPrice(tt.p)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), got.String())
		})
	}
}

func TestSubtotal_CantidadNegativaNoSeRechaza(t *testing.T) {
	p := &entity.Product{UnitPrice: price("5")}
	assert.True(t, pricing.Subtotal(-2, p).Equal(decimal.NewFromInt(-10)))
}
