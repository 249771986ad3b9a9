package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// DefaultQuantity cantidad asumida cuando la línea no la informa.
const DefaultQuantity = 1

// UnitPrice precio efectivo del producto: unit_price, si falta cost, si falta 0.
func UnitPrice(p *entity.Product) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if p.UnitPrice.Valid {
		return p.UnitPrice.Decimal
	}
	if p.Cost.Valid {
		return p.Cost.Decimal
	}
	return decimal.Zero
}

// Quantity resuelve la cantidad de la línea (nil → DefaultQuantity). Cero se respeta.
func Quantity(q *int) int {
	if q == nil {
		return DefaultQuantity
	}
	return *q
}

// Subtotal = cantidad × precio efectivo del producto.
// Las cantidades negativas no se rechazan aquí.
func Subtotal(quantity int, p *entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(UnitPrice(p))
}

// Derive devuelve el subtotal explícito si viene; si no, lo calcula a partir del producto.
func Derive(explicit *decimal.Decimal, quantity *int, p *entity.Product) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	return Subtotal(Quantity(quantity), p)
}
