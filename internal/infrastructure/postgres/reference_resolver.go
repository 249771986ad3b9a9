package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
)

var _ integrity.Resolver = (*ReferenceResolver)(nil)

// referenceTables tabla de cada tipo referenciable. Solo partners tiene rol.
var referenceTables = map[integrity.Kind]string{
	integrity.KindUser:          "users",
	integrity.KindProject:       "projects",
	integrity.KindTask:          "tasks",
	integrity.KindPartner:       "partners",
	integrity.KindProduct:       "products",
	integrity.KindPurchaseOrder: "purchase_orders",
	integrity.KindSalesOrder:    "sales_orders",
	integrity.KindInvoice:       "invoices",
	integrity.KindVendorBill:    "vendor_bills",
}

// ReferenceResolver comprueba existencia (y rol) de las filas referenciadas por una FK.
type ReferenceResolver struct {
	q Querier
}

// NewReferenceResolver construye el resolver.
func NewReferenceResolver(q Querier) *ReferenceResolver {
	return &ReferenceResolver{q: q}
}

// Resolve devuelve nil si no existe fila con ese id.
func (r *ReferenceResolver) Resolve(ctx context.Context, kind integrity.Kind, id string) (*integrity.Reference, error) {
	table, ok := referenceTables[kind]
	if !ok {
		return nil, fmt.Errorf("resolve: tipo desconocido %q", kind)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	role := "''"
	if kind == integrity.KindPartner {
		role = "role"
	}
	row := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT id, %s FROM %s WHERE id = $1`, role, table), id)
	return one(row, scanReference, "resolve "+string(kind))
}

func scanReference(row pgx.Row) (*integrity.Reference, error) {
	var ref integrity.Reference
	if err := row.Scan(&ref.ID, &ref.Role); err != nil {
		return nil, err
	}
	return &ref, nil
}
