package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// itemTable tabla y columna de documento de cada tipo de línea.
type itemTable struct {
	name      string
	docColumn string
	unitPrice bool
}

var itemTables = map[entity.ItemKind]itemTable{
	entity.SalesOrderItem:    {"sales_order_items", "sales_order_id", false},
	entity.PurchaseOrderItem: {"purchase_order_items", "purchase_order_id", true},
	entity.InvoiceItem:       {"invoice_items", "invoice_id", false},
	entity.VendorBillItem:    {"vendor_bill_items", "vendor_bill_id", false},
}

func tableFor(kind entity.ItemKind) (itemTable, error) {
	t, ok := itemTables[kind]
	if !ok {
		return itemTable{}, domain.Invalid("kind", string(kind), "tipo de línea desconocido: %s", kind)
	}
	return t, nil
}

// columns lista de columnas en el orden que espera scanItem.
func (t itemTable) columns() string {
	price := "NULL::numeric"
	if t.unitPrice {
		price = "unit_price"
	}
	return "id, " + t.docColumn + ", product_id, quantity, " + price + ", sub_total"
}

// LineItemRepo persiste las líneas de los cuatro documentos con una sola implementación.
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador.
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

func itemScanner(kind entity.ItemKind) func(pgx.Row) (*entity.LineItem, error) {
	return func(row pgx.Row) (*entity.LineItem, error) {
		it := entity.LineItem{Kind: kind}
		if err := row.Scan(&it.ID, &it.DocumentID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.SubTotal); err != nil {
			return nil, err
		}
		return &it, nil
	}
}

// Create persiste una línea en la tabla de su tipo.
func (r *LineItemRepo) Create(ctx context.Context, it *entity.LineItem) error {
	t, err := tableFor(it.Kind)
	if err != nil {
		return err
	}
	var query string
	args := []any{it.ID, it.DocumentID, it.ProductID, it.Quantity, it.SubTotal}
	if t.unitPrice {
		query = fmt.Sprintf(`INSERT INTO %s (id, %s, product_id, quantity, sub_total, unit_price) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.name, t.docColumn)
		args = append(args, it.UnitPrice)
	} else {
		query = fmt.Sprintf(`INSERT INTO %s (id, %s, product_id, quantity, sub_total) VALUES ($1, $2, $3, $4, $5)`,
			t.name, t.docColumn)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert %s: %w", t.name, err)
	}
	return nil
}

// GetByID obtiene una línea por tipo e ID.
func (r *LineItemRepo) GetByID(ctx context.Context, kind entity.ItemKind, id string) (*entity.LineItem, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	row := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns(), t.name), id)
	return one(row, itemScanner(kind), "get "+t.name)
}

// Update actualiza documento, producto, cantidad y subtotal de la línea.
func (r *LineItemRepo) Update(ctx context.Context, it *entity.LineItem) error {
	t, err := tableFor(it.Kind)
	if err != nil {
		return err
	}
	var query string
	args := []any{it.ID, it.DocumentID, it.ProductID, it.Quantity, it.SubTotal}
	if t.unitPrice {
		query = fmt.Sprintf(`UPDATE %s SET %s = $2, product_id = $3, quantity = $4, sub_total = $5, unit_price = $6 WHERE id = $1`,
			t.name, t.docColumn)
		args = append(args, it.UnitPrice)
	} else {
		query = fmt.Sprintf(`UPDATE %s SET %s = $2, product_id = $3, quantity = $4, sub_total = $5 WHERE id = $1`,
			t.name, t.docColumn)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update %s: %w", t.name, err)
	}
	return nil
}

// List lista las líneas de un tipo.
func (r *LineItemRepo) List(ctx context.Context, kind entity.ItemKind, limit, offset int) ([]*entity.LineItem, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s ORDER BY id LIMIT $1 OFFSET $2`, t.columns(), t.name), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return collect(rows, itemScanner(kind))
}

// ListByDocument lista las líneas de un documento concreto.
func (r *LineItemRepo) ListByDocument(ctx context.Context, kind entity.ItemKind, documentID string) ([]*entity.LineItem, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.columns(), t.name, t.docColumn), documentID)
	if err != nil {
		return nil, fmt.Errorf("list %s by document: %w", t.name, err)
	}
	return collect(rows, itemScanner(kind))
}

// Delete elimina una línea.
func (r *LineItemRepo) Delete(ctx context.Context, kind entity.ItemKind, id string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id); err != nil {
		return fmt.Errorf("delete %s: %w", t.name, err)
	}
	return nil
}
