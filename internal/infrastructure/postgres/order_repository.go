package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var (
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.SalesOrderRepository    = (*SalesOrderRepo)(nil)
)

const purchaseOrderColumns = `id, vendor_id, project_id, created_by, expected_delivery, status, total_amount, tax, note, created_at, updated_at`

// PurchaseOrderRepo implementación de PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(&o.ID, &o.VendorID, &o.ProjectID, &o.CreatedBy, &o.ExpectedDelivery, &o.Status,
		&o.TotalAmount, &o.Tax, &o.Note, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.VendorID, o.ProjectID, o.CreatedBy, o.ExpectedDelivery, o.Status,
		o.TotalAmount, o.Tax, o.Note, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de compra por ID.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	row := r.q.QueryRow(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id)
	return one(row, scanPurchaseOrder, "get purchase order")
}

// Update actualiza una orden de compra.
func (r *PurchaseOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET vendor_id = $2, project_id = $3, created_by = $4, expected_delivery = $5,
			status = $6, total_amount = $7, tax = $8, note = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.VendorID, o.ProjectID, o.CreatedBy, o.ExpectedDelivery,
		o.Status, o.TotalAmount, o.Tax, o.Note, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// List lista órdenes de compra.
func (r *PurchaseOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return collect(rows, scanPurchaseOrder)
}

// Delete elimina una orden de compra; sus líneas y facturas de proveedor caen en cascada.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

const salesOrderColumns = `id, order_no, partner_id, project_id, created_by, order_date, status, total_amount, tax, note, created_at, updated_at`

// SalesOrderRepo implementación de SalesOrderRepository.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func scanSalesOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := row.Scan(&o.ID, &o.OrderNo, &o.PartnerID, &o.ProjectID, &o.CreatedBy, &o.OrderDate, &o.Status,
		&o.TotalAmount, &o.Tax, &o.Note, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden de venta.
func (r *SalesOrderRepo) Create(ctx context.Context, o *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (` + salesOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNo, o.PartnerID, o.ProjectID, o.CreatedBy, o.OrderDate, o.Status,
		o.TotalAmount, o.Tax, o.Note, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de venta por ID.
func (r *SalesOrderRepo) GetByID(ctx context.Context, id string) (*entity.SalesOrder, error) {
	row := r.q.QueryRow(ctx, `SELECT `+salesOrderColumns+` FROM sales_orders WHERE id = $1`, id)
	return one(row, scanSalesOrder, "get sales order")
}

// Update actualiza una orden de venta.
func (r *SalesOrderRepo) Update(ctx context.Context, o *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders SET order_no = $2, partner_id = $3, project_id = $4, created_by = $5, order_date = $6,
			status = $7, total_amount = $8, tax = $9, note = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNo, o.PartnerID, o.ProjectID, o.CreatedBy, o.OrderDate,
		o.Status, o.TotalAmount, o.Tax, o.Note, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

// List lista órdenes de venta.
func (r *SalesOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.SalesOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+salesOrderColumns+` FROM sales_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	return collect(rows, scanSalesOrder)
}

// ListByProject órdenes de venta del proyecto; alimentan el ingreso del resumen.
func (r *SalesOrderRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.SalesOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+salesOrderColumns+` FROM sales_orders WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sales orders by project: %w", err)
	}
	return collect(rows, scanSalesOrder)
}

// Delete elimina una orden de venta; sus líneas y facturas caen en cascada.
func (r *SalesOrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales_orders WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete sales order: %w", err)
	}
	return nil
}
