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
	_ repository.InvoiceRepository    = (*InvoiceRepo)(nil)
	_ repository.VendorBillRepository = (*VendorBillRepo)(nil)
)

const invoiceColumns = `id, sales_order_id, created_by, status, amount, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.SalesOrderID, &inv.CreatedBy, &inv.Status, &inv.Amount, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste una factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.SalesOrderID, inv.CreatedBy, inv.Status, inv.Amount, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	row := r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return one(row, scanInvoice, "get invoice")
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET sales_order_id = $2, created_by = $3, status = $4, amount = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.SalesOrderID, inv.CreatedBy, inv.Status, inv.Amount, inv.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// List lista facturas.
func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return collect(rows, scanInvoice)
}

// Delete elimina una factura y sus líneas.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

const vendorBillColumns = `id, vendor_id, purchase_order_id, status, amount, created_at`

// VendorBillRepo implementación de VendorBillRepository.
type VendorBillRepo struct {
	q Querier
}

// NewVendorBillRepository construye el adaptador.
func NewVendorBillRepository(q Querier) *VendorBillRepo {
	return &VendorBillRepo{q: q}
}

func scanVendorBill(row pgx.Row) (*entity.VendorBill, error) {
	var b entity.VendorBill
	if err := row.Scan(&b.ID, &b.VendorID, &b.PurchaseOrderID, &b.Status, &b.Amount, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una factura de proveedor.
func (r *VendorBillRepo) Create(ctx context.Context, b *entity.VendorBill) error {
	query := `
		INSERT INTO vendor_bills (` + vendorBillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, b.ID, b.VendorID, b.PurchaseOrderID, b.Status, b.Amount, b.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert vendor bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura de proveedor por ID.
func (r *VendorBillRepo) GetByID(ctx context.Context, id string) (*entity.VendorBill, error) {
	row := r.q.QueryRow(ctx, `SELECT `+vendorBillColumns+` FROM vendor_bills WHERE id = $1`, id)
	return one(row, scanVendorBill, "get vendor bill")
}

// Update actualiza una factura de proveedor.
func (r *VendorBillRepo) Update(ctx context.Context, b *entity.VendorBill) error {
	query := `
		UPDATE vendor_bills SET vendor_id = $2, purchase_order_id = $3, status = $4, amount = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, b.ID, b.VendorID, b.PurchaseOrderID, b.Status, b.Amount)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update vendor bill: %w", err)
	}
	return nil
}

// List lista facturas de proveedor.
func (r *VendorBillRepo) List(ctx context.Context, limit, offset int) ([]*entity.VendorBill, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vendorBillColumns+` FROM vendor_bills ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendor bills: %w", err)
	}
	return collect(rows, scanVendorBill)
}

// Delete elimina una factura de proveedor y sus líneas.
func (r *VendorBillRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendor_bills WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vendor bill: %w", err)
	}
	return nil
}
