package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas de cliente.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
}

// VendorBillRepository define el puerto de persistencia para facturas de proveedor.
type VendorBillRepository interface {
	Create(ctx context.Context, bill *entity.VendorBill) error
	GetByID(ctx context.Context, id string) (*entity.VendorBill, error)
	Update(ctx context.Context, bill *entity.VendorBill) error
	List(ctx context.Context, limit, offset int) ([]*entity.VendorBill, error)
	Delete(ctx context.Context, id string) error
}
