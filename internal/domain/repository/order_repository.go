package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, o *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, o *entity.PurchaseOrder) error
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}

// SalesOrderRepository define el puerto de persistencia para órdenes de venta.
type SalesOrderRepository interface {
	Create(ctx context.Context, o *entity.SalesOrder) error
	GetByID(ctx context.Context, id string) (*entity.SalesOrder, error)
	Update(ctx context.Context, o *entity.SalesOrder) error
	List(ctx context.Context, limit, offset int) ([]*entity.SalesOrder, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.SalesOrder, error)
	Delete(ctx context.Context, id string) error
}
