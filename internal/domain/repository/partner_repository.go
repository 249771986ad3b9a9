package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para Partner (proveedores y clientes).
type PartnerRepository interface {
	Create(ctx context.Context, p *entity.Partner) error
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	Update(ctx context.Context, p *entity.Partner) error
	// List filtra por rol si role no está vacío.
	List(ctx context.Context, role string, limit, offset int) ([]*entity.Partner, error)
	Delete(ctx context.Context, id string) error
}
