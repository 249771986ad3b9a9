package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. unit_price y cost son opcionales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.Invalid("unit_price", in.UnitPrice.String(), "unit_price must be >= 0")
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.Invalid("cost", in.Cost.String(), "cost must be >= 0")
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	t := now()
	p := &entity.Product{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   nullDecimal(in.UnitPrice),
		Cost:        nullDecimal(in.Cost),
		Unit:        in.Unit,
		Category:    in.Category,
		IsAvailable: available,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.ProductResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromProduct), limit, offset), nil
}

// Update actualiza un producto. Las líneas ya creadas conservan su subtotal.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.Invalid("unit_price", in.UnitPrice.String(), "unit_price must be >= 0")
		}
		p.UnitPrice = nullDecimal(in.UnitPrice)
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.Invalid("cost", in.Cost.String(), "cost must be >= 0")
		}
		p.Cost = nullDecimal(in.Cost)
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
	p.UpdatedAt = now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Delete elimina un producto. Si tiene líneas asociadas, el repo devuelve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("product", id)
	}
	return p, nil
}
