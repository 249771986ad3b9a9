package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/pricing"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// LineItemUseCase casos de uso de las líneas de los cuatro tipos de documento.
// Sin sub_total explícito el subtotal se deriva del producto (pricing.Derive).
type LineItemUseCase struct {
	repo     repository.LineItemRepository
	products repository.ProductRepository
	refs     RefValidator
}

// NewLineItemUseCase construye el caso de uso.
func NewLineItemUseCase(repo repository.LineItemRepository, products repository.ProductRepository, refs RefValidator) *LineItemUseCase {
	return &LineItemUseCase{repo: repo, products: products, refs: refs}
}

// Create crea una línea. El documento y el producto deben existir.
func (uc *LineItemUseCase) Create(ctx context.Context, kind entity.ItemKind, in dto.CreateLineItemRequest) (*dto.LineItemResponse, error) {
	docField := integrity.DocumentField(kind)
	refs := integrity.Refs{
		docField:     in.For(kind),
		"product_id": in.ProductID,
	}
	if err := uc.refs.Validate(ctx, integrity.Entity(kind), integrity.OpCreate, refs); err != nil {
		return nil, err
	}
	item := &entity.LineItem{
		ID:         newID(),
		Kind:       kind,
		DocumentID: *refs.Get(docField),
		ProductID:  *refs.Get("product_id"),
		Quantity:   pricing.Quantity(in.Quantity),
	}
	if kind == entity.PurchaseOrderItem {
		item.UnitPrice = nullDecimal(in.UnitPrice)
	}
	var product *entity.Product
	if in.SubTotal == nil {
		p, err := uc.product(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		product = p
	}
	item.SubTotal = pricing.Derive(in.SubTotal, in.Quantity, product)
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := dto.FromLineItem(item)
	return &out, nil
}

// GetByID obtiene una línea.
func (uc *LineItemUseCase) GetByID(ctx context.Context, kind entity.ItemKind, id string) (*dto.LineItemResponse, error) {
	item, err := uc.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromLineItem(item)
	return &out, nil
}

// List lista líneas del tipo indicado; documentID filtra si no está vacío.
func (uc *LineItemUseCase) List(ctx context.Context, kind entity.ItemKind, documentID string, limit, offset int) (*dto.ListResponse[dto.LineItemResponse], error) {
	limit, offset = clampPage(limit, offset)
	var (
		list []*entity.LineItem
		err  error
	)
	if documentID != "" {
		list, err = uc.repo.ListByDocument(ctx, kind, documentID)
	} else {
		list, err = uc.repo.List(ctx, kind, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromLineItem), limit, offset), nil
}

// Update aplica una actualización parcial. Si cambian producto o cantidad y no viene
// sub_total, se recalcula con los valores nuevos y el resto de la línea previa.
func (uc *LineItemUseCase) Update(ctx context.Context, kind entity.ItemKind, id string, in dto.UpdateLineItemRequest) (*dto.LineItemResponse, error) {
	item, err := uc.get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	docField := integrity.DocumentField(kind)
	refs := integrity.Refs{}
	if doc := in.For(kind); doc != nil {
		refs[docField] = doc
	}
	if in.ProductID != nil {
		refs["product_id"] = in.ProductID
	}
	if err := uc.refs.Validate(ctx, integrity.Entity(kind), integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if doc := refs.Get(docField); doc != nil {
		item.DocumentID = *doc
	}
	recompute := false
	if in.ProductID != nil && *in.ProductID != item.ProductID {
		item.ProductID = *in.ProductID
		recompute = true
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
		recompute = true
	}
	if kind == entity.PurchaseOrderItem && in.UnitPrice != nil {
		item.UnitPrice = nullDecimal(in.UnitPrice)
	}
	switch {
	case in.SubTotal != nil:
		item.SubTotal = *in.SubTotal
	case recompute:
		product, err := uc.product(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		item.SubTotal = pricing.Subtotal(item.Quantity, product)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := dto.FromLineItem(item)
	return &out, nil
}

// Delete elimina una línea.
func (uc *LineItemUseCase) Delete(ctx context.Context, kind entity.ItemKind, id string) error {
	if _, err := uc.get(ctx, kind, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, kind, id)
}

func (uc *LineItemUseCase) get(ctx context.Context, kind entity.ItemKind, id string) (*entity.LineItem, error) {
	item, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound(string(kind), id)
	}
	return item, nil
}

// product carga el producto ya validado; si desapareció entre la validación y la lectura
// se reporta como error de validación.
func (uc *LineItemUseCase) product(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar producto %s: %w", id, err)
	}
	if p == nil {
		return nil, domain.Invalid("product_id", id, "product_id %s does not reference an existing product", id)
	}
	return p, nil
}
