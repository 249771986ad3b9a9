package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// PurchaseOrderUseCase casos de uso de órdenes de compra.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
	refs RefValidator
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository, refs RefValidator) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, refs: refs}
}

// Create crea una orden de compra. vendor_id debe ser un partner con rol vendor.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, actorID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	refs, err := uc.refs.Prepare(ctx, integrity.EntityPurchaseOrder, integrity.OpCreate, integrity.Refs{
		"vendor_id":  in.VendorID,
		"project_id": in.ProjectID,
		"created_by": in.CreatedBy,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	o := &entity.PurchaseOrder{
		ID:               newID(),
		VendorID:         refs.Get("vendor_id"),
		ProjectID:        refs.Get("project_id"),
		CreatedBy:        refs.Get("created_by"),
		ExpectedDelivery: in.ExpectedDelivery.TimePtr(),
		Status:           orDefault(in.Status, entity.OrderStatusDraft),
		TotalAmount:      nullDecimal(in.TotalAmount),
		Tax:              nullDecimal(in.Tax),
		Note:             in.Note,
		CreatedAt:        t,
		UpdatedAt:        t,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	out := dto.FromPurchaseOrder(o)
	return &out, nil
}

// GetByID obtiene una orden de compra.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPurchaseOrder(o)
	return &out, nil
}

// List lista órdenes de compra.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.PurchaseOrderResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromPurchaseOrder), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := integrity.Refs{}
	if in.VendorID != nil {
		refs["vendor_id"] = in.VendorID
	}
	if in.ProjectID != nil {
		refs["project_id"] = in.ProjectID
	}
	if err := uc.refs.Validate(ctx, integrity.EntityPurchaseOrder, integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if in.VendorID != nil {
		o.VendorID = optionalRef(in.VendorID)
	}
	if in.ProjectID != nil {
		o.ProjectID = optionalRef(in.ProjectID)
	}
	if in.ExpectedDelivery != nil {
		o.ExpectedDelivery = in.ExpectedDelivery.TimePtr()
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.TotalAmount != nil {
		o.TotalAmount = nullDecimal(in.TotalAmount)
	}
	if in.Tax != nil {
		o.Tax = nullDecimal(in.Tax)
	}
	if in.Note != nil {
		o.Note = *in.Note
	}
	o.UpdatedAt = now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	out := dto.FromPurchaseOrder(o)
	return &out, nil
}

// Delete elimina la orden; sus líneas y facturas de proveedor caen por FK en cascada.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PurchaseOrderUseCase) get(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("purchase order", id)
	}
	return o, nil
}

// SalesOrderUseCase casos de uso de órdenes de venta.
type SalesOrderUseCase struct {
	repo repository.SalesOrderRepository
	refs RefValidator
}

// NewSalesOrderUseCase construye el caso de uso.
func NewSalesOrderUseCase(repo repository.SalesOrderRepository, refs RefValidator) *SalesOrderUseCase {
	return &SalesOrderUseCase{repo: repo, refs: refs}
}

// Create crea una orden de venta. partner_id debe ser un partner con rol customer.
func (uc *SalesOrderUseCase) Create(ctx context.Context, actorID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	refs, err := uc.refs.Prepare(ctx, integrity.EntitySalesOrder, integrity.OpCreate, integrity.Refs{
		"partner_id": in.PartnerID,
		"project_id": in.ProjectID,
		"created_by": in.CreatedBy,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	o := &entity.SalesOrder{
		ID:          newID(),
		OrderNo:     in.OrderNo,
		PartnerID:   refs.Get("partner_id"),
		ProjectID:   refs.Get("project_id"),
		CreatedBy:   refs.Get("created_by"),
		OrderDate:   in.OrderDate.TimePtr(),
		Status:      orDefault(in.Status, entity.OrderStatusDraft),
		TotalAmount: nullDecimal(in.TotalAmount),
		Tax:         nullDecimal(in.Tax),
		Note:        in.Note,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	out := dto.FromSalesOrder(o)
	return &out, nil
}

// GetByID obtiene una orden de venta.
func (uc *SalesOrderUseCase) GetByID(ctx context.Context, id string) (*dto.SalesOrderResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromSalesOrder(o)
	return &out, nil
}

// List lista órdenes de venta.
func (uc *SalesOrderUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.SalesOrderResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromSalesOrder), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *SalesOrderUseCase) Update(ctx context.Context, id string, in dto.UpdateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := integrity.Refs{}
	if in.PartnerID != nil {
		refs["partner_id"] = in.PartnerID
	}
	if in.ProjectID != nil {
		refs["project_id"] = in.ProjectID
	}
	if err := uc.refs.Validate(ctx, integrity.EntitySalesOrder, integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if in.PartnerID != nil {
		o.PartnerID = optionalRef(in.PartnerID)
	}
	if in.ProjectID != nil {
		o.ProjectID = optionalRef(in.ProjectID)
	}
	if in.OrderNo != nil {
		o.OrderNo = *in.OrderNo
	}
	if in.OrderDate != nil {
		o.OrderDate = in.OrderDate.TimePtr()
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.TotalAmount != nil {
		o.TotalAmount = nullDecimal(in.TotalAmount)
	}
	if in.Tax != nil {
		o.Tax = nullDecimal(in.Tax)
	}
	if in.Note != nil {
		o.Note = *in.Note
	}
	o.UpdatedAt = now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	out := dto.FromSalesOrder(o)
	return &out, nil
}

// Delete elimina la orden; sus líneas y facturas caen por FK en cascada.
func (uc *SalesOrderUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SalesOrderUseCase) get(ctx context.Context, id string) (*entity.SalesOrder, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("sales order", id)
	}
	return o, nil
}
