package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas de cliente.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	refs RefValidator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, refs RefValidator) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, refs: refs}
}

// Create emite una factura contra una orden de venta existente.
func (uc *InvoiceUseCase) Create(ctx context.Context, actorID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	refs, err := uc.refs.Prepare(ctx, integrity.EntityInvoice, integrity.OpCreate, integrity.Refs{
		"sales_order_id": in.SalesOrderID,
		"created_by":     in.CreatedBy,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	inv := &entity.Invoice{
		ID:           newID(),
		SalesOrderID: *refs.Get("sales_order_id"),
		CreatedBy:    refs.Get("created_by"),
		Status:       orDefault(in.Status, entity.DocumentStatusPending),
		Amount:       decimalOrZero(in.Amount),
		CreatedAt:    t,
		UpdatedAt:    t,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	out := dto.FromInvoice(inv)
	return &out, nil
}

// GetByID obtiene una factura.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromInvoice(inv)
	return &out, nil
}

// List lista facturas.
func (uc *InvoiceUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.InvoiceResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromInvoice), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.SalesOrderID != nil {
		if err := uc.refs.Validate(ctx, integrity.EntityInvoice, integrity.OpUpdate, integrity.Refs{"sales_order_id": in.SalesOrderID}); err != nil {
			return nil, err
		}
		inv.SalesOrderID = *in.SalesOrderID
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.Amount != nil {
		inv.Amount = *in.Amount
	}
	inv.UpdatedAt = now()
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	out := dto.FromInvoice(inv)
	return &out, nil
}

// Delete elimina una factura y sus líneas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *InvoiceUseCase) get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.NotFound("invoice", id)
	}
	return inv, nil
}

// VendorBillUseCase casos de uso de facturas de proveedor.
type VendorBillUseCase struct {
	repo repository.VendorBillRepository
	refs RefValidator
}

// NewVendorBillUseCase construye el caso de uso.
func NewVendorBillUseCase(repo repository.VendorBillRepository, refs RefValidator) *VendorBillUseCase {
	return &VendorBillUseCase{repo: repo, refs: refs}
}

// Create registra una factura de proveedor; vendor_id y purchase_order_id son obligatorios.
func (uc *VendorBillUseCase) Create(ctx context.Context, in dto.CreateVendorBillRequest) (*dto.VendorBillResponse, error) {
	refs := integrity.Refs{
		"vendor_id":         in.VendorID,
		"purchase_order_id": in.PurchaseOrderID,
	}
	if err := uc.refs.Validate(ctx, integrity.EntityVendorBill, integrity.OpCreate, refs); err != nil {
		return nil, err
	}
	b := &entity.VendorBill{
		ID:              newID(),
		VendorID:        *refs.Get("vendor_id"),
		PurchaseOrderID: *refs.Get("purchase_order_id"),
		Status:          orDefault(in.Status, entity.DocumentStatusPending),
		Amount:          decimalOrZero(in.Amount),
		CreatedAt:       now(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	out := dto.FromVendorBill(b)
	return &out, nil
}

// GetByID obtiene una factura de proveedor.
func (uc *VendorBillUseCase) GetByID(ctx context.Context, id string) (*dto.VendorBillResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromVendorBill(b)
	return &out, nil
}

// List lista facturas de proveedor.
func (uc *VendorBillUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.VendorBillResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromVendorBill), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *VendorBillUseCase) Update(ctx context.Context, id string, in dto.UpdateVendorBillRequest) (*dto.VendorBillResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := integrity.Refs{}
	if in.VendorID != nil {
		refs["vendor_id"] = in.VendorID
	}
	if in.PurchaseOrderID != nil {
		refs["purchase_order_id"] = in.PurchaseOrderID
	}
	if err := uc.refs.Validate(ctx, integrity.EntityVendorBill, integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if in.VendorID != nil {
		b.VendorID = *in.VendorID
	}
	if in.PurchaseOrderID != nil {
		b.PurchaseOrderID = *in.PurchaseOrderID
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Amount != nil {
		b.Amount = *in.Amount
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := dto.FromVendorBill(b)
	return &out, nil
}

// Delete elimina una factura de proveedor y sus líneas.
func (uc *VendorBillUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *VendorBillUseCase) get(ctx context.Context, id string) (*entity.VendorBill, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("vendor bill", id)
	}
	return b, nil
}
