package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// PartnerUseCase casos de uso de proveedores y clientes.
type PartnerUseCase struct {
	repo repository.PartnerRepository
	refs RefValidator
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository, refs RefValidator) *PartnerUseCase {
	return &PartnerUseCase{repo: repo, refs: refs}
}

// Create crea un partner con rol vendor o customer.
func (uc *PartnerUseCase) Create(ctx context.Context, actorID string, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if !entity.ValidPartnerRole(in.Role) {
		return nil, domain.Invalid("role", in.Role, "role must be vendor or customer")
	}
	refs, err := uc.refs.Prepare(ctx, integrity.EntityPartner, integrity.OpCreate, integrity.Refs{
		"created_by": in.CreatedBy,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	p := &entity.Partner{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Role:      in.Role,
		CreatedBy: refs.Get("created_by"),
		CreatedAt: t,
		UpdatedAt: t,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromPartner(p)
	return &out, nil
}

// GetByID obtiene un partner.
func (uc *PartnerUseCase) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPartner(p)
	return &out, nil
}

// List lista partners; role filtra si no está vacío.
func (uc *PartnerUseCase) List(ctx context.Context, role string, limit, offset int) (*dto.ListResponse[dto.PartnerResponse], error) {
	if role != "" && !entity.ValidPartnerRole(role) {
		return nil, domain.Invalid("role", role, "role must be vendor or customer")
	}
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, role, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromPartner), limit, offset), nil
}

// Update aplica una actualización parcial. Cambiar el rol no revalida órdenes existentes.
func (uc *PartnerUseCase) Update(ctx context.Context, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		if !entity.ValidPartnerRole(*in.Role) {
			return nil, domain.Invalid("role", *in.Role, "role must be vendor or customer")
		}
		p.Role = *in.Role
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	p.UpdatedAt = now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromPartner(p)
	return &out, nil
}

// Delete elimina un partner. Si lo referencia una factura de proveedor, el repo devuelve ErrConflict.
func (uc *PartnerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PartnerUseCase) get(ctx context.Context, id string) (*entity.Partner, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("partner", id)
	}
	return p, nil
}
