package usecase

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
	refs RefValidator
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, refs RefValidator) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, refs: refs}
}

// Create registra un gasto. user_id (quien lo registra) toma el actor si no viene.
func (uc *ExpenseUseCase) Create(ctx context.Context, actorID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	refs, err := uc.refs.Prepare(ctx, integrity.EntityExpense, integrity.OpCreate, integrity.Refs{
		"project_id": in.ProjectID,
		"user_id":    in.UserID,
	}, actorID)
	if err != nil {
		return nil, err
	}
	t := now()
	e := &entity.Expense{
		ID:          newID(),
		ProjectID:   refs.Get("project_id"),
		UserID:      refs.Get("user_id"),
		Amount:      nullDecimal(in.Amount),
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date.TimePtr(),
		Status:      orDefault(in.Status, entity.ExpenseStatusPending),
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromExpense(e)
	return &out, nil
}

// GetByID obtiene un gasto.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromExpense(e)
	return &out, nil
}

// List lista gastos con filtros opcionales project_id, user_id, status.
func (uc *ExpenseUseCase) List(ctx context.Context, q dto.ExpenseQuery, limit, offset int) (*dto.ListResponse[dto.ExpenseResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, repository.ExpenseFilter{
		ProjectID: q.ProjectID,
		UserID:    q.UserID,
		Status:    q.Status,
	}, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromExpense), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := integrity.Refs{}
	if in.ProjectID != nil {
		refs["project_id"] = in.ProjectID
	}
	if in.UserID != nil {
		refs["user_id"] = in.UserID
	}
	if err := uc.refs.Validate(ctx, integrity.EntityExpense, integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if in.ProjectID != nil {
		e.ProjectID = optionalRef(in.ProjectID)
	}
	if in.UserID != nil {
		e.UserID = optionalRef(in.UserID)
	}
	if in.Amount != nil {
		e.Amount = nullDecimal(in.Amount)
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = in.Date.TimePtr()
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	e.UpdatedAt = now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromExpense(e)
	return &out, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ExpenseUseCase) get(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("expense", id)
	}
	return e, nil
}
