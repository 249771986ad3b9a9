package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// TimeEntryUseCase casos de uso del registro de horas.
type TimeEntryUseCase struct {
	repo repository.TimeEntryRepository
	refs RefValidator
}

// NewTimeEntryUseCase construye el caso de uso.
func NewTimeEntryUseCase(repo repository.TimeEntryRepository, refs RefValidator) *TimeEntryUseCase {
	return &TimeEntryUseCase{repo: repo, refs: refs}
}

// Create registra horas. user_id toma el actor si no viene.
func (uc *TimeEntryUseCase) Create(ctx context.Context, actorID string, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := checkHours(in.Hours); err != nil {
		return nil, err
	}
	refs, err := uc.refs.Prepare(ctx, integrity.EntityTimeEntry, integrity.OpCreate, integrity.Refs{
		"user_id": in.UserID,
		"task_id": in.TaskID,
	}, actorID)
	if err != nil {
		return nil, err
	}
	billable := false
	if in.Billable != nil {
		billable = *in.Billable
	}
	t := now()
	e := &entity.TimeEntry{
		ID:          newID(),
		TaskID:      refs.Get("task_id"),
		UserID:      refs.Get("user_id"),
		Date:        in.Date.TimePtr(),
		Hours:       decimalOrZero(in.Hours),
		Description: in.Description,
		Billable:    billable,
		CreatedAt:   t,
		UpdatedAt:   t,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromTimeEntry(e)
	return &out, nil
}

// GetByID obtiene una entrada.
func (uc *TimeEntryUseCase) GetByID(ctx context.Context, id string) (*dto.TimeEntryResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromTimeEntry(e)
	return &out, nil
}

// List lista entradas con filtros opcionales user_id, task_id, from, to (inclusive).
func (uc *TimeEntryUseCase) List(ctx context.Context, q dto.TimeEntryQuery, limit, offset int) (*dto.ListResponse[dto.TimeEntryResponse], error) {
	limit, offset = clampPage(limit, offset)
	f := repository.TimeEntryFilter{UserID: q.UserID, TaskID: q.TaskID}
	var err error
	if f.From, err = parseDay("from", q.From); err != nil {
		return nil, err
	}
	if f.To, err = parseDay("to", q.To); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromTimeEntry), limit, offset), nil
}

// Update aplica una actualización parcial.
func (uc *TimeEntryUseCase) Update(ctx context.Context, id string, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := integrity.Refs{}
	if in.UserID != nil {
		refs["user_id"] = in.UserID
	}
	if in.TaskID != nil {
		refs["task_id"] = in.TaskID
	}
	if err := uc.refs.Validate(ctx, integrity.EntityTimeEntry, integrity.OpUpdate, refs); err != nil {
		return nil, err
	}
	if in.UserID != nil {
		e.UserID = optionalRef(in.UserID)
	}
	if in.TaskID != nil {
		e.TaskID = optionalRef(in.TaskID)
	}
	if in.Hours != nil {
		if err := checkHours(in.Hours); err != nil {
			return nil, err
		}
		e.Hours = *in.Hours
	}
	if in.Date != nil {
		e.Date = in.Date.TimePtr()
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Billable != nil {
		e.Billable = *in.Billable
	}
	e.UpdatedAt = now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromTimeEntry(e)
	return &out, nil
}

// Delete elimina una entrada.
func (uc *TimeEntryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *TimeEntryUseCase) get(ctx context.Context, id string) (*entity.TimeEntry, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("time entry", id)
	}
	return e, nil
}

func checkHours(h *decimal.Decimal) error {
	if h == nil {
		return domain.Invalid("hours", "", "hours is required")
	}
	if h.IsNegative() {
		return domain.Invalid("hours", h.String(), "hours must be >= 0")
	}
	return nil
}

func parseDay(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.Invalid(field, s, "%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}
