package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios (el alta vive en auth).
type UserUseCase struct {
	repo      repository.UserRepository
	assignees repository.TaskAssigneeRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, assignees repository.TaskAssigneeRepository) *UserUseCase {
	return &UserUseCase{repo: repo, assignees: assignees}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// List lista usuarios.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.UserResponse], error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewList(dto.MapList(list, dto.FromUser), limit, offset), nil
}

// Update actualiza nombre, email, rol o tarifa horaria.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		if !entity.ValidUserRole(*in.Role) {
			return nil, domain.Invalid("role", *in.Role, "role %q is not valid", *in.Role)
		}
		u.Role = *in.Role
	}
	if in.HourlyRate != nil {
		if in.HourlyRate.IsNegative() {
			return nil, domain.Invalid("hourly_rate", in.HourlyRate.String(), "hourly_rate must be >= 0")
		}
		u.HourlyRate = *in.HourlyRate
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	u.UpdatedAt = now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// Delete elimina un usuario. Las FK opcionales que lo referencian quedan en NULL.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// TaskCount número de tareas asignadas al usuario.
func (uc *UserUseCase) TaskCount(ctx context.Context, id string) (*dto.UserTaskCountResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := uc.assignees.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UserTaskCountResponse{UserID: u.ID, Name: u.Name, TaskCount: n}, nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user", id)
	}
	return u, nil
}
