package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest alta de usuario (rol por defecto team_member).
type RegisterRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	Email      string           `json:"email" validate:"required,email"`
	Password   string           `json:"password" validate:"required,min=6"`
	Role       string           `json:"role" validate:"omitempty,oneof=admin manager finance team_member"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UpdateUserRequest actualización parcial; nil = sin cambios.
type UpdateUserRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string          `json:"email" validate:"omitempty,email"`
	Role       *string          `json:"role" validate:"omitempty,oneof=admin manager finance team_member"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// UserResponse salida de usuario (sin hash).
type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// UserTaskCountResponse número de tareas asignadas a un usuario.
type UserTaskCountResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
}
