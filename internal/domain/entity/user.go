package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleFinance    = "finance"
	RoleTeamMember = "team_member"
)

// ValidUserRole indica si el rol es uno de los admitidos en el registro.
func ValidUserRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleFinance, RoleTeamMember:
		return true
	}
	return false
}

// User representa un usuario del sistema. HourlyRate alimenta el costo de mano de obra de los proyectos.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	HourlyRate   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
