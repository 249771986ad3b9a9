package dto

import "time"

// CreatePartnerRequest alta de proveedor o cliente.
type CreatePartnerRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Role      string  `json:"role" validate:"required,oneof=vendor customer"`
	CreatedBy *string `json:"created_by"`
}

// UpdatePartnerRequest actualización parcial.
type UpdatePartnerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Role    *string `json:"role" validate:"omitempty,oneof=vendor customer"`
}

// PartnerResponse salida de un partner.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
