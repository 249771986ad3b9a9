package entity

import "time"

// Roles de Partner: cada contraparte es exactamente proveedor o cliente.
const (
	PartnerVendor   = "vendor"
	PartnerCustomer = "customer"
)

// ValidPartnerRole indica si el rol es vendor o customer.
func ValidPartnerRole(role string) bool {
	return role == PartnerVendor || role == PartnerCustomer
}

// Partner contraparte comercial (reemplaza las tablas separadas de proveedores y clientes).
type Partner struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Role      string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
