package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest orden de compra; vendor_id debe ser un partner con rol vendor.
type CreatePurchaseOrderRequest struct {
	VendorID         *string          `json:"vendor_id"`
	ProjectID        *string          `json:"project_id"`
	CreatedBy        *string          `json:"created_by"`
	ExpectedDelivery *Date            `json:"expected_delivery"`
	Status           string           `json:"status"`
	TotalAmount      *decimal.Decimal `json:"total_amount"`
	Tax              *decimal.Decimal `json:"tax"`
	Note             string           `json:"note"`
}

// UpdatePurchaseOrderRequest actualización parcial.
type UpdatePurchaseOrderRequest struct {
	VendorID         *string          `json:"vendor_id"`
	ProjectID        *string          `json:"project_id"`
	ExpectedDelivery *Date            `json:"expected_delivery"`
	Status           *string          `json:"status"`
	TotalAmount      *decimal.Decimal `json:"total_amount"`
	Tax              *decimal.Decimal `json:"tax"`
	Note             *string          `json:"note"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID               string              `json:"id"`
	VendorID         *string             `json:"vendor_id"`
	ProjectID        *string             `json:"project_id"`
	CreatedBy        *string             `json:"created_by"`
	ExpectedDelivery *Date               `json:"expected_delivery"`
	Status           string              `json:"status"`
	TotalAmount      decimal.NullDecimal `json:"total_amount"`
	Tax              decimal.NullDecimal `json:"tax"`
	Note             string              `json:"note"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// CreateSalesOrderRequest orden de venta; partner_id debe ser un partner con rol customer.
type CreateSalesOrderRequest struct {
	OrderNo     string           `json:"order_no"`
	PartnerID   *string          `json:"partner_id"`
	ProjectID   *string          `json:"project_id"`
	CreatedBy   *string          `json:"created_by"`
	OrderDate   *Date            `json:"order_date"`
	Status      string           `json:"status"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Tax         *decimal.Decimal `json:"tax"`
	Note        string           `json:"note"`
}

// UpdateSalesOrderRequest actualización parcial.
type UpdateSalesOrderRequest struct {
	OrderNo     *string          `json:"order_no"`
	PartnerID   *string          `json:"partner_id"`
	ProjectID   *string          `json:"project_id"`
	OrderDate   *Date            `json:"order_date"`
	Status      *string          `json:"status"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Tax         *decimal.Decimal `json:"tax"`
	Note        *string          `json:"note"`
}

// SalesOrderResponse salida de una orden de venta.
type SalesOrderResponse struct {
	ID          string              `json:"id"`
	OrderNo     string              `json:"order_no"`
	PartnerID   *string             `json:"partner_id"`
	ProjectID   *string             `json:"project_id"`
	CreatedBy   *string             `json:"created_by"`
	OrderDate   *Date               `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.NullDecimal `json:"total_amount"`
	Tax         decimal.NullDecimal `json:"tax"`
	Note        string              `json:"note"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
