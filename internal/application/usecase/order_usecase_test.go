package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// Una orden de venta con un proveedor como partner se rechaza.
func TestSalesOrderCreate_PartnerConRolIncorrecto(t *testing.T) {
	e := newEnv()
	vendor := e.partner(t, entity.PartnerVendor)

	_, err := e.sales.Create(context.Background(), "", dto.CreateSalesOrderRequest{PartnerID: &vendor})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "partner_id", fe.Field)
	assert.Contains(t, fe.Message, "partner_id")
	assert.Contains(t, fe.Message, "customer")
}

func TestSalesOrderCreate_Defaults(t *testing.T) {
	e := newEnv()
	actor := e.user(t, 0)
	customer := e.partner(t, entity.PartnerCustomer)

	o, err := e.sales.Create(context.Background(), actor, dto.CreateSalesOrderRequest{PartnerID: &customer, TotalAmount: dec("1000")})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, o.Status)
	require.NotNil(t, o.CreatedBy)
	assert.Equal(t, actor, *o.CreatedBy)
	assert.True(t, o.TotalAmount.Valid)
}

func TestPurchaseOrderCreate_ClienteComoProveedor(t *testing.T) {
	e := newEnv()
	customer := e.partner(t, entity.PartnerCustomer)

	_, err := e.purchases.Create(context.Background(), "", dto.CreatePurchaseOrderRequest{VendorID: &customer})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "vendor_id", fe.Field)
}

func TestSalesOrderUpdate_SoloValidaCamposPresentes(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	customer := e.partner(t, entity.PartnerCustomer)
	o, err := e.sales.Create(ctx, "", dto.CreateSalesOrderRequest{PartnerID: &customer})
	require.NoError(t, err)

	got, err := e.sales.Update(ctx, o.ID, dto.UpdateSalesOrderRequest{Note: str("urgente")})
	require.NoError(t, err)
	assert.Equal(t, "urgente", got.Note)

	vendor := e.partner(t, entity.PartnerVendor)
	_, err = e.sales.Update(ctx, o.ID, dto.UpdateSalesOrderRequest{PartnerID: &vendor})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
