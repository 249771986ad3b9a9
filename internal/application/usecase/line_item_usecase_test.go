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

func salesOrder(t *testing.T, e *env) string {
	t.Helper()
	customer := e.partner(t, entity.PartnerCustomer)
	o, err := e.sales.Create(context.Background(), "", dto.CreateSalesOrderRequest{PartnerID: &customer})
	require.NoError(t, err)
	return o.ID
}

func TestLineItemCreate_SubtotalDerivado(t *testing.T) {
	e := newEnv()
	so := salesOrder(t, e)
	product := e.product(t, dec("100"), dec("80"))

	it, err := e.items.Create(context.Background(), entity.SalesOrderItem, dto.CreateLineItemRequest{
		DocumentRef: dto.DocumentRef{SalesOrderID: &so},
		ProductID:   &product,
		Quantity:    intp(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "300", it.SubTotal.String())
	require.NotNil(t, it.SalesOrderID)
	assert.Equal(t, so, *it.SalesOrderID)
}

func TestLineItemCreate_SubtotalExplicitoGana(t *testing.T) {
	e := newEnv()
	so := salesOrder(t, e)
	product := e.product(t, dec("100"), dec("80"))

	it, err := e.items.Create(context.Background(), entity.SalesOrderItem, dto.CreateLineItemRequest{
		DocumentRef: dto.DocumentRef{SalesOrderID: &so},
		ProductID:   &product,
		Quantity:    intp(3),
		SubTotal:    dec("250"),
	})
	require.NoError(t, err)
	assert.Equal(t, "250", it.SubTotal.String())
}

func TestLineItemCreate_CaeACostoYCantidadPorDefecto(t *testing.T) {
	e := newEnv()
	so := salesOrder(t, e)
	product := e.product(t, nil, dec("80"))

	it, err := e.items.Create(context.Background(), entity.SalesOrderItem, dto.CreateLineItemRequest{
		DocumentRef: dto.DocumentRef{SalesOrderID: &so},
		ProductID:   &product,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, "80", it.SubTotal.String())
}

func TestLineItemCreate_DocumentoObligatorio(t *testing.T) {
	e := newEnv()
	product := e.product(t, dec("1"), nil)

	_, err := e.items.Create(context.Background(), entity.InvoiceItem, dto.CreateLineItemRequest{ProductID: &product})
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "invoice_id", fe.Field)
}

func TestLineItemUpdate_RecalculaAlCambiarCantidad(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	so := salesOrder(t, e)
	product := e.product(t, dec("12.50"), nil)
	it, err := e.items.Create(ctx, entity.SalesOrderItem, dto.CreateLineItemRequest{
		DocumentRef: dto.DocumentRef{SalesOrderID: &so},
		ProductID:   &product,
		Quantity:    intp(1),
	})
	require.NoError(t, err)

	got, err := e.items.Update(ctx, entity.SalesOrderItem, it.ID, dto.UpdateLineItemRequest{Quantity: intp(3)})
	require.NoError(t, err)
	assert.Equal(t, "37.5", got.SubTotal.String())

	got, err = e.items.Update(ctx, entity.SalesOrderItem, it.ID, dto.UpdateLineItemRequest{SubTotal: dec("5")})
	require.NoError(t, err)
	assert.Equal(t, "5", got.SubTotal.String())
	assert.Equal(t, 3, got.Quantity)
}

func TestLineItemDelete_Inexistente(t *testing.T) {
	e := newEnv()
	err := e.items.Delete(context.Background(), entity.VendorBillItem, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
