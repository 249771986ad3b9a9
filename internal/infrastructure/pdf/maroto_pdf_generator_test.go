package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/Proyectos-api/internal/application/billing"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	tests := map[string]string{
		"0":         "0,00",
		"999":       "999,00",
		"25000":     "25.000,00",
		"1000000.5": "1.000.000,50",
		"-1234.5":   "-1.234,50",
		"12.345":    "12,35",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestLinesTotal(t *testing.T) {
	lines := []appbilling.InvoiceLineForPDF{
		{LineItem: entity.LineItem{SubTotal: decimal.NewFromInt(300)}},
		{LineItem: entity.LineItem{SubTotal: decimal.RequireFromString("12.50")}},
	}
	assert.True(t, LinesTotal(lines).Equal(decimal.RequireFromString("312.50")))
}

func TestGenerateInvoicePDF(t *testing.T) {
	customer := "c-1"
	data := &appbilling.InvoicePDFData{
		Invoice:    &entity.Invoice{ID: "inv-1", Status: "pending", Amount: decimal.NewFromInt(300), CreatedAt: time.Now()},
		SalesOrder: &entity.SalesOrder{ID: "so-1", OrderNo: "SO-001", PartnerID: &customer},
		Customer:   &entity.Partner{ID: customer, Name: "ACME", Role: entity.PartnerCustomer},
		Lines: []appbilling.InvoiceLineForPDF{
			{LineItem: entity.LineItem{Quantity: 3, SubTotal: decimal.NewFromInt(300)}, ProductName: "Consultoría"},
		},
	}

	out, err := NewMarotoPDFGenerator("proyectos-api").GenerateInvoicePDF(context.Background(), data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_SinFactura(t *testing.T) {
	_, err := NewMarotoPDFGenerator("x").GenerateInvoicePDF(context.Background(), &appbilling.InvoicePDFData{})
	assert.Error(t, err)
}
