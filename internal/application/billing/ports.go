package billing

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// InvoiceLineForPDF línea de factura enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	entity.LineItem
	ProductName string
}

// InvoicePDFData datos ya cargados para renderizar la factura. Customer y Project pueden ser nil.
type InvoicePDFData struct {
	Invoice    *entity.Invoice
	SalesOrder *entity.SalesOrder
	Customer   *entity.Partner
	Project    *entity.Project
	Lines      []InvoiceLineForPDF
}

// InvoicePDFGenerator genera el PDF de una factura de cliente.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data *InvoicePDFData) ([]byte, error)
}
