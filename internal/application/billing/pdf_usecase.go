package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible (PDF) de una factura de cliente.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	salesRepo   repository.SalesOrderRepository
	partnerRepo repository.PartnerRepository
	projectRepo repository.ProjectRepository
	itemRepo    repository.LineItemRepository
	productRepo repository.ProductRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	salesRepo repository.SalesOrderRepository,
	partnerRepo repository.PartnerRepository,
	projectRepo repository.ProjectRepository,
	itemRepo repository.LineItemRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		salesRepo:   salesRepo,
		partnerRepo: partnerRepo,
		projectRepo: projectRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga factura, orden, cliente, proyecto y líneas y genera el PDF.
// Si la factura no tiene líneas propias se usan las de su orden de venta.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - *domain.NotFoundError      si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.NotFound("invoice", invoiceID)
	}

	data := &InvoicePDFData{Invoice: inv}

	so, err := uc.salesRepo.GetByID(ctx, inv.SalesOrderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden de venta: %w", err)
	}
	data.SalesOrder = so
	if so != nil {
		if so.PartnerID != nil {
			if data.Customer, err = uc.partnerRepo.GetByID(ctx, *so.PartnerID); err != nil {
				return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
			}
		}
		if so.ProjectID != nil {
			if data.Project, err = uc.projectRepo.GetByID(ctx, *so.ProjectID); err != nil {
				return nil, "", fmt.Errorf("pdf: obtener proyecto: %w", err)
			}
		}
	}

	items, err := uc.itemRepo.ListByDocument(ctx, entity.InvoiceItem, inv.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	if len(items) == 0 && so != nil {
		if items, err = uc.itemRepo.ListByDocument(ctx, entity.SalesOrderItem, so.ID); err != nil {
			return nil, "", fmt.Errorf("pdf: obtener líneas de la orden: %w", err)
		}
	}

	names := make(map[string]string, len(items))
	data.Lines = make([]InvoiceLineForPDF, 0, len(items))
	for _, it := range items {
		name, ok := names[it.ProductID]
		if !ok {
			name = "Producto " + it.ProductID // fallback
			if p, pErr := uc.productRepo.GetByID(ctx, it.ProductID); pErr == nil && p != nil {
				name = p.Name
			}
			names[it.ProductID] = name
		}
		data.Lines = append(data.Lines, InvoiceLineForPDF{LineItem: *it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", shortID(inv.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
