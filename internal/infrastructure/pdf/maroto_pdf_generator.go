// Package pdf genera la versión imprimible de las facturas de cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: nombre de la app      │  N° Factura + Fecha + Estado│
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto    │  PROYECTO / ORDEN           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Subtotal                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Suma de líneas / Impuestos / TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de referencia + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/Proyectos-api/internal/application/billing"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador. issuer aparece en la cabecera.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, data *appbilling.InvoicePDFData) ([]byte, error) {
	if data == nil || data.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+data.Invoice.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(data.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(issuer string, data *appbilling.InvoicePDFData) core.Row {
	inv := data.Invoice
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.ID, props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", inv.CreatedAt.Format("02/01/2006"), inv.Status), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func partiesRow(data *appbilling.InvoicePDFData) core.Row {
	customerName, contact := "Sin cliente", "—"
	if c := data.Customer; c != nil {
		customerName = c.Name
		contact = fmt.Sprintf("Email: %s   |   Tel: %s", nonEmpty(c.Email, "—"), nonEmpty(c.Phone, "—"))
	}
	project, order := "—", "—"
	if data.Project != nil {
		project = data.Project.Name
	}
	if so := data.SalesOrder; so != nil {
		order = nonEmpty(so.OrderNo, so.ID)
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(customerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Proyecto: "+project, props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New("Orden de venta: "+order, props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Descripción del producto/servicio", 7, align.Left),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(lines []appbilling.InvoiceLineForPDF) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin líneas registradas", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(7).Add(text.New(l.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New("$"+formatMoney(l.SubTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// LinesTotal suma los subtotales de las líneas.
func LinesTotal(lines []appbilling.InvoiceLineForPDF) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.SubTotal)
	}
	return sum
}

func totalsRow(data *appbilling.InvoicePDFData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	tax := decimal.Zero
	if so := data.SalesOrder; so != nil && so.Tax.Valid {
		tax = so.Tax.Decimal
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Suma de líneas:"),
			label("Impuestos (orden):"),
			text.New("TOTAL FACTURA:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(3).Add(
			value("$"+formatMoney(LinesTotal(data.Lines))),
			value("$"+formatMoney(tax)),
			text.New("$"+formatMoney(data.Invoice.Amount), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}),
		),
	)
}

func footerRow(data *appbilling.InvoicePDFData) core.Row {
	ref := fmt.Sprintf("invoice:%s|amount:%s", data.Invoice.ID, data.Invoice.Amount.StringFixed(2))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia de la factura", props.Text{Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3, Color: colorPrimary}),
			text.New(ref, props.Text{Size: 7, Top: 10, Left: 3, Color: colorGray}),
			text.New("Documento generado automáticamente. Conserve este documento como soporte.", props.Text{
				Size: 6.5, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal (2 decimales).
// Ej: 25000 → "25.000,00", -1234.5 → "-1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
