// Package pdf genera los documentos imprimibles del terminal con Maroto v2:
// la boleta de venta y el reporte de cierre de caja, ambos con formato de
// impresora térmica de 80 mm.
//
//	┌───────────────────────────────┐
//	│  HEADER: tienda + dirección   │
//	│  Fecha / Hora / Ticket / Pago │
//	│  ───────────────────────────  │
//	│  Producto   Cant.   Subtotal  │
//	│  ───────────────────────────  │
//	│  TOTAL                        │
//	│  código de barras del ticket  │
//	│  ¡Gracias por su compra!      │
//	└───────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/olayos/pos-api/internal/application/cashier"
	"github.com/olayos/pos-api/internal/application/checkout"
	"github.com/olayos/pos-api/internal/domain/entity"
	"github.com/olayos/pos-api/internal/domain/pos"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// StoreInfo encabezado de la tienda en boletas y cierres.
type StoreInfo struct {
	Name    string
	Address string
}

var _ checkout.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)
var _ cashier.ClosingReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa los puertos de impresión usando Maroto v2.
type MarotoPDFGenerator struct {
	store StoreInfo
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(store StoreInfo) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{store: store}
}

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithDimensions(80, 220). // ancho térmico 80 mm
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.store.Name, true).
		Build()
	return maroto.New(cfg)
}

// GenerateReceiptPDF genera la boleta de una venta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(_ context.Context, sale *entity.Sale) ([]byte, error) {
	m := g.newDocument("Boleta de venta")

	m.AddRows(g.headerRows()...)
	m.AddRows(
		infoRow("Fecha:", sale.Date.Format("02/01/2006")),
		infoRow("Hora:", sale.Date.Format("15:04:05")),
		infoRow("Ticket:", "#"+ticketNumber(sale.ID)),
		infoRow("Pago:", capitalize(sale.PaymentMethod)),
	)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(row.New(5).Add(
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 7})),
		col.New(2).Add(text.New("Cant.", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center})),
		col.New(4).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right})),
	))
	for _, item := range sale.Items {
		m.AddRows(row.New(5).Add(
			col.New(6).Add(text.New(item.Name, props.Text{Size: 7})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 7, Align: align.Center})),
			col.New(4).Add(text.New(formatCLP(item.Subtotal()), props.Text{Size: 7, Align: align.Right})),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(5).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
		col.New(7).Add(text.New(formatCLP(sale.Total), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1})),
	))

	// Código de barras del ticket, para reimpresiones y devoluciones
	m.AddRows(row.New(14).Add(
		col.New(12).Add(code.NewBar(ticketNumber(sale.ID), props.Barcode{Percent: 80, Center: true})),
	))

	m.AddRows(
		centerRow("¡Gracias por su compra!", 6, fontstyle.Bold),
		centerRow("Vuelva pronto", 6, fontstyle.Normal),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateClosingReportPDF genera el reporte de arqueo al cerrar la caja.
func (g *MarotoPDFGenerator) GenerateClosingReportPDF(_ context.Context, report pos.ClosingReport) ([]byte, error) {
	m := g.newDocument("Cierre de caja")

	m.AddRows(centerRow("CIERRE DE CAJA", 11, fontstyle.Bold))
	m.AddRows(g.headerRows()...)
	m.AddRows(
		infoRow("Fecha:", report.ClosedAt.Format("02/01/2006")),
		infoRow("Hora cierre:", report.ClosedAt.Format("15:04:05")),
	)
	if report.OpenedAt != nil {
		m.AddRows(infoRow("Hora apertura:", report.OpenedAt.Format("15:04:05")))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(
		centerRow("RESUMEN DE VENTAS", 8, fontstyle.Bold),
		infoRow("Transacciones:", fmt.Sprintf("%d", report.TransactionCount)),
		infoRow("Ventas efectivo:", formatCLP(report.CashTotal)),
		infoRow("Ventas tarjeta:", formatCLP(report.CardTotal)),
		infoRow("Total ventas:", formatCLP(report.GrandTotal)),
	)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(
		centerRow("CAJA", 8, fontstyle.Bold),
		infoRow("Fondo inicial:", formatCLP(report.OpeningAmount)),
		infoRow("+ Ventas efectivo:", formatCLP(report.CashTotal)),
	)
	m.AddRows(row.New(10).Add(
		col.New(12).Add(
			text.New("EFECTIVO ESPERADO", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1}),
			text.New(formatCLP(report.ExpectedCash), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5}),
		),
	))

	m.AddRows(centerRow(g.store.Name+" - Sistema POS", 6, fontstyle.Normal))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cierre de caja: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones y helpers ───────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRows() []core.Row {
	return []core.Row{
		centerRow(g.store.Name, 12, fontstyle.Bold),
		centerRow(g.store.Address, 6, fontstyle.Normal),
		line.NewRow(2, props.Line{Thickness: 0.5}),
	}
}

func centerRow(s string, size float64, style fontstyle.Type) core.Row {
	height := size/2 + 2
	return row.New(height).Add(col.New(12).Add(
		text.New(s, props.Text{Style: style, Size: size, Align: align.Center}),
	))
}

func infoRow(label, value string) core.Row {
	return row.New(4).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 7})),
		col.New(6).Add(text.New(value, props.Text{Size: 7, Align: align.Right})),
	)
}

// ticketNumber devuelve los últimos 8 caracteres del ID de la venta, en mayúsculas.
func ticketNumber(saleID string) string {
	clean := strings.ReplaceAll(saleID, "-", "")
	if len(clean) > 8 {
		clean = clean[len(clean)-8:]
	}
	return strings.ToUpper(clean)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatCLP formatea pesos chilenos: sin decimales, punto como separador de miles.
func formatCLP(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, s[i])
		}
		s = string(buf)
	}
	if neg {
		s = "-" + s
	}
	return "$" + s
}
