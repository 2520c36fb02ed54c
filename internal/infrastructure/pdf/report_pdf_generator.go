// Package pdf implementa la representación en PDF del reporte de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos activos / ítems totales / stock bajo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Productos | Cantidad                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant | Estado | Últ. mov.     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/control-inventario/internal/application/dto"
	"github.com/jhoicas/control-inventario/internal/application/inventory"
)

var _ inventory.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReportPDF(_ context.Context, report *dto.StockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(categoryHeaderRow())
	for _, r := range categoryRows(report) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(productHeaderRow())
	for _, r := range productRows(report) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: los tres agregados principales del reporte.
func summaryRow(report *dto.StockReport) core.Row {
	return row.New(12).Add(
		summaryCol("Productos activos", report.TotalProducts),
		summaryCol("Ítems en stock", report.TotalItems),
		summaryCol("Stock bajo (<10)", report.LowStockCount),
	)
}

func summaryCol(label string, value int) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray}),
		text.New(fmt.Sprintf("%d", value), props.Text{
			Style: fontstyle.Bold, Size: 12, Top: 4, Color: colorPrimary,
		}),
	)
}

func categoryHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Categoría", 6),
		headerCell("Productos", 3),
		headerCell("Cantidad", 3),
	)
}

// categoryRows: una fila por categoría, orden alfabético estable.
func categoryRows(report *dto.StockReport) []core.Row {
	categories := make([]string, 0, len(report.StatsByCategory))
	for c := range report.StatsByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		stats := report.StatsByCategory[c]
		rows = append(rows, row.New(6).Add(
			bodyCell(c, 6),
			bodyCell(fmt.Sprintf("%d", stats.ProductCount), 3),
			bodyCell(fmt.Sprintf("%d", stats.TotalQuantity), 3),
		))
	}
	return rows
}

func productHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Producto", 4),
		headerCell("Categoría", 2),
		headerCell("Cant.", 1),
		headerCell("Estado", 2),
		headerCell("Último movimiento", 3),
	)
}

func productRows(report *dto.StockReport) []core.Row {
	rows := make([]core.Row, 0, len(report.Products))
	for _, p := range report.Products {
		last := "—"
		if p.LastMovement != nil {
			last = fmt.Sprintf("%s %d (%s)",
				p.LastMovement.Type, p.LastMovement.Quantity,
				p.LastMovement.Date.Format("02/01/2006"))
		}
		rows = append(rows, row.New(6).Add(
			bodyCell(p.Name, 4),
			bodyCell(p.Category, 2),
			bodyCell(fmt.Sprintf("%d", p.Quantity), 1),
			bodyCell(p.Status, 2),
			bodyCell(last, 3),
		))
	}
	return rows
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	)
}

func bodyCell(value string, size int) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8, Top: 1}),
	)
}
