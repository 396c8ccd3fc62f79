// Package pdf render del reporte de valorización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                   │
//	│  ─────────────────────────────────────────────────────  │
//	│  RESUMEN: valor total | ítems únicos | movimientos       │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABLA: Código | Proyecto | Valor | Ítems                │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/mdmgroup/inventory-api/internal/application/reports"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ValuationPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type ValuationPDFGenerator struct{}

var _ reports.PDFGenerator = (*ValuationPDFGenerator)(nil)

// NewValuationPDFGenerator construye el generador.
func NewValuationPDFGenerator() *ValuationPDFGenerator { return &ValuationPDFGenerator{} }

// GenerateValuationPDF genera el PDF y devuelve sus bytes.
func (g *ValuationPDFGenerator) GenerateValuationPDF(report *reports.ValuationReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Valuation Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range projectRows(report.Projects) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(report *reports.ValuationReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Inventory Valuation Report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: bloque de los tres agregados globales.
func summaryRow(s repository.ValuationSummary) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		metric("TOTAL VALUE", "$"+s.TotalValue.StringFixed(2)),
		metric("UNIQUE ITEMS", fmt.Sprintf("%d", s.UniqueItems)),
		metric("TOTAL MOVEMENTS", fmt.Sprintf("%d", s.TotalMovements)),
	)
}

// tableHeaderRow: cabecera de la tabla por proyecto.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Code", 2, align.Left),
		h("Project", 6, align.Left),
		h("Value", 3, align.Right),
		h("Items", 1, align.Right),
	)
}

// projectRows: una fila por proyecto.
func projectRows(projects []repository.ProjectValuation) []core.Row {
	result := make([]core.Row, 0, len(projects))
	for _, p := range projects {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.Code,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+p.ProjectValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", p.ItemCount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
