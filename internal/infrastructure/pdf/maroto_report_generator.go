// Package pdf implementa la exportación a PDF del resumen de actividad por
// empleado (Audit Trail del Command Center).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: RIDE 1 Command Center  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Movimientos | Varianza negativa          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: ventana considerada + nota sobre la cubeta UNKNOWN    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.ActivityPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ActivityPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateActivityPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateActivityPDF(
	_ context.Context,
	generatedAt time.Time,
	summary *dto.EmployeeActivityResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Activity Summary", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(summary.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(summary.WindowSize))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RIDE 1 COMMAND CENTER", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Employee Activity Summary", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del resumen.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empleado", 6, align.Left),
		h("Movimientos", 3, align.Right),
		h("Varianza negativa", 3, align.Right),
	)
}

// tableRows: una fila por empleado del resumen.
func tableRows(rows []dto.EmployeeActivityDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				r.EmployeeID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", r.TotalMovements),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				r.TotalNegativeVariance.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: ventana considerada y nota sobre la cubeta UNKNOWN.
func footerRow(windowSize int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Ventana: últimos %d movimientos del log.", windowSize), props.Text{
				Size: 7, Top: 2, Color: colorGray,
			}),
			text.New("UNKNOWN agrupa movimientos sin employee_id (NULL o vacío).", props.Text{
				Size: 7, Top: 6, Color: colorGray,
			}),
		),
	)
}
