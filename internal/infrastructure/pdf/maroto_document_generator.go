// Package pdf implementa la rendición PDF del documento ensamblado
// usando Maroto v2. Misma información y mismas cifras derivadas que la
// salida HTML; el color primario del tema tiñe cabecera y totales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio  │  N° Factura + Fechas                    │
//	│  CLIENTE: nombre + detalle                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | Precio unit. | Importe        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  NOTAS + marca de agua (si aplica)                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	appdocuments "github.com/Mekhanofficial/ledgerly-app-sub001/internal/application/documents"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/render"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/currency"
)

var (
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight = &props.Color{Red: 229, Green: 231, Blue: 235}
)

var _ appdocuments.DocumentPDFGenerator = (*MarotoDocumentGenerator)(nil)

// MarotoDocumentGenerator implementa documents.DocumentPDFGenerator.
type MarotoDocumentGenerator struct{}

// NewMarotoDocumentGenerator construye el generador.
func NewMarotoDocumentGenerator() *MarotoDocumentGenerator {
	return &MarotoDocumentGenerator{}
}

// GenerateDocumentPDF genera el PDF del documento y devuelve sus bytes.
func (g *MarotoDocumentGenerator) GenerateDocumentPDF(
	_ context.Context,
	in entity.DocumentInput,
	theme render.Theme,
	summary render.MonetarySummary,
	money *currency.Formatter,
) ([]byte, error) {
	primary := parseRGB(theme.Primary)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+in.Number, true).
		WithAuthor(in.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.5}))
	m.AddRows(customerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(primary))
	for _, r := range tableItemRows(in.Items, money) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.3}))
	for _, r := range totalsRows(summary, money, primary) {
		m.AddRows(r)
	}

	if theme.ShowWatermark && theme.WatermarkText != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(theme.WatermarkText, props.Text{
				Size: 8, Align: align.Center, Color: colorLight, Top: 2,
			}),
		)))
	}
	if in.Notes != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorLight, Thickness: 0.3}))
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(in.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: negocio (izq) y número + fechas (der).
func headerRow(in entity.DocumentInput, primary *props.Color) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(in.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: primary, Top: 1,
			}),
			text.New(in.BusinessDetail, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: primary, Top: 1,
			}),
			text.New(in.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(
				fmt.Sprintf("Emitida: %s   Vence: %s",
					in.IssueDate.Format("02/01/2006"), in.DueDate.Format("02/01/2006")),
				props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray},
			),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(in entity.DocumentInput) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(in.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(in.CustomerDetail, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(primary *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: primary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Descripción", 6, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []entity.DocumentLineItem, money *currency.Formatter) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.Format(it.Quantity.Mul(it.UnitPrice)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha, una fila por cifra.
func totalsRows(summary render.MonetarySummary, money *currency.Formatter, primary *props.Color) []core.Row {
	totalLine := func(label, amount string) core.Row {
		return row.New(6).Add(
			col.New(5),
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(amount, props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 1,
			})),
		)
	}

	taxLabel := summary.TaxName
	if !summary.TaxRate.IsZero() {
		taxLabel = fmt.Sprintf("%s (%s%%)", summary.TaxName, summary.TaxRate.String())
	}

	result := []core.Row{totalLine("Subtotal:", money.Format(summary.Subtotal))}
	if summary.ShowTax {
		result = append(result, totalLine(taxLabel+":", money.Format(summary.TaxAmount)))
	}
	result = append(result, row.New(8).Add(
		col.New(5),
		col.New(4).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 2, Color: primary,
		})),
		col.New(3).Add(text.New(money.Format(summary.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 2, Color: primary,
		})),
	))
	return result
}

// parseRGB convierte un "rgb(r,g,b)" del tema al color de Maroto.
// String malformado degrada al azul por defecto de la app.
func parseRGB(s string) *props.Color {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
		return &props.Color{Red: 37, Green: 99, Blue: 235}
	}
	return &props.Color{Red: r, Green: g, Blue: b}
}
