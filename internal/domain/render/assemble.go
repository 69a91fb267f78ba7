package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/Mekhanofficial/ledgerly-app-sub001/internal/domain/entity"
	"github.com/Mekhanofficial/ledgerly-app-sub001/pkg/currency"
)

// MonetarySummary cifras derivadas que el documento muestra junto al
// total autoritativo del feature de facturación.
type MonetarySummary struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxName   string
	TaxAmount decimal.Decimal
	ShowTax   bool
	Total     decimal.Decimal
}

// DeriveMonetary aplica las reglas de derivación monetaria, en orden y
// con fallback independiente por campo:
//
//	subtotal  = el de la factura si viene; si no, Σ(cantidad × precio unitario)
//	taxRate   = taxRateUsed si viene; si no, 0
//	taxAmount = el de la factura si viene; si no, subtotal × taxRate/100 (0 si rate 0)
//	showTax   = taxAmount > 0 || taxRate > 0
//	total     = SIEMPRE el Amount de la factura; nunca se recalcula aquí
func DeriveMonetary(in entity.DocumentInput) MonetarySummary {
	subtotal := decimal.Zero
	if in.Subtotal != nil {
		subtotal = *in.Subtotal
	} else {
		for _, item := range in.Items {
			subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice))
		}
	}

	taxRate := decimal.Zero
	if in.TaxRateUsed != nil {
		taxRate = *in.TaxRateUsed
	}

	taxAmount := decimal.Zero
	switch {
	case in.TaxAmount != nil:
		taxAmount = *in.TaxAmount
	case !taxRate.IsZero():
		taxAmount = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	}

	taxName := in.TaxName
	if taxName == "" {
		taxName = "Tax"
	}

	return MonetarySummary{
		Subtotal:  subtotal,
		TaxRate:   taxRate,
		TaxName:   taxName,
		TaxAmount: taxAmount,
		ShowTax:   taxAmount.GreaterThan(decimal.Zero) || taxRate.GreaterThan(decimal.Zero),
		Total:     in.Amount,
	}
}

const documentHTMLTemplate = `<!doctype html>
<html lang="es">
<head>
  <meta charset="utf-8" />
  <title>Factura {{.Number}}</title>
  <style>
    :root {
      --primary: {{.Primary}};
      --secondary: {{.Secondary}};
      --accent: {{.Accent}};
      --text: {{.Text}};
      --border: {{.Border}};
    }
    * { box-sizing: border-box; }
    body { margin: 0; background: #ffffff; color: var(--text);
      font-family: "{{.BodyFont}}", "Helvetica Neue", Arial, sans-serif; }
    .page { position: relative; max-width: 820px; margin: 0 auto;
      padding: {{.PaddingTop}}px 48px {{.PaddingBottom}}px; {{.PageStyle}} }
    h1, h2, .title { font-family: "{{.TitleFont}}", "Helvetica Neue", Arial, sans-serif; }
    .watermark { position: absolute; inset: 0; display: flex; align-items: center;
      justify-content: center; pointer-events: none; font-size: 96px; font-weight: 700;
      color: var(--border); opacity: 0.35; transform: rotate(-24deg); z-index: 0; }
    .content { position: relative; z-index: 1; }
    .masthead { display: flex; justify-content: space-between; align-items: flex-start;
      margin: 18px 0 24px; }
    .masthead .title { font-size: 22px; color: var(--primary); margin: 0; }
    .meta { text-align: right; font-size: 13px; }
    .meta .label { color: var(--secondary); text-transform: uppercase;
      letter-spacing: 0.04em; font-size: 10px; }
    .parties { display: flex; justify-content: space-between; gap: 24px;
      font-size: 13px; margin-bottom: 24px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 9px 8px; border-bottom: 1px solid var(--border); text-align: left; }
    th { text-transform: uppercase; font-size: 10px; letter-spacing: 0.04em;
      color: var(--secondary); }
    td.num, th.num { text-align: right; }
    .totals { margin-top: 14px; margin-left: auto; width: 280px; font-size: 13px; }
    .totals .row { display: flex; justify-content: space-between; padding: 4px 8px; }
    .totals .grand { border-top: 2px solid var(--primary); color: var(--primary);
      font-size: 16px; font-weight: 700; margin-top: 4px; padding-top: 8px; }
    .notes { margin-top: 28px; font-size: 12px; color: var(--secondary); }
  </style>
</head>
<body>
  <div class="page" {{if .PageStyle}}data-decorated="true"{{end}}>
    {{if .ShowWatermark}}<div class="watermark">{{.WatermarkText}}</div>{{end}}
    {{.HeaderHTML}}
    <div class="content">
      <div class="masthead">
        <div>
          <h1 class="title">{{.BusinessName}}</h1>
          {{if .BusinessDetail}}<div>{{.BusinessDetail}}</div>{{end}}
        </div>
        <div class="meta">
          <div class="label">Factura</div>
          <div><strong>{{.Number}}</strong></div>
          <div>Emitida: {{.IssueDate}}</div>
          <div>Vence: {{.DueDate}}</div>
        </div>
      </div>

      <div class="parties">
        <div>
          <div class="label">Facturar a</div>
          <div><strong>{{.CustomerName}}</strong></div>
          {{if .CustomerDetail}}<div>{{.CustomerDetail}}</div>{{end}}
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th>Descripción</th>
            <th class="num">Cant.</th>
            <th class="num">Precio unit.</th>
            <th class="num">Importe</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{.Quantity}}</td>
            <td class="num">{{.UnitPrice}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>

      <div class="totals">
        <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
        {{if .ShowTax}}<div class="row"><span>{{.TaxLabel}}</span><span>{{.TaxAmount}}</span></div>{{end}}
        <div class="row grand"><span>Total</span><span>{{.Total}}</span></div>
      </div>

      {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
    </div>
    {{.FooterHTML}}
  </div>
</body>
</html>
`

var documentTpl = template.Must(template.New("document").Parse(documentHTMLTemplate))

// documentView datos ya formateados que consume la plantilla HTML.
// Todo string monetario pasó por el mismo Formatter.
type documentView struct {
	Number    string
	IssueDate string
	DueDate   string

	BusinessName   string
	BusinessDetail string
	CustomerName   string
	CustomerDetail string
	Notes          string

	Primary   template.CSS
	Secondary template.CSS
	Accent    template.CSS
	Text      template.CSS
	Border    template.CSS
	TitleFont string
	BodyFont  string

	HeaderHTML template.HTML
	FooterHTML template.HTML
	PageStyle  template.CSS

	PaddingTop    int
	PaddingBottom int

	ShowWatermark bool
	WatermarkText string

	Items []documentLineView

	Subtotal  string
	TaxLabel  string
	TaxAmount string
	Total     string
	ShowTax   bool
}

type documentLineView struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// AssembleDocument combina datos transaccionales, tema y decoración en
// el documento HTML final (pensado para impresión / conversión a PDF).
// Determinista: misma entrada, mismo markup; la única fecha que aparece
// es la que trae la propia factura.
func AssembleDocument(
	in entity.DocumentInput,
	t Theme,
	deco Decoration,
	money *currency.Formatter,
) (string, error) {
	summary := DeriveMonetary(in)

	items := make([]documentLineView, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, documentLineView{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   money.Format(item.UnitPrice),
			Amount:      money.Format(item.Quantity.Mul(item.UnitPrice)),
		})
	}

	taxLabel := summary.TaxName
	if !summary.TaxRate.IsZero() {
		taxLabel = fmt.Sprintf("%s (%s%%)", summary.TaxName, summary.TaxRate.String())
	}

	view := documentView{
		Number:    in.Number,
		IssueDate: in.IssueDate.Format("02/01/2006"),
		DueDate:   in.DueDate.Format("02/01/2006"),

		BusinessName:   in.BusinessName,
		BusinessDetail: in.BusinessDetail,
		CustomerName:   in.CustomerName,
		CustomerDetail: in.CustomerDetail,
		Notes:          in.Notes,

		Primary:   template.CSS(t.Primary),
		Secondary: template.CSS(t.Secondary),
		Accent:    template.CSS(t.Accent),
		Text:      template.CSS(t.Text),
		Border:    template.CSS(t.Border),
		TitleFont: t.TitleFont,
		BodyFont:  t.BodyFont,

		HeaderHTML: template.HTML(deco.HeaderHTML),
		FooterHTML: template.HTML(deco.FooterHTML),
		PageStyle:  template.CSS(deco.PageStyleAttr),

		PaddingTop:    deco.PaddingTop,
		PaddingBottom: deco.PaddingBottom,

		ShowWatermark: t.ShowWatermark,
		WatermarkText: t.WatermarkText,

		Items: items,

		Subtotal:  money.Format(summary.Subtotal),
		TaxLabel:  taxLabel,
		TaxAmount: money.Format(summary.TaxAmount),
		Total:     money.Format(summary.Total),
		ShowTax:   summary.ShowTax,
	}

	var buf bytes.Buffer
	if err := documentTpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render: ensamblar documento: %w", err)
	}
	return buf.String(), nil
}
