// Package pdf genera el "Relatório de Simulação Financeira" localmente con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título      │  Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Vendedor / Cliente / Documento                             │
//	│  Forma de pago / Localización / Faturamento / Condición     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Equipo (Nx nombre) | Valor unit. | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADOS: Parcela / Desconto / Base NF / NF Produto ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de simulación                              │
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

	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/pkg/brl"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa quote.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ quote.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateQuotePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, doc *quote.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc))
	m.AddRows(conditionsRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resultRows(doc)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y fecha (der).
func headerRow(doc *quote.Document) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Data: "+doc.IssuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// partiesRow: vendedor y cliente.
func partiesRow(doc *quote.Document) core.Row {
	return row.New(14).Add(
		col.New(4).Add(
			label("VENDEDOR", 1),
			text.New(doc.SellerName, props.Text{Size: 10, Top: 6}),
		),
		col.New(8).Add(
			label("CLIENTE", 1),
			text.New(doc.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(string(doc.BillingDocType)+": "+doc.ClientDocument, props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// conditionsRow: configuración de pago elegida.
func conditionsRow(doc *quote.Document) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Pagamento: %s %dx   |   Localização: %s   |   Faturamento: %s   |   Condição: %s",
			paymentLabel(doc.PaymentMethod),
			doc.InstallmentCount,
			doc.Location,
			doc.BillingDocType,
			doc.Condition,
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// tableHeaderRow: cabecera de la tabla de equipos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Equipamento", 7, align.Left),
		h("Valor Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRows: una fila por equipo; los de diagnóstico llevan la nota de suporte.
func tableDetailRows(lines []quote.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := fmt.Sprintf("%dx %s", l.Quantity, l.Name)
		height := 7.0
		desc := col.New(7).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1}))
		if l.SupportNote {
			height = 11
			desc.Add(text.New(quote.SupportNote, props.Text{
				Size: 7, Style: fontstyle.Italic, Top: 6, Left: 1, Color: colorGray,
			}))
		}
		result = append(result, row.New(height).Add(
			desc,
			col.New(2).Add(text.New(
				brl.Format(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				brl.Format(l.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// resultRows: bloque de resultados alineado a la derecha.
func resultRows(doc *quote.Document) []core.Row {
	type item struct {
		label string
		value string
		grand bool
	}
	items := []item{
		{label: "Subtotal", value: brl.Format(doc.Subtotal)},
		{label: "Entrada", value: brl.Format(doc.DownPayment)},
		{label: "Valor da Parcela", value: fmt.Sprintf("%dx %s", doc.InstallmentCount, brl.Format(doc.InstallmentValue))},
		{label: "Desconto", value: brl.Format(doc.Discount)},
		{label: "Frete", value: brl.Format(doc.Freight)},
		{label: "Base NF", value: brl.Format(doc.FiscalBase)},
		{label: "NF Produto", value: brl.Format(doc.ProductInvoiceAmount)},
		{label: "NF Serviço", value: brl.Format(doc.ServiceInvoiceAmount)},
		{label: "Desc. Fiscal", value: brl.Format(doc.FiscalDeduction)},
		{label: "À Vista", value: brl.Format(doc.CashTotal), grand: true},
		{label: fmt.Sprintf("Total %dx", doc.InstallmentCount), value: brl.Format(doc.FinancedTotal), grand: true},
	}

	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		style := props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1}
		labelStyle := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1}
		if it.grand {
			style.Style, style.Size, style.Color = fontstyle.Bold, 10, colorPrimary
			labelStyle.Size, labelStyle.Color = 10, colorPrimary
		}
		rows = append(rows, row.New(6).Add(
			col.New(5),
			col.New(4).Add(text.New(it.label+":", labelStyle)),
			col.New(3).Add(text.New(it.value, style)),
		))
	}
	return rows
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Simulação sem valor fiscal. Valores sujeitos a confirmação no faturamento.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func label(s string, top float64) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: top})
}

func paymentLabel(p entity.PaymentMethod) string {
	if p == entity.PaymentCard {
		return "Cartão"
	}
	return string(p)
}
