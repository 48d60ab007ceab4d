// Package xlsx exporta la simulación a una planilla con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Simulador-api/internal/application/quote"
)

// SheetName nombre de la única hoja de la planilla.
const SheetName = "Simulacao"

// Filas fijas del layout.
const (
	headerRow    = 9
	firstLineRow = 10
)

const moneyFormat = `"R$" #,##0.00`

// Exporter implementa quote.SheetExporter.
type Exporter struct{}

var _ quote.SheetExporter = (*Exporter)(nil)

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportQuoteSheet genera la planilla y devuelve sus bytes.
func (e *Exporter) ExportQuoteSheet(_ context.Context, doc *quote.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("xlsx: documento vacío")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}
	for col, width := range map[string]float64{"A": 42, "B": 8, "C": 18, "D": 18, "E": 20} {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho %s: %w", col, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	w := &writer{f: f}

	// ── Encabezado ──────────────────────────────────────────────────────
	w.set("A1", doc.Title, st.title)
	w.set("A2", doc.CompanyName, 0)
	w.set("A3", "Data: "+doc.IssuedAt.Format("02/01/2006 15:04"), 0)
	w.set("A4", "Vendedor: "+doc.SellerName, 0)
	w.set("A5", "Cliente: "+doc.ClientName, 0)
	w.set("A6", string(doc.BillingDocType)+": "+doc.ClientDocument, 0)
	w.set("A7", fmt.Sprintf("Pagamento: %s %dx | Localização: %s | Condição: %s",
		doc.PaymentMethod, doc.InstallmentCount, doc.Location, doc.Condition), 0)

	// ── Tabla de equipos ────────────────────────────────────────────────
	for i, h := range []string{"Equipamento", "Qtd", "Valor Unit.", "Total", "Observação"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		w.set(cell, h, st.header)
	}
	r := firstLineRow
	for _, l := range doc.Lines {
		w.set(cellName("A", r), l.Name, 0)
		w.set(cellName("B", r), l.Quantity, 0)
		w.money(cellName("C", r), l.UnitPrice, st.money)
		w.money(cellName("D", r), l.LineTotal, st.money)
		if l.SupportNote {
			w.set(cellName("E", r), quote.SupportNote, 0)
		}
		r++
	}

	// ── Resultados ──────────────────────────────────────────────────────
	r++
	for _, it := range []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", doc.Subtotal},
		{"Entrada", doc.DownPayment},
		{"Valor da Parcela", doc.InstallmentValue},
		{"Desconto", doc.Discount},
		{"Frete", doc.Freight},
		{"Base NF", doc.FiscalBase},
		{"NF Produto", doc.ProductInvoiceAmount},
		{"NF Serviço", doc.ServiceInvoiceAmount},
		{"Desc. Fiscal", doc.FiscalDeduction},
		{"À Vista", doc.CashTotal},
		{fmt.Sprintf("Total %dx", doc.InstallmentCount), doc.FinancedTotal},
	} {
		w.set(cellName("C", r), it.label, st.label)
		w.money(cellName("D", r), it.value, st.money)
		r++
	}
	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// ResultsStartRow fila donde empieza el bloque de resultados para n equipos.
func ResultsStartRow(lines int) int { return firstLineRow + lines + 1 }

// ── helpers ───────────────────────────────────────────────────────────

type styles struct {
	title, header, label, money int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return s, fmt.Errorf("xlsx: estilo título: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
	}); err != nil {
		return s, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("xlsx: estilo etiqueta: %w", err)
	}
	numFmt := moneyFormat
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return s, fmt.Errorf("xlsx: estilo moneda: %w", err)
	}
	return s, nil
}

// writer acumula el primer error de escritura.
type writer struct {
	f   *excelize.File
	err error
}

func (w *writer) set(cell string, v any, style int) {
	if w.err != nil {
		return
	}
	if w.err = w.f.SetCellValue(SheetName, cell, v); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(SheetName, cell, cell, style)
	}
}

func (w *writer) money(cell string, v decimal.Decimal, style int) {
	w.set(cell, v.InexactFloat64(), style)
}

func cellName(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
