package xlsx_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/xlsx"
)

func TestExportQuoteSheet(t *testing.T) {
	m := decimal.NewFromInt
	doc := &quote.Document{
		Title:            "Relatório de Simulação Financeira",
		CompanyName:      "Simulador",
		IssuedAt:         time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC),
		SellerName:       "Ana",
		ClientName:       "Oficina Central",
		ClientDocument:   "11.222.333/0001-81",
		PaymentMethod:    entity.PaymentBoleto,
		BillingDocType:   entity.BillingCorporate,
		InstallmentCount: 12,
		Lines: []quote.DocumentLine{
			{Name: "Scanner Pro", Quantity: 1, UnitPrice: m(12000), LineTotal: m(12000), SupportNote: true},
			{Name: "Elevador", Quantity: 2, UnitPrice: m(5000), LineTotal: m(10000)},
		},
		Subtotal:         m(22000),
		InstallmentValue: m(2200),
		FinancedTotal:    m(26400),
	}

	out, err := xlsx.NewExporter().ExportQuoteSheet(context.Background(), doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetName}, f.GetSheetList())

	get := func(cell string) string {
		v, err := f.GetCellValue(xlsx.SheetName, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, doc.Title, get("A1"))
	assert.Equal(t, "Cliente: Oficina Central", get("A5"))
	assert.Equal(t, "Equipamento", get("A9"))
	assert.Equal(t, "Scanner Pro", get("A10"))
	assert.Equal(t, quote.SupportNote, get("E10"))
	assert.Equal(t, "2", get("B11"))
	assert.Empty(t, get("E11"))

	start := xlsx.ResultsStartRow(len(doc.Lines))
	assert.Equal(t, "Subtotal", get("C13"))
	assert.Equal(t, 13, start)
	last := start + 10
	assert.Equal(t, "Total 12x", get("C"+strconv.Itoa(last)))
}

func TestExportQuoteSheet_Nil(t *testing.T) {
	_, err := xlsx.NewExporter().ExportQuoteSheet(context.Background(), nil)
	assert.Error(t, err)
}
