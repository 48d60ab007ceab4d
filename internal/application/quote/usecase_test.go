package quote_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

// ── Fakes ───────────────────────────────────────────────────────────

type fakeCatalog struct {
	snap *catalog.Snapshot
	err  error
}

func (f *fakeCatalog) Snapshot() (*catalog.Snapshot, error) { return f.snap, f.err }

type fakePDF struct {
	calls int
	last  *quote.Document
	err   error
}

func (f *fakePDF) GenerateQuotePDF(_ context.Context, doc *quote.Document) ([]byte, error) {
	f.calls++
	f.last = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type fakeSheet struct{ last *quote.Document }

func (f *fakeSheet) ExportQuoteSheet(_ context.Context, doc *quote.Document) ([]byte, error) {
	f.last = doc
	return []byte("PK"), nil
}

var fixedNow = time.Date(2026, 10, 18, 14, 30, 5, 0, time.UTC)

func testSnapshot() *catalog.Snapshot {
	money := decimal.NewFromInt
	return catalog.NewSnapshot(
		[]*entity.Equipment{
			{ID: "a", Name: "Scanner Pro", CategoryID: "c1", BrandID: "b1",
				PriceGeneral: money(12000), PriceIndividualDoc: money(12000), PriceCorporateDoc: money(12000),
				AcceptsBoleto: true},
			{ID: "b", Name: "Elevador", CategoryID: "c2", BrandID: "b1",
				PriceGeneral: money(5000), PriceIndividualDoc: money(5100), PriceCorporateDoc: money(5200),
				DownPaymentSPCorporate: money(300), AcceptsBoleto: true},
		},
		[]*entity.Brand{{ID: "b1", Name: "Alfa"}},
		[]*entity.Category{{ID: "c1", Name: "Diagnóstico"}, {ID: "c2", Name: "Elevadores"}},
	)
}

type fixture struct {
	uc    *quote.UseCase
	cat   *fakeCatalog
	pdf   *fakePDF
	sheet *fakeSheet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	engine, err := quotation.NewEngine(quotation.DefaultParameters())
	require.NoError(t, err)
	f := &fixture{cat: &fakeCatalog{snap: testSnapshot()}, pdf: &fakePDF{}, sheet: &fakeSheet{}}
	f.uc = quote.NewUseCase(engine, f.cat, f.pdf, f.sheet, "Simulador", zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func validClient() dto.ClientRequest {
	return dto.ClientRequest{SellerName: "Ana", ClientName: "Oficina Central", ClientDocument: "11222333000181"}
}

// ── Simulate ────────────────────────────────────────────────────────

func TestSimulate_BoletoDoceParcelas(t *testing.T) {
	f := newFixture(t)
	res, err := f.uc.Simulate(dto.QuoteRequest{
		Items:  []dto.QuoteItemRequest{{EquipmentID: "a", Quantity: 1}},
		Config: dto.QuoteConfigRequest{InstallmentCount: 12},
	})
	require.NoError(t, err)

	assert.Equal(t, "Boleto", res.Config.PaymentMethod)
	assert.Equal(t, "CNPJ", res.Config.BillingDocType)
	assert.Equal(t, "1200", res.InstallmentValue.String())
	assert.Equal(t, "14400", res.FinancedTotal.String())
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].SupportNote, "categoría de diagnóstico")
	assert.Equal(t, "Alfa", res.Items[0].BrandName)
}

func TestSimulate_EntradaDigitada(t *testing.T) {
	f := newFixture(t)
	v := dto.NewTypedAmount(decimal.NewFromInt(1000))
	res, err := f.uc.Simulate(dto.QuoteRequest{
		Items:  []dto.QuoteItemRequest{{EquipmentID: "b", Quantity: 2}},
		Config: dto.QuoteConfigRequest{DownPayment: &v},
	})
	require.NoError(t, err)
	assert.Equal(t, "override", res.Config.DownPaymentSource)
	assert.Equal(t, "1000", res.DownPayment.String())

	res, err = f.uc.Simulate(dto.QuoteRequest{Items: []dto.QuoteItemRequest{{EquipmentID: "b", Quantity: 2}}})
	require.NoError(t, err)
	assert.Equal(t, "default", res.Config.DownPaymentSource)
	assert.Equal(t, "600", res.DownPayment.String())
}

func TestSimulate_Errores(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Simulate(dto.QuoteRequest{Items: []dto.QuoteItemRequest{{EquipmentID: "zz", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Simulate(dto.QuoteRequest{Items: []dto.QuoteItemRequest{
		{EquipmentID: "a", Quantity: 1}, {EquipmentID: "a", Quantity: 2},
	}})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.uc.Simulate(dto.QuoteRequest{Config: dto.QuoteConfigRequest{PaymentMethod: "Pix"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.cat.err = domain.ErrCatalogLoading
	_, err = f.uc.Simulate(dto.QuoteRequest{})
	assert.ErrorIs(t, err, domain.ErrCatalogLoading)
}

// ── Validate ────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Validate(dto.QuoteRequest{Client: validClient()})
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = f.uc.Validate(dto.QuoteRequest{
		Config: dto.QuoteConfigRequest{BillingDocType: "CPF"},
		Client: validClient(),
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Fields, 1)
	assert.Equal(t, quotation.FieldClientDocument, res.Fields[0].Field)
	assert.Equal(t, "INVALID_LENGTH", res.Fields[0].Code)
}

// ── Exportación ─────────────────────────────────────────────────────

func TestExportPDF_ValidaAntesDeGenerar(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.ExportPDF(context.Background(), dto.QuoteRequest{
		Items: []dto.QuoteItemRequest{{EquipmentID: "a", Quantity: 1}},
	}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Len(t, quote.FieldErrors(err), 3)
	assert.Equal(t, 0, f.pdf.calls, "no se genera con datos incompletos")
}

func TestExportPDF_Documento(t *testing.T) {
	f := newFixture(t)
	client := validClient()
	client.SellerName = ""

	file, err := f.uc.ExportPDF(context.Background(), dto.QuoteRequest{
		Items:  []dto.QuoteItemRequest{{EquipmentID: "a", Quantity: 1}, {EquipmentID: "b", Quantity: 2}},
		Config: dto.QuoteConfigRequest{PaymentMethod: "Cartao", InstallmentCount: 12},
		Client: client,
	}, "Vendedor Token")
	require.NoError(t, err)

	assert.Equal(t, "Simulacao_20261018T143005.pdf", file.Name)
	assert.Equal(t, quote.ContentTypePDF, file.ContentType)
	assert.Equal(t, 1, f.pdf.calls)

	doc := f.pdf.last
	require.NotNil(t, doc)
	assert.Equal(t, "Vendedor Token", doc.SellerName, "vendedor del token cuando falta en el formulario")
	assert.Equal(t, "11.222.333/0001-81", doc.ClientDocument)
	assert.Equal(t, 12, doc.InstallmentCount)
	require.Len(t, doc.Lines, 2)
	assert.True(t, doc.Lines[0].SupportNote)
	assert.False(t, doc.Lines[1].SupportNote)
	assert.Equal(t, "10000", doc.Lines[1].LineTotal.String())
	assert.Equal(t, "22000", doc.Subtotal.String())

	// precios de venta con la tasa de 12x, para el servicio remoto de documentos
	line := doc.Lines[1]
	assert.True(t, quotation.DisplayPrice(decimal.NewFromInt(5000), 12).Equal(line.DisplayUnitPrice))
	assert.True(t, quotation.DisplayPrice(decimal.NewFromInt(10000), 12).Equal(line.DisplayLineTotal))
	assert.True(t, line.DisplayLineTotal.GreaterThan(line.LineTotal))
	assert.True(t, doc.DisplaySubtotal.Equal(doc.Lines[0].DisplayLineTotal.Add(line.DisplayLineTotal)))
}

func TestExportPDF_ErrorDelGenerador(t *testing.T) {
	f := newFixture(t)
	f.pdf.err = domain.ErrDocumentService
	_, err := f.uc.ExportPDF(context.Background(), dto.QuoteRequest{Client: validClient()}, "")
	assert.ErrorIs(t, err, domain.ErrDocumentService)
}

func TestExportSheet(t *testing.T) {
	f := newFixture(t)
	file, err := f.uc.ExportSheet(context.Background(), dto.QuoteRequest{
		Items:  []dto.QuoteItemRequest{{EquipmentID: "b", Quantity: 1}},
		Client: validClient(),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "Simulacao_20261018T143005.xlsx", file.Name)
	assert.Equal(t, quote.ContentTypeXLSX, file.ContentType)
	require.NotNil(t, f.sheet.last)
	assert.Equal(t, "Ana", f.sheet.last.SellerName)
}

func TestCardFees(t *testing.T) {
	fees := newFixture(t).uc.CardFees()
	require.Len(t, fees, 21)
	assert.Equal(t, 1, fees[0].Installments)
	assert.Equal(t, "0.0333", fees[0].Fee.String())
	assert.Equal(t, 21, fees[20].Installments)
}
