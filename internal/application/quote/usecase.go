// Package quote casos de uso de la simulación: cálculo sin estado, validación previa
// a la exportación, exportación a PDF/planilla y borradores editables en el servidor.
package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
	"github.com/jhoicas/Simulador-api/pkg/brdoc"
)

// CatalogReader lo que los casos de uso necesitan del catálogo.
type CatalogReader interface {
	Snapshot() (*catalog.Snapshot, error)
}

// ExportFile archivo generado.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// UseCase simulación sin estado sobre el catálogo en memoria.
type UseCase struct {
	engine      *quotation.Engine
	catalog     CatalogReader
	pdf         PDFGenerator
	sheet       SheetExporter
	companyName string
	now         func() time.Time
	log         zerolog.Logger
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	engine *quotation.Engine,
	catalog CatalogReader,
	pdf PDFGenerator,
	sheet SheetExporter,
	companyName string,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		engine:      engine,
		catalog:     catalog,
		pdf:         pdf,
		sheet:       sheet,
		companyName: companyName,
		now:         time.Now,
		log:         log,
	}
}

// WithClock reemplaza el reloj (nombres de archivo deterministas en tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Simulate calcula la cotización.
func (uc *UseCase) Simulate(req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	snap, res, err := uc.compute(req)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(snap, res), nil
}

// Validate ejecuta las verificaciones de vendedor, cliente y documento.
// Las fallas vuelven en la respuesta, no como error.
func (uc *UseCase) Validate(req dto.QuoteRequest) (*dto.ValidationResponse, error) {
	cfg, err := toConfiguration(req.Config)
	if err != nil {
		return nil, err
	}
	verr := quotation.ValidateClient(toClientInfo(req.Client), cfg.BillingDocType)
	if verr == nil {
		return &dto.ValidationResponse{Valid: true}, nil
	}
	var ve *quotation.ValidationError
	if errors.As(verr, &ve) {
		return &dto.ValidationResponse{Valid: false, Fields: toFieldErrors(ve.Fields)}, nil
	}
	return nil, verr
}

// ExportPDF valida, calcula y genera el PDF. sellerName completa el vendedor si no vino en el formulario.
func (uc *UseCase) ExportPDF(ctx context.Context, req dto.QuoteRequest, sellerName string) (*ExportFile, error) {
	doc, err := uc.buildExport(req, sellerName)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.GenerateQuotePDF(ctx, doc)
	if err != nil {
		uc.log.Error().Err(err).Str("cliente", doc.ClientName).Msg("error generando PDF de la simulación")
		return nil, fmt.Errorf("pdf: %w", err)
	}
	uc.log.Info().Str("cliente", doc.ClientName).Int("equipos", len(doc.Lines)).Int("bytes", len(data)).Msg("PDF de simulación generado")
	return &ExportFile{Name: doc.Filename("pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

// ExportSheet valida, calcula y genera la planilla.
func (uc *UseCase) ExportSheet(ctx context.Context, req dto.QuoteRequest, sellerName string) (*ExportFile, error) {
	doc, err := uc.buildExport(req, sellerName)
	if err != nil {
		return nil, err
	}
	data, err := uc.sheet.ExportQuoteSheet(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("planilla: %w", err)
	}
	uc.log.Info().Str("cliente", doc.ClientName).Int("bytes", len(data)).Msg("planilla de simulación generada")
	return &ExportFile{Name: doc.Filename("xlsx"), ContentType: ContentTypeXLSX, Data: data}, nil
}

// CardFees tabla de tasas de tarjeta en orden de parcelas.
func (uc *UseCase) CardFees() []dto.CardFeeDTO {
	fees := quotation.CardFees()
	out := make([]dto.CardFeeDTO, 0, len(fees))
	for n := 1; n <= len(fees); n++ {
		out = append(out, dto.CardFeeDTO{Installments: n, Fee: fees[n]})
	}
	return out
}

func (uc *UseCase) buildExport(req dto.QuoteRequest, sellerName string) (*Document, error) {
	client := toClientInfo(req.Client)
	if strings.TrimSpace(client.SellerName) == "" {
		client.SellerName = sellerName
	}
	snap, res, err := uc.compute(req)
	if err != nil {
		return nil, err
	}
	if err := quotation.ValidateClient(client, res.Config.BillingDocType); err != nil {
		return nil, err
	}
	return buildDocument(uc.companyName, uc.now(), snap, res, client), nil
}

func (uc *UseCase) compute(req dto.QuoteRequest) (*catalog.Snapshot, *quotation.Result, error) {
	snap, err := uc.catalog.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	cart, err := resolveCart(snap, req.Items)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := toConfiguration(req.Config)
	if err != nil {
		return nil, nil, err
	}
	res, err := uc.engine.Compute(cart, cfg)
	if err != nil {
		return nil, nil, err
	}
	return snap, res, nil
}

// resolveCart busca cada equipo en el catálogo. Un equipo solo puede aparecer una vez.
func resolveCart(snap *catalog.Snapshot, items []dto.QuoteItemRequest) ([]entity.CartSlot, error) {
	cart := make([]entity.CartSlot, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		eq, ok := snap.EquipmentByID(it.EquipmentID)
		if !ok {
			return nil, fmt.Errorf("%w: equipo %s", domain.ErrNotFound, it.EquipmentID)
		}
		if _, dup := seen[eq.ID]; dup {
			return nil, fmt.Errorf("%w: equipo %s repetido en el carrito", domain.ErrDuplicate, eq.ID)
		}
		seen[eq.ID] = struct{}{}
		cart = append(cart, entity.CartSlot{Equipment: eq, Quantity: int(it.Quantity)})
	}
	return cart, nil
}

func toConfiguration(in dto.QuoteConfigRequest) (entity.QuoteConfiguration, error) {
	cfg := entity.DefaultQuoteConfiguration()
	if in.PaymentMethod != "" {
		cfg.PaymentMethod = entity.PaymentMethod(in.PaymentMethod)
	}
	if in.Location != "" {
		cfg.Location = entity.Location(in.Location)
	}
	if in.BillingDocType != "" {
		cfg.BillingDocType = entity.BillingDocType(in.BillingDocType)
	}
	if in.Condition != "" {
		cfg.Condition = entity.Condition(in.Condition)
	}
	cfg.InstallmentCount = in.InstallmentCount
	cfg.Discount = in.Discount.Decimal()
	cfg.Freight = in.Freight.Decimal()
	if in.DownPayment != nil {
		cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: in.DownPayment.Decimal()}
	}
	if !cfg.PaymentMethod.Valid() || !cfg.Location.Valid() || !cfg.BillingDocType.Valid() || !cfg.Condition.Valid() {
		return cfg, fmt.Errorf("%w: configuración de pago inválida", domain.ErrInvalidInput)
	}
	return cfg, nil
}

func toClientInfo(in dto.ClientRequest) entity.ClientInfo {
	return entity.ClientInfo{
		SellerName:     strings.TrimSpace(in.SellerName),
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientDocument: strings.TrimSpace(in.ClientDocument),
	}
}

func toFieldErrors(fields []quotation.FieldError) []dto.FieldErrorDTO {
	out := make([]dto.FieldErrorDTO, 0, len(fields))
	for _, f := range fields {
		out = append(out, dto.FieldErrorDTO{Field: f.Field, Code: f.Code, Message: f.Message})
	}
	return out
}

// FieldErrors extrae el detalle por campo de un error de validación (nil si no lo es).
func FieldErrors(err error) []dto.FieldErrorDTO {
	var ve *quotation.ValidationError
	if errors.As(err, &ve) {
		return toFieldErrors(ve.Fields)
	}
	return nil
}

func toQuoteResponse(snap *catalog.Snapshot, res *quotation.Result) *dto.QuoteResponse {
	out := &dto.QuoteResponse{
		Config: dto.QuoteConfigResponse{
			PaymentMethod:     string(res.Config.PaymentMethod),
			Location:          string(res.Config.Location),
			BillingDocType:    string(res.Config.BillingDocType),
			Condition:         string(res.Config.Condition),
			InstallmentCount:  res.Config.InstallmentCount,
			DownPaymentSource: string(res.DownPaymentSource),
			Discount:          res.Config.Discount,
			Freight:           res.Config.Freight,
		},
		Capabilities: dto.CapabilitiesDTO{
			BoletoAvailable:      res.Capabilities.BoletoAvailable,
			InstallmentsDisabled: res.Capabilities.InstallmentsDisabled,
			MaxInstallments:      res.Capabilities.MaxInstallments,
		},
		Items:                make([]dto.QuoteLineResponse, 0, len(res.Items)),
		Subtotal:             res.Subtotal,
		DisplaySubtotal:      res.DisplaySubtotal,
		DownPayment:          res.DownPayment,
		FiscalBase:           res.FiscalBase,
		FiscalDeduction:      res.FiscalDeduction,
		FinancingBalance:     res.FinancingBalance,
		InstallmentValue:     res.InstallmentValue,
		ProductInvoiceAmount: res.ProductInvoiceAmount,
		ServiceInvoiceAmount: res.ServiceInvoiceAmount,
		CashTotal:            res.CashTotal,
		FinancedTotal:        res.FinancedTotal,
	}
	for _, it := range res.Items {
		category := snap.CategoryName(it.CategoryID)
		out.Items = append(out.Items, dto.QuoteLineResponse{
			Slot:             it.Slot,
			EquipmentID:      it.EquipmentID,
			Name:             it.Name,
			Code:             it.Code,
			BrandName:        snap.BrandName(it.BrandID),
			CategoryName:     category,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			LineTotal:        it.LineTotal,
			DisplayUnitPrice: it.DisplayUnitPrice,
			DisplayLineTotal: it.DisplayLineTotal,
			SupportNote:      quotation.IsDiagnosticCategory(category),
		})
	}
	return out
}

func buildDocument(company string, issuedAt time.Time, snap *catalog.Snapshot, res *quotation.Result, client entity.ClientInfo) *Document {
	doc := &Document{
		Title:                "Relatório de Simulação Financeira",
		CompanyName:          company,
		IssuedAt:             issuedAt,
		SellerName:           client.SellerName,
		ClientName:           client.ClientName,
		ClientDocument:       brdoc.Format(client.ClientDocument),
		PaymentMethod:        res.Config.PaymentMethod,
		Location:             res.Config.Location,
		BillingDocType:       res.Config.BillingDocType,
		Condition:            res.Config.Condition,
		InstallmentCount:     res.Config.InstallmentCount,
		DownPaymentSource:    res.DownPaymentSource,
		Lines:                make([]DocumentLine, 0, len(res.Items)),
		Subtotal:             res.Subtotal,
		DisplaySubtotal:      res.DisplaySubtotal,
		DownPayment:          res.DownPayment,
		Discount:             res.Config.Discount,
		Freight:              res.Config.Freight,
		InstallmentValue:     res.InstallmentValue,
		FiscalBase:           res.FiscalBase,
		FiscalDeduction:      res.FiscalDeduction,
		ProductInvoiceAmount: res.ProductInvoiceAmount,
		ServiceInvoiceAmount: res.ServiceInvoiceAmount,
		CashTotal:            res.CashTotal,
		FinancedTotal:        res.FinancedTotal,
	}
	for _, it := range res.Items {
		category := snap.CategoryName(it.CategoryID)
		doc.Lines = append(doc.Lines, DocumentLine{
			EquipmentID:      it.EquipmentID,
			Name:             it.Name,
			Code:             it.Code,
			CategoryName:     category,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			LineTotal:        it.LineTotal,
			DisplayUnitPrice: it.DisplayUnitPrice,
			DisplayLineTotal: it.DisplayLineTotal,
			SupportNote:      quotation.IsDiagnosticCategory(category),
		})
	}
	return doc
}
