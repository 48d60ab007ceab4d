package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// SupportNote texto agregado a los equipos de diagnóstico/imobilizador.
const SupportNote = "2 anos de suporte"

// DocumentLine línea de la tabla de equipos. Display* son los precios de venta con la
// tasa de tarjeta de la cantidad de parcelas elegida.
type DocumentLine struct {
	EquipmentID      string          `json:"equipment_id"`
	Name             string          `json:"name"`
	Code             string          `json:"code,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
	DisplayUnitPrice decimal.Decimal `json:"display_unit_price"`
	DisplayLineTotal decimal.Decimal `json:"display_line_total"`
	SupportNote      bool            `json:"support_note"`
}

// Document contenido exportable de una simulación: carrito resuelto, configuración y resultado.
// Es también el payload JSON que recibe el servicio remoto de documentos.
type Document struct {
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	IssuedAt    time.Time `json:"issued_at"`

	SellerName     string `json:"seller_name"`
	ClientName     string `json:"client_name"`
	ClientDocument string `json:"client_document"`

	PaymentMethod     entity.PaymentMethod     `json:"payment_method"`
	Location          entity.Location          `json:"location"`
	BillingDocType    entity.BillingDocType    `json:"billing_doc_type"`
	Condition         entity.Condition         `json:"condition"`
	InstallmentCount  int                      `json:"installment_count"`
	DownPaymentSource entity.DownPaymentSource `json:"down_payment_source"`

	Lines []DocumentLine `json:"lines"`

	Subtotal             decimal.Decimal `json:"subtotal"`
	DisplaySubtotal      decimal.Decimal `json:"display_subtotal"`
	DownPayment          decimal.Decimal `json:"down_payment"`
	Discount             decimal.Decimal `json:"discount"`
	Freight              decimal.Decimal `json:"freight"`
	InstallmentValue     decimal.Decimal `json:"installment_value"`
	FiscalBase           decimal.Decimal `json:"fiscal_base"`
	FiscalDeduction      decimal.Decimal `json:"fiscal_deduction"`
	ProductInvoiceAmount decimal.Decimal `json:"product_invoice_amount"`
	ServiceInvoiceAmount decimal.Decimal `json:"service_invoice_amount"`
	CashTotal            decimal.Decimal `json:"cash_total"`
	FinancedTotal        decimal.Decimal `json:"financed_total"`
}

// Filename nombre del archivo exportado: Simulacao_<aaaammddThhmmss>.<ext>.
func (d *Document) Filename(ext string) string {
	return "Simulacao_" + d.IssuedAt.UTC().Format("20060102T150405") + "." + ext
}
