package dto

import "github.com/shopspring/decimal"

// QuoteItemRequest una línea del carrito. Quantity acepta número o texto digitado.
type QuoteItemRequest struct {
	EquipmentID string        `json:"equipment_id" validate:"required"`
	Quantity    TypedQuantity `json:"quantity"`
}

// QuoteConfigRequest opciones de pago. Campos vacíos toman los valores iniciales del formulario
// (Boleto / SP / CNPJ / Normal, parcelas = máximo permitido). DownPayment nil = entrada sugerida.
// Los montos aceptan número o texto de moneda.
type QuoteConfigRequest struct {
	PaymentMethod    string       `json:"payment_method" validate:"omitempty,oneof=Boleto Cartao"`
	Location         string       `json:"location" validate:"omitempty,oneof=SP Outros"`
	BillingDocType   string       `json:"billing_doc_type" validate:"omitempty,oneof=CPF CNPJ"`
	Condition        string       `json:"condition" validate:"omitempty,oneof=Normal Especial"`
	InstallmentCount int          `json:"installment_count" validate:"min=0,max=21"`
	DownPayment      *TypedAmount `json:"down_payment,omitempty"`
	Discount         TypedAmount  `json:"discount"`
	Freight          TypedAmount  `json:"freight"`
}

// ClientRequest datos exigidos antes de exportar.
type ClientRequest struct {
	SellerName     string `json:"seller_name"`
	ClientName     string `json:"client_name"`
	ClientDocument string `json:"client_document"`
}

// QuoteRequest simulación sin estado.
type QuoteRequest struct {
	Items  []QuoteItemRequest `json:"items" validate:"max=200,dive"`
	Config QuoteConfigRequest `json:"config"`
	Client ClientRequest      `json:"client"`
}

// CapabilitiesDTO formas de pago habilitadas para el carrito.
type CapabilitiesDTO struct {
	BoletoAvailable      bool `json:"boleto_available"`
	InstallmentsDisabled bool `json:"installments_disabled"`
	MaxInstallments      int  `json:"max_installments"`
}

// QuoteConfigResponse configuración efectiva usada en el cálculo.
type QuoteConfigResponse struct {
	PaymentMethod     string          `json:"payment_method"`
	Location          string          `json:"location"`
	BillingDocType    string          `json:"billing_doc_type"`
	Condition         string          `json:"condition"`
	InstallmentCount  int             `json:"installment_count"`
	DownPaymentSource string          `json:"down_payment_source"`
	Discount          decimal.Decimal `json:"discount"`
	Freight           decimal.Decimal `json:"freight"`
}

// QuoteLineResponse línea calculada.
type QuoteLineResponse struct {
	Slot             int             `json:"slot"`
	EquipmentID      string          `json:"equipment_id"`
	Name             string          `json:"name"`
	Code             string          `json:"code,omitempty"`
	BrandName        string          `json:"brand_name,omitempty"`
	CategoryName     string          `json:"category_name,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
	DisplayUnitPrice decimal.Decimal `json:"display_unit_price"`
	DisplayLineTotal decimal.Decimal `json:"display_line_total"`
	SupportNote      bool            `json:"support_note"`
}

// QuoteResponse resultado de la simulación.
type QuoteResponse struct {
	Config               QuoteConfigResponse `json:"config"`
	Capabilities         CapabilitiesDTO     `json:"capabilities"`
	Items                []QuoteLineResponse `json:"items"`
	Subtotal             decimal.Decimal     `json:"subtotal"`
	DisplaySubtotal      decimal.Decimal     `json:"display_subtotal"`
	DownPayment          decimal.Decimal     `json:"down_payment"`
	FiscalBase           decimal.Decimal     `json:"fiscal_base"`
	FiscalDeduction      decimal.Decimal     `json:"fiscal_deduction"`
	FinancingBalance     decimal.Decimal     `json:"financing_balance"`
	InstallmentValue     decimal.Decimal     `json:"installment_value"`
	ProductInvoiceAmount decimal.Decimal     `json:"product_invoice_amount"`
	ServiceInvoiceAmount decimal.Decimal     `json:"service_invoice_amount"`
	CashTotal            decimal.Decimal     `json:"cash_total"`
	FinancedTotal        decimal.Decimal     `json:"financed_total"`
}

// ValidationResponse resultado de la validación previa a la exportación.
type ValidationResponse struct {
	Valid  bool            `json:"valid"`
	Fields []FieldErrorDTO `json:"fields,omitempty"`
}

// CardFeeDTO tasa de tarjeta por cantidad de parcelas.
type CardFeeDTO struct {
	Installments int             `json:"installments"`
	Fee          decimal.Decimal `json:"fee"`
}
