package entity

import "github.com/shopspring/decimal"

// PaymentMethod forma de pago de la cotización.
type PaymentMethod string

const (
	PaymentBoleto PaymentMethod = "Boleto"
	PaymentCard   PaymentMethod = "Cartao"
)

// Valid indica si el valor pertenece al enum.
func (p PaymentMethod) Valid() bool { return p == PaymentBoleto || p == PaymentCard }

// Location define la columna de precio y el porcentaje de descuento fiscal.
type Location string

const (
	LocationSP    Location = "SP"
	LocationOther Location = "Outros"
)

func (l Location) Valid() bool { return l == LocationSP || l == LocationOther }

// BillingDocType documento con el que se factura al cliente.
type BillingDocType string

const (
	BillingIndividual BillingDocType = "CPF"
	BillingCorporate  BillingDocType = "CNPJ"
)

func (b BillingDocType) Valid() bool { return b == BillingIndividual || b == BillingCorporate }

// DocumentDigits cantidad de dígitos esperada del documento (CPF 11, CNPJ 14).
func (b BillingDocType) DocumentDigits() int {
	if b == BillingIndividual {
		return 11
	}
	return 14
}

// Condition altera la fórmula de la base fiscal (Base NF).
type Condition string

const (
	ConditionNormal  Condition = "Normal"
	ConditionSpecial Condition = "Especial"
)

func (c Condition) Valid() bool { return c == ConditionNormal || c == ConditionSpecial }

// DownPaymentSource origen del valor de entrada.
type DownPaymentSource string

const (
	// DownPaymentDefault la entrada se recalcula con la regla de sugerencias del catálogo.
	DownPaymentDefault DownPaymentSource = "default"
	// DownPaymentOverride el vendedor digitó la entrada; no se recalcula hasta un reset explícito.
	DownPaymentOverride DownPaymentSource = "override"
)

// DownPayment entrada con su origen.
type DownPayment struct {
	Source DownPaymentSource
	Value  decimal.Decimal
}

// IsOverride indica si la entrada fue digitada por el usuario.
func (d DownPayment) IsOverride() bool { return d.Source == DownPaymentOverride }

// QuoteConfiguration opciones de pago, facturación y localización elegidas por el vendedor.
type QuoteConfiguration struct {
	PaymentMethod    PaymentMethod
	Location         Location
	BillingDocType   BillingDocType
	Condition        Condition
	InstallmentCount int // 0 = usar el máximo permitido por el carrito
	DownPayment      DownPayment
	Discount         decimal.Decimal
	Freight          decimal.Decimal
}

// DefaultQuoteConfiguration valores iniciales del formulario.
func DefaultQuoteConfiguration() QuoteConfiguration {
	return QuoteConfiguration{
		PaymentMethod:  PaymentBoleto,
		Location:       LocationSP,
		BillingDocType: BillingCorporate,
		Condition:      ConditionNormal,
		DownPayment:    DownPayment{Source: DownPaymentDefault},
	}
}

// CartSlot una fila del carrito. Equipment nil = espacio aún sin equipo.
type CartSlot struct {
	Equipment *Equipment
	Quantity  int
}

// ClientInfo datos del cliente y del vendedor exigidos antes de exportar.
type ClientInfo struct {
	SellerName     string
	ClientName     string
	ClientDocument string
}
