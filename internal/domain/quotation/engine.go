package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// FormulaVariant selecciona el juego de fórmulas del simulador.
type FormulaVariant string

const (
	// VariantCurrent fórmulas vigentes: flete en base NF, NF producto y à vista; saldo nunca negativo.
	VariantCurrent FormulaVariant = "current"
	// VariantLegacy primera versión de la pantalla: sin flete, saldo sin piso en cero y
	// tasa de tarjeta 0 cuando la cantidad de parcelas no está en la tabla.
	VariantLegacy FormulaVariant = "legacy"
)

func (v FormulaVariant) Valid() bool { return v == VariantCurrent || v == VariantLegacy }

func (v FormulaVariant) includesFreight() bool { return v != VariantLegacy }

// Parameters constantes financieras del motor.
type Parameters struct {
	BoletoRate   decimal.Decimal // tasa periódica del boleto (0.0292)
	TaxRateSP    decimal.Decimal // descuento fiscal en SP (0.15)
	TaxRateOther decimal.Decimal // descuento fiscal fuera de SP (0.10)
	Variant      FormulaVariant
}

// DefaultParameters parámetros vigentes.
func DefaultParameters() Parameters {
	return Parameters{
		BoletoRate:   decimal.RequireFromString("0.0292"),
		TaxRateSP:    decimal.RequireFromString("0.15"),
		TaxRateOther: decimal.RequireFromString("0.10"),
		Variant:      VariantCurrent,
	}
}

// Validate verifica los parámetros una sola vez, al construir el motor.
// Garantiza que ningún divisor del cálculo llegue a cero.
func (p Parameters) Validate() error {
	one := decimal.NewFromInt(1)
	if p.BoletoRate.IsNegative() {
		return fmt.Errorf("%w: tasa del boleto negativa (%s)", domain.ErrInvalidInput, p.BoletoRate)
	}
	if p.TaxRateSP.IsNegative() || p.TaxRateOther.IsNegative() {
		return fmt.Errorf("%w: alícuota fiscal negativa", domain.ErrInvalidInput)
	}
	if !p.Variant.Valid() {
		return fmt.Errorf("%w: variante de fórmula desconocida %q", domain.ErrInvalidInput, p.Variant)
	}
	for _, f := range cardFeeTable {
		if f.fee.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: tasa de tarjeta %dx >= 100%%", domain.ErrInvalidInput, f.installments)
		}
	}
	return nil
}

// TaxRate alícuota del descuento fiscal según localización.
func (p Parameters) TaxRate(loc entity.Location) decimal.Decimal {
	if loc == entity.LocationSP {
		return p.TaxRateSP
	}
	return p.TaxRateOther
}

// LineItem línea calculada del carrito.
type LineItem struct {
	Slot             int // posición en el carrito
	EquipmentID      string
	Name             string
	Code             string
	BrandID          string
	CategoryID       string
	Quantity         int
	UnitPrice        decimal.Decimal
	LineTotal        decimal.Decimal
	DisplayUnitPrice decimal.Decimal // precio con la tasa de tarjeta embutida
	DisplayLineTotal decimal.Decimal
}

// Result resultado completo de la simulación.
type Result struct {
	Config       entity.QuoteConfiguration // configuración efectiva (tras los controles de pago)
	Capabilities Capabilities

	Items           []LineItem
	Subtotal        decimal.Decimal
	DisplaySubtotal decimal.Decimal

	DownPayment          decimal.Decimal
	DownPaymentSource    entity.DownPaymentSource
	FiscalBase           decimal.Decimal
	FiscalDeduction      decimal.Decimal
	FinancingBalance     decimal.Decimal
	InstallmentValue     decimal.Decimal
	ProductInvoiceAmount decimal.Decimal
	ServiceInvoiceAmount decimal.Decimal
	CashTotal            decimal.Decimal
	FinancedTotal        decimal.Decimal
}

// Engine ejecuta el pipeline de cálculo con parámetros ya validados.
type Engine struct {
	params Parameters
}

// NewEngine construye el motor validando los parámetros.
func NewEngine(params Parameters) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// Parameters devuelve los parámetros del motor.
func (e *Engine) Parameters() Parameters { return e.params }

// Compute ejecuta el pipeline completo en orden de dependencia:
// precio → subtotal → controles de pago/entrada → fiscal → parcela → reparto de NF.
// No modifica cart ni cfg; mismas entradas producen el mismo resultado.
func (e *Engine) Compute(cart []entity.CartSlot, cfg entity.QuoteConfiguration) (*Result, error) {
	if err := validateConfiguration(cfg); err != nil {
		return nil, err
	}
	cart = normalizeCart(cart)
	cfg.Discount = normalizeAmount(cfg.Discount)
	cfg.Freight = normalizeAmount(cfg.Freight)
	if cfg.DownPayment.Source == "" {
		cfg.DownPayment.Source = entity.DownPaymentDefault
	}

	cfg, caps := ApplyCapabilities(cart, cfg)
	variant := e.params.Variant
	freight := cfg.Freight
	if !variant.includesFreight() {
		freight = decimal.Zero
	}

	res := &Result{Capabilities: caps}

	// 1. Precio por línea y subtotal
	res.Items = make([]LineItem, 0, len(cart))
	for i, slot := range cart {
		if slot.Equipment == nil {
			continue
		}
		unit := UnitPrice(slot.Equipment, cfg.Location, cfg.BillingDocType)
		line := LineTotal(unit, slot.Quantity)
		res.Items = append(res.Items, LineItem{
			Slot:             i,
			EquipmentID:      slot.Equipment.ID,
			Name:             slot.Equipment.Name,
			Code:             slot.Equipment.Code,
			BrandID:          slot.Equipment.BrandID,
			CategoryID:       slot.Equipment.CategoryID,
			Quantity:         slot.Quantity,
			UnitPrice:        unit,
			LineTotal:        line,
			DisplayUnitPrice: DisplayPrice(unit, cfg.InstallmentCount),
			DisplayLineTotal: DisplayPrice(line, cfg.InstallmentCount),
		})
		res.Subtotal = res.Subtotal.Add(line)
		res.DisplaySubtotal = res.DisplaySubtotal.Add(DisplayPrice(line, cfg.InstallmentCount))
	}

	// 2. Entrada
	cfg.DownPayment = ResolveDownPayment(cart, cfg)
	res.DownPayment = cfg.DownPayment.Value
	res.DownPaymentSource = cfg.DownPayment.Source

	// 3. Base NF y descuento fiscal
	res.FiscalBase = FiscalBase(variant, cart, cfg, res.Subtotal)
	res.FiscalDeduction = FiscalDeduction(res.Subtotal, cfg.Discount, res.FiscalBase, e.params.TaxRate(cfg.Location))

	// 4. Saldo financiado y parcela
	financed := res.Subtotal.Sub(cfg.Discount).Sub(res.FiscalDeduction).Add(freight)
	balance := financed.Sub(res.DownPayment)
	if variant != VariantLegacy && balance.IsNegative() {
		balance = decimal.Zero
	}
	res.FinancingBalance = balance

	installment, err := e.installment(cfg, balance)
	if err != nil {
		return nil, err
	}
	res.InstallmentValue = installment

	// 5. NF producto / servicio y totales
	split := SplitInvoices(variant, cfg, res.DownPayment, installment, res.FiscalBase)
	res.ProductInvoiceAmount = split.Product
	res.ServiceInvoiceAmount = split.Service
	res.FinancedTotal = split.Total()
	res.CashTotal = CashTotal(variant, res.Subtotal, res.FiscalDeduction, cfg.Discount, cfg.Freight)

	res.Config = cfg
	return res, nil
}

func (e *Engine) installment(cfg entity.QuoteConfiguration, balance decimal.Decimal) (decimal.Decimal, error) {
	if cfg.PaymentMethod == entity.PaymentBoleto {
		return BoletoInstallment(balance, e.params.BoletoRate, cfg.InstallmentCount)
	}
	if e.params.Variant == VariantLegacy {
		fee, _ := CardFee(cfg.InstallmentCount)
		return cardInstallmentWithFee(balance, fee, cfg.InstallmentCount), nil
	}
	return CardInstallment(balance, cfg.InstallmentCount)
}

func validateConfiguration(cfg entity.QuoteConfiguration) error {
	switch {
	case !cfg.PaymentMethod.Valid():
		return fmt.Errorf("%w: forma de pago %q", domain.ErrInvalidInput, cfg.PaymentMethod)
	case !cfg.Location.Valid():
		return fmt.Errorf("%w: localización %q", domain.ErrInvalidInput, cfg.Location)
	case !cfg.BillingDocType.Valid():
		return fmt.Errorf("%w: faturamento %q", domain.ErrInvalidInput, cfg.BillingDocType)
	case !cfg.Condition.Valid():
		return fmt.Errorf("%w: condición %q", domain.ErrInvalidInput, cfg.Condition)
	case cfg.InstallmentCount < 0 || cfg.InstallmentCount > MaxInstallmentCount:
		return fmt.Errorf("%w: parcelas fuera de 1..%d", domain.ErrInvalidInput, MaxInstallmentCount)
	}
	return nil
}

// normalizeCart copia el carrito llevando cantidades negativas a cero.
func normalizeCart(cart []entity.CartSlot) []entity.CartSlot {
	out := make([]entity.CartSlot, len(cart))
	for i, slot := range cart {
		if slot.Quantity < 0 {
			slot.Quantity = 0
		}
		out[i] = slot
	}
	return out
}
