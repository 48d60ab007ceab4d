package quotation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// InvoiceSplit reparto del valor cobrado entre NF de producto y NF de servicio.
type InvoiceSplit struct {
	Product decimal.Decimal
	Service decimal.Decimal
}

// Total suma de ambas notas.
func (s InvoiceSplit) Total() decimal.Decimal {
	return s.Product.Add(s.Service)
}

// SplitInvoices reparte lo cobrado (entrada + parcelas) entre las dos NF.
// Boleto con condición Normal factura todo como producto (más el flete);
// en otro caso la NF de producto es la Base NF y el resto va a servicio.
func SplitInvoices(
	variant FormulaVariant,
	cfg entity.QuoteConfiguration,
	downPayment, installmentValue, fiscalBase decimal.Decimal,
) InvoiceSplit {
	charged := downPayment.Add(installmentValue.Mul(decimal.NewFromInt(int64(cfg.InstallmentCount))))

	product := fiscalBase
	if cfg.PaymentMethod == entity.PaymentBoleto && cfg.Condition == entity.ConditionNormal {
		product = charged
		if variant.includesFreight() {
			product = product.Add(cfg.Freight)
		}
	}
	return InvoiceSplit{
		Product: product,
		Service: charged.Sub(product),
	}
}

// CashTotal valor à vista: subtotal − descuento fiscal − descuento + flete.
func CashTotal(variant FormulaVariant, subtotal, fiscalDeduction, discount, freight decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(fiscalDeduction).Sub(discount)
	if variant.includesFreight() {
		total = total.Add(freight)
	}
	return total
}
