package quotation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// downPaymentHint elige la sugerencia de entrada por unidad según localización y documento.
func downPaymentHint(eq *entity.Equipment, loc entity.Location, billing entity.BillingDocType) decimal.Decimal {
	switch {
	case loc == entity.LocationSP:
		return eq.DownPaymentSPCorporate
	case billing == entity.BillingCorporate:
		return eq.DownPaymentOtherCorporate
	default:
		return eq.DownPaymentOtherIndividual
	}
}

// DefaultDownPayment calcula la entrada sugerida.
// Solo Boleto tiene entrada: Σ sugerencia × cantidad, redondeado a unidades.
func DefaultDownPayment(cart []entity.CartSlot, cfg entity.QuoteConfiguration) decimal.Decimal {
	if cfg.PaymentMethod != entity.PaymentBoleto {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, slot := range cart {
		if slot.Equipment == nil || slot.Quantity <= 0 {
			continue
		}
		hint := downPaymentHint(slot.Equipment, cfg.Location, cfg.BillingDocType)
		total = total.Add(hint.Mul(decimal.NewFromInt(int64(slot.Quantity))))
	}
	return roundUnits(total)
}

// ResolveDownPayment aplica la regla de origen: una entrada digitada se respeta tal cual,
// una entrada por defecto se recalcula.
func ResolveDownPayment(cart []entity.CartSlot, cfg entity.QuoteConfiguration) entity.DownPayment {
	if cfg.DownPayment.IsOverride() {
		return entity.DownPayment{
			Source: entity.DownPaymentOverride,
			Value:  normalizeAmount(cfg.DownPayment.Value),
		}
	}
	return entity.DownPayment{
		Source: entity.DownPaymentDefault,
		Value:  DefaultDownPayment(cart, cfg),
	}
}
