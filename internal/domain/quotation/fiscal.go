package quotation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// FiscalBase calcula la Base NF.
//
// Condición Normal: subtotal + flete − descuento.
// Condición Especial: suma del precio general de cada equipo elegido, una unidad por equipo,
// sin importar cantidades ni documento de facturación.
func FiscalBase(variant FormulaVariant, cart []entity.CartSlot, cfg entity.QuoteConfiguration, subtotal decimal.Decimal) decimal.Decimal {
	if cfg.Condition == entity.ConditionNormal {
		base := subtotal.Sub(cfg.Discount)
		if variant.includesFreight() {
			base = base.Add(cfg.Freight)
		}
		return base
	}
	total := decimal.Zero
	for _, eq := range SelectedEquipment(cart) {
		total = total.Add(eq.PriceGeneral)
	}
	return total
}

// FiscalDeduction = round((subtotal − descuento − baseNF) × alícuota).
func FiscalDeduction(subtotal, discount, fiscalBase, rate decimal.Decimal) decimal.Decimal {
	return roundUnits(subtotal.Sub(discount).Sub(fiscalBase).Mul(rate))
}
