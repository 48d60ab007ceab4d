// Package quotation contiene el motor de cálculo de la simulación de venta: precio por línea,
// subtotal, entrada sugerida, base y descuento fiscal, valor de la parcela y el reparto
// entre NF de producto y NF de servicio.
//
// Todas las funciones son puras: no guardan estado y no hacen I/O. Los montos usan
// shopspring/decimal y se redondean a unidades enteras (mitad lejos de cero) en los
// puntos indicados por cada función.
package quotation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// roundUnits redondea a unidades enteras de moneda, mitad lejos de cero.
func roundUnits(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// UnitPrice resuelve la columna de precio del equipo.
// SP usa el precio general; fuera de SP depende del documento de facturación.
func UnitPrice(eq *entity.Equipment, loc entity.Location, billing entity.BillingDocType) decimal.Decimal {
	if eq == nil {
		return decimal.Zero
	}
	if loc == entity.LocationSP {
		return eq.PriceGeneral
	}
	if billing == entity.BillingIndividual {
		return eq.PriceIndividualDoc
	}
	return eq.PriceCorporateDoc
}

// LineTotal = round(unitPrice × quantity). Se redondea una sola vez por línea.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return roundUnits(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// Subtotal suma los totales de línea de los espacios con equipo.
func Subtotal(cart []entity.CartSlot, loc entity.Location, billing entity.BillingDocType) decimal.Decimal {
	total := decimal.Zero
	for _, slot := range cart {
		if slot.Equipment == nil {
			continue
		}
		total = total.Add(LineTotal(UnitPrice(slot.Equipment, loc, billing), slot.Quantity))
	}
	return total
}

// SelectedEquipment devuelve los equipos elegidos, en el orden del carrito.
func SelectedEquipment(cart []entity.CartSlot) []*entity.Equipment {
	out := make([]*entity.Equipment, 0, len(cart))
	for _, slot := range cart {
		if slot.Equipment != nil {
			out = append(out, slot.Equipment)
		}
	}
	return out
}
