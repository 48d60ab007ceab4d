package quotation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity interpreta la cantidad digitada. Toma los dígitos iniciales
// ("3 un" → 3); texto no numérico o vacío resulta en 0.
func ParseQuantity(text string) int {
	text = strings.TrimSpace(text)
	n := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000 {
			return 1_000_000
		}
	}
	return n
}

// ParseAmount interpreta un monto digitado en el campo de moneda: se descartan todos los
// caracteres que no son dígitos ("R$ 1.500" → 1500). Vacío resulta en 0.
func ParseAmount(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeAmount descarta negativos y redondea a unidades enteras.
func normalizeAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return roundUnits(d)
}
