// Package brl formatea montos en reales (R$) con la convención pt-BR.
package brl

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format devuelve el monto como "R$ 1.234,56".
func Format(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	if f < 0 {
		return "-R$ " + printer.Sprintf("%.2f", -f)
	}
	return "R$ " + printer.Sprintf("%.2f", f)
}

// FormatUnits devuelve el monto sin centavos, como en los campos de moneda del formulario: "R$ 1.500".
func FormatUnits(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-R$ " + printer.Sprintf("%d", -n)
	}
	return "R$ " + printer.Sprintf("%d", n)
}
