package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain"
)

type cardFee struct {
	installments int
	fee          decimal.Decimal
}

// cardFeeTable tasa de la adquirente por cantidad de parcelas (1x..21x).
var cardFeeTable = []cardFee{
	{1, decimal.RequireFromString("0.0333")},
	{2, decimal.RequireFromString("0.0438")},
	{3, decimal.RequireFromString("0.0509")},
	{4, decimal.RequireFromString("0.058")},
	{5, decimal.RequireFromString("0.0652")},
	{6, decimal.RequireFromString("0.0725")},
	{7, decimal.RequireFromString("0.0837")},
	{8, decimal.RequireFromString("0.0912")},
	{9, decimal.RequireFromString("0.0989")},
	{10, decimal.RequireFromString("0.1067")},
	{11, decimal.RequireFromString("0.1146")},
	{12, decimal.RequireFromString("0.125")},
	{13, decimal.RequireFromString("0.1307")},
	{14, decimal.RequireFromString("0.139")},
	{15, decimal.RequireFromString("0.1473")},
	{16, decimal.RequireFromString("0.1558")},
	{17, decimal.RequireFromString("0.1644")},
	{18, decimal.RequireFromString("0.1732")},
	{19, decimal.RequireFromString("0.1820")},
	{20, decimal.RequireFromString("0.1910")},
	{21, decimal.RequireFromString("0.2002")},
}

// displayFallbackFee tasa usada para el precio de vitrina cuando la cantidad no está en la tabla.
var displayFallbackFee = decimal.RequireFromString("0.125")

// CardFee devuelve la tasa de tarjeta para n parcelas. ok=false si n está fuera de la tabla.
func CardFee(installments int) (fee decimal.Decimal, ok bool) {
	if installments < 1 || installments > len(cardFeeTable) {
		return decimal.Zero, false
	}
	return cardFeeTable[installments-1].fee, true
}

// CardFees copia de la tabla, en orden de parcelas.
func CardFees() map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(cardFeeTable))
	for _, f := range cardFeeTable {
		out[f.installments] = f.fee
	}
	return out
}

// DisplayPrice infla un monto con la tasa de tarjeta de n parcelas: amount / (1 − tasa).
// Es el "precio de venta" mostrado en la cotización para cualquier forma de pago;
// no participa del cálculo de la parcela.
func DisplayPrice(amount decimal.Decimal, installments int) decimal.Decimal {
	fee, ok := CardFee(installments)
	if !ok {
		fee = displayFallbackFee
	}
	return roundUnits(amount.Div(decimal.NewFromInt(1).Sub(fee)))
}

// BoletoInstallment calcula la parcela del boleto con amortización a tasa fija r:
// balance × r × (1+r)^n / ((1+r)^n − 1). Con r = 0 divide el saldo en partes iguales.
func BoletoInstallment(balance, rate decimal.Decimal, installments int) (decimal.Decimal, error) {
	if installments < 1 {
		return decimal.Zero, fmt.Errorf("%w: parcelas debe ser >= 1, recibido %d", domain.ErrInvalidInput, installments)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: tasa del boleto negativa", domain.ErrInvalidInput)
	}
	n := decimal.NewFromInt(int64(installments))
	if rate.IsZero() {
		return roundUnits(balance.Div(n)), nil
	}
	onePlusRate := decimal.NewFromInt(1).Add(rate)
	factor := decimal.NewFromInt(1)
	for i := 0; i < installments; i++ {
		factor = factor.Mul(onePlusRate)
	}
	return roundUnits(balance.Mul(rate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))), nil
}

// CardInstallment = round(balance / (1 − tasa) / n). n debe estar en la tabla.
func CardInstallment(balance decimal.Decimal, installments int) (decimal.Decimal, error) {
	fee, ok := CardFee(installments)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: sin tasa de tarjeta para %d parcelas", domain.ErrInvalidInput, installments)
	}
	return cardInstallmentWithFee(balance, fee, installments), nil
}

func cardInstallmentWithFee(balance, fee decimal.Decimal, installments int) decimal.Decimal {
	n := decimal.NewFromInt(int64(installments))
	return roundUnits(balance.Div(decimal.NewFromInt(1).Sub(fee)).Div(n))
}
