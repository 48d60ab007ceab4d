package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func TestEvaluateCapabilities_CarritoVacio(t *testing.T) {
	caps := quotation.EvaluateCapabilities([]entity.CartSlot{{Quantity: 1}}, entity.PaymentBoleto)

	assert.True(t, caps.BoletoAvailable, "sin equipos el boleto queda disponible")
	assert.False(t, caps.InstallmentsDisabled)
	assert.Equal(t, entity.DefaultMaxInstallments, caps.MaxInstallments)
}

func TestEvaluateCapabilities_SoloAVista(t *testing.T) {
	a := equipment("a", 100)
	a.CashOnly = true
	b := equipment("b", 100)
	b.CashOnly = true

	caps := quotation.EvaluateCapabilities([]entity.CartSlot{slot(a, 1), slot(b, 1)}, entity.PaymentBoleto)
	assert.True(t, caps.InstallmentsDisabled)
	assert.Equal(t, 1, caps.MaxInstallments)

	b.CashOnly = false
	caps = quotation.EvaluateCapabilities([]entity.CartSlot{slot(a, 1), slot(b, 1)}, entity.PaymentBoleto)
	assert.False(t, caps.InstallmentsDisabled, "basta un equipo parcelable")
}

func TestEvaluateCapabilities_MaximoDeParcelas(t *testing.T) {
	a := equipment("a", 100)
	a.MaxInstallments = 6
	b := equipment("b", 100)
	b.MaxInstallments = 18
	cart := []entity.CartSlot{slot(a, 1), slot(b, 1)}

	assert.Equal(t, 18, quotation.EvaluateCapabilities(cart, entity.PaymentBoleto).MaxInstallments)
	assert.Equal(t, quotation.CardMaxInstallments, quotation.EvaluateCapabilities(cart, entity.PaymentCard).MaxInstallments,
		"tarjeta siempre 12")

	b.MaxInstallments = 40
	assert.Equal(t, quotation.MaxInstallmentCount, quotation.EvaluateCapabilities(cart, entity.PaymentBoleto).MaxInstallments)
}

func TestApplyCapabilities_FuerzaTarjetaSinBoleto(t *testing.T) {
	eq := equipment("a", 100)
	eq.AcceptsBoleto = false
	cfg := config(entity.PaymentBoleto, entity.LocationSP, 10)
	cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: money(50)}

	got, caps := quotation.ApplyCapabilities([]entity.CartSlot{slot(eq, 1)}, cfg)

	assert.False(t, caps.BoletoAvailable)
	assert.Equal(t, entity.PaymentCard, got.PaymentMethod)
	assert.Equal(t, entity.DownPaymentDefault, got.DownPayment.Source, "el cambio forzado reinicia la entrada")
	assert.Equal(t, 10, got.InstallmentCount)
}

func TestApplyCapabilities_AjustaParcelas(t *testing.T) {
	eq := equipment("a", 100)
	cart := []entity.CartSlot{slot(eq, 1)}

	got, _ := quotation.ApplyCapabilities(cart, config(entity.PaymentBoleto, entity.LocationSP, 0))
	assert.Equal(t, 12, got.InstallmentCount, "0 toma el máximo")

	got, _ = quotation.ApplyCapabilities(cart, config(entity.PaymentCard, entity.LocationSP, 20))
	assert.Equal(t, 12, got.InstallmentCount, "encima del máximo se recorta")

	eq.CashOnly = true
	got, _ = quotation.ApplyCapabilities(cart, config(entity.PaymentBoleto, entity.LocationSP, 8))
	assert.Equal(t, 1, got.InstallmentCount)
}

func TestEvaluateCapabilities_CarritoMixtoMantieneBoleto(t *testing.T) {
	sinBoleto := equipment("a", 100)
	sinBoleto.AcceptsBoleto = false
	conBoleto := equipment("b", 100)
	cart := []entity.CartSlot{slot(sinBoleto, 1), slot(conBoleto, 1)}

	caps := quotation.EvaluateCapabilities(cart, entity.PaymentBoleto)
	assert.True(t, caps.BoletoAvailable, "basta un equipo que acepte boleto")

	cfg := config(entity.PaymentBoleto, entity.LocationSP, 10)
	cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: money(50)}

	got, caps := quotation.ApplyCapabilities(cart, cfg)
	assert.True(t, caps.BoletoAvailable)
	assert.Equal(t, entity.PaymentBoleto, got.PaymentMethod, "boleto sigue seleccionado")
	assert.Equal(t, entity.DownPaymentOverride, got.DownPayment.Source)
	assertMoney(t, 50, got.DownPayment.Value, "la entrada digitada se conserva")
	assert.Equal(t, 10, got.InstallmentCount)

	res, err := newEngine(quotation.VariantCurrent).Compute(cart, cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentBoleto, res.Config.PaymentMethod)
	assertMoney(t, 50, res.DownPayment, "entrada")
}
