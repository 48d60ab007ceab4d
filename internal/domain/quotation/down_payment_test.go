package quotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func hinted() *entity.Equipment {
	eq := equipment("h", 5000)
	eq.DownPaymentSPCorporate = money(300)
	eq.DownPaymentOtherCorporate = money(200)
	eq.DownPaymentOtherIndividual = money(100)
	return eq
}

func TestDefaultDownPayment_TarjetaSiempreCero(t *testing.T) {
	cart := []entity.CartSlot{slot(hinted(), 3), slot(equipment("x", 100), 1)}
	for _, loc := range []entity.Location{entity.LocationSP, entity.LocationOther} {
		cfg := config(entity.PaymentCard, loc, 1)
		assert.True(t, quotation.DefaultDownPayment(cart, cfg).IsZero())
	}
}

func TestDefaultDownPayment_SugerenciaPorLocalizacionYDocumento(t *testing.T) {
	cart := []entity.CartSlot{slot(hinted(), 2), {Quantity: 1}}

	cfg := config(entity.PaymentBoleto, entity.LocationSP, 1)
	assert.True(t, quotation.DefaultDownPayment(cart, cfg).Equal(money(600)))

	cfg = config(entity.PaymentBoleto, entity.LocationOther, 1)
	cfg.BillingDocType = entity.BillingCorporate
	assert.True(t, quotation.DefaultDownPayment(cart, cfg).Equal(money(400)))

	cfg.BillingDocType = entity.BillingIndividual
	assert.True(t, quotation.DefaultDownPayment(cart, cfg).Equal(money(200)))
}

func TestDefaultDownPayment_SinSugerenciaSumaCeroYRedondea(t *testing.T) {
	eq := equipment("r", 100)
	eq.DownPaymentSPCorporate = dec("10.25")
	cart := []entity.CartSlot{slot(eq, 2), slot(equipment("s", 100), 4)}

	got := quotation.DefaultDownPayment(cart, config(entity.PaymentBoleto, entity.LocationSP, 1))
	assert.Equal(t, "21", got.String(), "20.5 redondea a 21")
}

func TestResolveDownPayment_OverrideSeRespeta(t *testing.T) {
	cart := []entity.CartSlot{slot(hinted(), 2)}
	cfg := config(entity.PaymentBoleto, entity.LocationSP, 1)
	cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: money(1234)}

	got := quotation.ResolveDownPayment(cart, cfg)
	assert.Equal(t, entity.DownPaymentOverride, got.Source)
	assert.True(t, got.Value.Equal(money(1234)))

	cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentDefault, Value: money(1234)}
	got = quotation.ResolveDownPayment(cart, cfg)
	assert.Equal(t, entity.DownPaymentDefault, got.Source)
	assert.True(t, got.Value.Equal(money(600)))

	cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: decimal.NewFromInt(-5)}
	assert.True(t, quotation.ResolveDownPayment(cart, cfg).Value.IsZero())
}
