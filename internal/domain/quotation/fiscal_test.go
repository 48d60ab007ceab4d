package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func TestFiscalBase_Normal(t *testing.T) {
	cfg := config(entity.PaymentCard, entity.LocationSP, 1)
	cfg.Discount = money(1000)
	cfg.Freight = money(500)

	got := quotation.FiscalBase(quotation.VariantCurrent, nil, cfg, money(12000))
	assert.True(t, got.Equal(money(11500)), "got %s", got)

	got = quotation.FiscalBase(quotation.VariantLegacy, nil, cfg, money(12000))
	assert.True(t, got.Equal(money(11000)), "legacy ignora el flete, got %s", got)
}

func TestFiscalBase_EspecialSumaPrecioGeneralUnaUnidad(t *testing.T) {
	a := equipment("a", 2000)
	a.PriceCorporateDoc = money(2500)
	b := equipment("b", 6000)
	cart := []entity.CartSlot{slot(a, 2), {Quantity: 3}, slot(b, 1)}
	cfg := config(entity.PaymentBoleto, entity.LocationOther, 1)
	cfg.Condition = entity.ConditionSpecial
	cfg.Freight = money(999)

	got := quotation.FiscalBase(quotation.VariantCurrent, cart, cfg, money(11000))
	assert.True(t, got.Equal(money(8000)), "got %s", got)
}

func TestFiscalDeduction(t *testing.T) {
	got := quotation.FiscalDeduction(money(10000), money(0), money(8000), dec("0.15"))
	assert.True(t, got.Equal(money(300)))

	got = quotation.FiscalDeduction(money(10000), money(0), money(8000), dec("0.10"))
	assert.True(t, got.Equal(money(200)))

	got = quotation.FiscalDeduction(money(12000), money(0), money(12500), dec("0.15"))
	assert.True(t, got.Equal(money(-75)), "flete en la base deja deducción negativa")

	got = quotation.FiscalDeduction(money(12000), money(1000), money(11000), dec("0.15"))
	assert.True(t, got.IsZero(), "condición normal sin flete no deduce")
}
