package quotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func TestUnitPrice_ColumnaSegunLocalizacionYDocumento(t *testing.T) {
	eq := &entity.Equipment{
		PriceGeneral:       money(1000),
		PriceIndividualDoc: money(900),
		PriceCorporateDoc:  money(950),
	}

	assert.True(t, quotation.UnitPrice(eq, entity.LocationSP, entity.BillingIndividual).Equal(money(1000)))
	assert.True(t, quotation.UnitPrice(eq, entity.LocationSP, entity.BillingCorporate).Equal(money(1000)))
	assert.True(t, quotation.UnitPrice(eq, entity.LocationOther, entity.BillingIndividual).Equal(money(900)))
	assert.True(t, quotation.UnitPrice(eq, entity.LocationOther, entity.BillingCorporate).Equal(money(950)))
	assert.True(t, quotation.UnitPrice(nil, entity.LocationSP, entity.BillingCorporate).IsZero())
}

func TestLineTotal_RedondeaUnaSolaVez(t *testing.T) {
	got := quotation.LineTotal(dec("1000.4"), 3)
	assert.Equal(t, "3001", got.String(), "round(3001.2), no round(1000.4)×3")

	assert.Equal(t, "3", quotation.LineTotal(dec("2.5"), 1).String(), "mitad lejos de cero")
	assert.True(t, quotation.LineTotal(money(500), 0).IsZero())
}

func TestSubtotal_IgnoraEspaciosVacios(t *testing.T) {
	cart := []entity.CartSlot{
		slot(equipment("a", 1000), 2),
		{Quantity: 5},
		slot(equipment("b", 250), 1),
	}
	got := quotation.Subtotal(cart, entity.LocationSP, entity.BillingCorporate)
	assert.True(t, got.Equal(money(2250)), "got %s", got)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		" 12 ":  12,
		"4un":   4,
		"abc":   0,
		"":      0,
		"-2":    0,
		"007":   7,
	}
	for in, want := range cases {
		assert.Equal(t, want, quotation.ParseQuantity(in), "entrada %q", in)
	}
}

func TestParseAmount_SoloDigitos(t *testing.T) {
	assert.True(t, quotation.ParseAmount("R$ 1.500").Equal(money(1500)))
	assert.True(t, quotation.ParseAmount("abc").Equal(decimal.Zero))
	assert.True(t, quotation.ParseAmount("").IsZero())
}
