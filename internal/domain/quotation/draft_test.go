package quotation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func TestNewDraft_EstadoInicial(t *testing.T) {
	d := quotation.NewDraft(5)

	slots := d.Slots()
	require.Len(t, slots, 1)
	assert.Nil(t, slots[0].Equipment)
	assert.Equal(t, 1, slots[0].Quantity)

	cfg := d.Config()
	assert.Equal(t, entity.PaymentBoleto, cfg.PaymentMethod)
	assert.Equal(t, entity.LocationSP, cfg.Location)
	assert.Equal(t, entity.BillingCorporate, cfg.BillingDocType)
	assert.Equal(t, entity.ConditionNormal, cfg.Condition)
	assert.Equal(t, 12, cfg.InstallmentCount)
}

func TestDraft_AgregarEspacios(t *testing.T) {
	d := quotation.NewDraft(2)
	assert.ErrorIs(t, d.AddSlot(), domain.ErrEmptySlot, "ya hay un espacio vacío")

	require.NoError(t, d.SelectEquipment(0, equipment("a", 100)))
	require.NoError(t, d.AddSlot())
	require.NoError(t, d.SelectEquipment(1, equipment("b", 100)))
	assert.ErrorIs(t, d.AddSlot(), domain.ErrCartFull)
}

func TestDraft_EquipoDuplicado(t *testing.T) {
	d := quotation.NewDraft(3)
	require.NoError(t, d.SelectEquipment(0, equipment("a", 100)))
	require.NoError(t, d.AddSlot())

	err := d.SelectEquipment(1, equipment("a", 100))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.NoError(t, d.SelectEquipment(0, equipment("a", 100)), "reelegir en el mismo espacio está permitido")
}

func TestDraft_QuitarEspacio(t *testing.T) {
	d := quotation.NewDraft(3)
	assert.ErrorIs(t, d.RemoveSlot(0), domain.ErrLastSlot)
	assert.ErrorIs(t, d.RemoveSlot(4), domain.ErrNotFound)

	require.NoError(t, d.SelectEquipment(0, equipment("a", 100)))
	require.NoError(t, d.AddSlot())
	require.NoError(t, d.RemoveSlot(0))
	require.Len(t, d.Slots(), 1)
	assert.Nil(t, d.Slots()[0].Equipment)
}

func TestDraft_CantidadDigitada(t *testing.T) {
	d := quotation.NewDraft(3)
	require.NoError(t, d.SetQuantity(0, quotation.ParseQuantity("abc")))
	assert.Equal(t, 0, d.Slots()[0].Quantity)
	require.NoError(t, d.SetQuantity(0, 7))
	assert.Equal(t, 7, d.Slots()[0].Quantity)
	require.NoError(t, d.SetQuantity(0, -2))
	assert.Equal(t, 0, d.Slots()[0].Quantity, "negativo = 0")
}

func TestDraft_ParcelasSegunFormaDePago(t *testing.T) {
	eq := equipment("a", 1000)
	eq.MaxInstallments = 18
	d := quotation.NewDraft(3)
	require.NoError(t, d.SelectEquipment(0, eq))
	assert.Equal(t, 18, d.Config().InstallmentCount)

	require.NoError(t, d.SetPaymentMethod(entity.PaymentCard))
	assert.Equal(t, 12, d.Config().InstallmentCount)

	require.NoError(t, d.SetInstallments(20))
	assert.Equal(t, 12, d.Config().InstallmentCount, "se recorta al máximo de tarjeta")

	assert.ErrorIs(t, d.SetInstallments(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, d.SetPaymentMethod("Pix"), domain.ErrInvalidInput)
}

func TestDraft_EntradaOverrideYReset(t *testing.T) {
	d := quotation.NewDraft(3)
	require.NoError(t, d.SelectEquipment(0, hinted()))
	require.NoError(t, d.SetQuantity(0, 2))
	e := newEngine(quotation.VariantCurrent)

	res, err := d.Compute(e)
	require.NoError(t, err)
	assertMoney(t, 600, res.DownPayment, "entrada sugerida")

	d.EditDownPayment(money(1000))
	require.NoError(t, d.SetQuantity(0, 3))
	res, err = d.Compute(e)
	require.NoError(t, err)
	assertMoney(t, 1000, res.DownPayment, "la entrada digitada no se recalcula")
	assert.Equal(t, entity.DownPaymentOverride, res.DownPaymentSource)

	d.ResetDownPayment()
	res, err = d.Compute(e)
	require.NoError(t, err)
	assertMoney(t, 900, res.DownPayment, "reset vuelve a la sugerencia")
}

func TestDraft_CambioForzadoATarjeta(t *testing.T) {
	eq := equipment("a", 1000)
	eq.AcceptsBoleto = false
	d := quotation.NewDraft(3)
	d.EditDownPayment(money(300))

	require.NoError(t, d.SelectEquipment(0, eq))
	assert.Equal(t, entity.PaymentCard, d.Config().PaymentMethod)
	assert.Equal(t, entity.DownPaymentDefault, d.Config().DownPayment.Source)
	assert.False(t, d.Capabilities().BoletoAvailable)
}

func TestDraft_DescuentoYFleteNegativos(t *testing.T) {
	d := quotation.NewDraft(3)
	d.SetDiscount(money(-10))
	d.SetFreight(dec("250.6"))
	assert.True(t, d.Config().Discount.IsZero())
	assert.Equal(t, "251", d.Config().Freight.String())
}
