package quotation_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// equipment construye un equipo con el mismo precio en las tres columnas.
func equipment(id string, price int64) *entity.Equipment {
	return &entity.Equipment{
		ID:                 id,
		Name:               "Equipo " + id,
		PriceGeneral:       money(price),
		PriceIndividualDoc: money(price),
		PriceCorporateDoc:  money(price),
		AcceptsBoleto:      true,
	}
}

func slot(eq *entity.Equipment, qty int) entity.CartSlot {
	return entity.CartSlot{Equipment: eq, Quantity: qty}
}

func config(payment entity.PaymentMethod, loc entity.Location, installments int) entity.QuoteConfiguration {
	cfg := entity.DefaultQuoteConfiguration()
	cfg.PaymentMethod = payment
	cfg.Location = loc
	cfg.InstallmentCount = installments
	return cfg
}

func newEngine(variant quotation.FormulaVariant) *quotation.Engine {
	p := quotation.DefaultParameters()
	p.Variant = variant
	e, err := quotation.NewEngine(p)
	if err != nil {
		panic(err)
	}
	return e
}
