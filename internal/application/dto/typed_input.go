package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

// TypedQuantity cantidad tal como llega del formulario: número JSON o texto.
// Lo no numérico, vacío o negativo vale 0; nunca falla la decodificación.
type TypedQuantity int

func (q *TypedQuantity) UnmarshalJSON(b []byte) error {
	*q = TypedQuantity(quotation.ParseQuantity(rawText(b)))
	return nil
}

// TypedAmount monto digitado en un campo de moneda: número JSON (1500.5) o texto
// ("R$ 1.500" = 1500, solo cuentan los dígitos). Lo ilegible vale 0.
type TypedAmount decimal.Decimal

// NewTypedAmount envuelve un decimal.
func NewTypedAmount(d decimal.Decimal) TypedAmount { return TypedAmount(d) }

// Decimal valor numérico del monto.
func (a TypedAmount) Decimal() decimal.Decimal { return decimal.Decimal(a) }

func (a *TypedAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		*a = TypedAmount(quotation.ParseAmount(rawText(b)))
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		d = decimal.Zero
	}
	*a = TypedAmount(d)
	return nil
}

func (a TypedAmount) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(a).MarshalJSON()
}

// rawText devuelve el contenido de un string JSON o el literal tal cual (números, null, true).
func rawText(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return s
		}
		return ""
	}
	return string(b)
}
