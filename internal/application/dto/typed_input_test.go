package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/application/dto"
)

func TestTypedQuantity_NumeroOTexto(t *testing.T) {
	cases := map[string]int{
		`3`:      3,
		`"3"`:    3,
		`"3 un"`: 3,
		`"abc"`:  0,
		`""`:     0,
		`-4`:     0,
		`2.7`:    2,
		`null`:   0,
	}
	for raw, want := range cases {
		var in dto.QuantityRequest
		require.NoError(t, json.Unmarshal([]byte(`{"quantity":`+raw+`}`), &in), raw)
		assert.Equal(t, want, int(in.Quantity), raw)
	}
}

func TestTypedAmount_NumeroOTexto(t *testing.T) {
	cases := map[string]string{
		`1500`:       "1500",
		`1500.5`:     "1500.5",
		`"R$ 1.500"`: "1500",
		`"abc"`:      "0",
		`""`:         "0",
		`true`:       "0",
	}
	for raw, want := range cases {
		var in dto.DownPaymentRequest
		require.NoError(t, json.Unmarshal([]byte(`{"value":`+raw+`}`), &in), raw)
		assert.Equal(t, want, in.Value.Decimal().String(), raw)
	}
}

func TestQuoteConfigRequest_EntradaAusenteEsNil(t *testing.T) {
	var in dto.QuoteConfigRequest
	require.NoError(t, json.Unmarshal([]byte(`{"discount":"R$ 50"}`), &in))
	assert.Nil(t, in.DownPayment)
	assert.Equal(t, "50", in.Discount.Decimal().String())

	require.NoError(t, json.Unmarshal([]byte(`{"down_payment":"1.000"}`), &in))
	require.NotNil(t, in.DownPayment)
	assert.Equal(t, "1000", in.DownPayment.Decimal().String())
}
