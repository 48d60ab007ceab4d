package brl_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Simulador-api/pkg/brl"
)

func TestFormat_SeparadoresPtBR(t *testing.T) {
	assert.Equal(t, "R$ 1.234,50", brl.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", brl.Format(decimal.Zero))
	assert.Equal(t, "-R$ 300,00", brl.Format(decimal.NewFromInt(-300)))
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "R$ 1.500", brl.FormatUnits(decimal.NewFromInt(1500)))
	assert.Equal(t, "R$ 12", brl.FormatUnits(decimal.RequireFromString("11.6")))
}
