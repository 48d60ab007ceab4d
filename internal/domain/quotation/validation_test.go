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

func TestValidateClient_OK(t *testing.T) {
	info := entity.ClientInfo{SellerName: "Ana", ClientName: "Oficina Central", ClientDocument: "123.456.789-09"}
	assert.NoError(t, quotation.ValidateClient(info, entity.BillingIndividual))

	info.ClientDocument = "11.222.333/0001-81"
	assert.NoError(t, quotation.ValidateClient(info, entity.BillingCorporate))
}

func TestValidateClient_TodosLosCampos(t *testing.T) {
	err := quotation.ValidateClient(entity.ClientInfo{SellerName: "  "}, entity.BillingCorporate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var verr *quotation.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	assert.Equal(t, quotation.FieldSellerName, verr.Fields[0].Field)
	assert.Equal(t, quotation.FieldClientName, verr.Fields[1].Field)
	assert.Equal(t, quotation.FieldClientDocument, verr.Fields[2].Field)
	assert.Equal(t, "REQUIRED", verr.Fields[2].Code)
}

func TestCheckClientDocument_Longitud(t *testing.T) {
	fe := quotation.CheckClientDocument("123.456.789-09", entity.BillingCorporate)
	require.NotNil(t, fe)
	assert.Equal(t, "INVALID_LENGTH", fe.Code)

	fe = quotation.CheckClientDocument("11222333000181", entity.BillingIndividual)
	require.NotNil(t, fe)
	assert.Equal(t, "INVALID_LENGTH", fe.Code)

	assert.Nil(t, quotation.CheckClientDocument("00000000000", entity.BillingIndividual), "no verifica dígitos verificadores")
}
