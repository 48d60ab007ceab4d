package catalogapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// flexID acepta IDs numéricos o de texto ("id": 7 o "id": "7").
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", b, err)
	}
	*f = flexID(n.String())
	return nil
}

// equipmentRecord formato de /equipamentos/.
type equipmentRecord struct {
	ID         flexID              `json:"id"`
	Name       string              `json:"nome"`
	Code       *string             `json:"codigo"`
	BrandID    flexID              `json:"marca"`
	CategoryID flexID              `json:"tipo"`
	General    decimal.NullDecimal `json:"custo_geral"`
	CPF        decimal.NullDecimal `json:"custo_cpf"`
	CNPJ       decimal.NullDecimal `json:"custo_cnpj"`

	DownSPCorporate     decimal.NullDecimal `json:"entrada_sp_cnpj"`
	DownOtherCorporate  decimal.NullDecimal `json:"entrada_outros_cnpj"`
	DownOtherIndividual decimal.NullDecimal `json:"entrada_outros_cpf"`

	AcceptsBoleto   *bool `json:"aceita_boleto"`
	CashOnly        *bool `json:"avista"`
	MaxInstallments *int  `json:"parcelas_max"`
}

// namedRecord formato de /marcaEquipamento/ y /tipoEquipamento/.
type namedRecord struct {
	ID   flexID `json:"id"`
	Name string `json:"nome"`
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// toEntity convierte el registro. Precios ausentes = 0; sin "aceita_boleto" el equipo acepta boleto.
func (r equipmentRecord) toEntity() *entity.Equipment {
	e := &entity.Equipment{
		ID:                         string(r.ID),
		Name:                       strings.TrimSpace(r.Name),
		BrandID:                    string(r.BrandID),
		CategoryID:                 string(r.CategoryID),
		PriceGeneral:               orZero(r.General),
		PriceIndividualDoc:         orZero(r.CPF),
		PriceCorporateDoc:          orZero(r.CNPJ),
		DownPaymentSPCorporate:     orZero(r.DownSPCorporate),
		DownPaymentOtherCorporate:  orZero(r.DownOtherCorporate),
		DownPaymentOtherIndividual: orZero(r.DownOtherIndividual),
		AcceptsBoleto:              true,
	}
	if r.Code != nil {
		e.Code = strings.TrimSpace(*r.Code)
	}
	if r.AcceptsBoleto != nil {
		e.AcceptsBoleto = *r.AcceptsBoleto
	}
	if r.CashOnly != nil {
		e.CashOnly = *r.CashOnly
	}
	if r.MaxInstallments != nil && *r.MaxInstallments > 0 {
		e.MaxInstallments = *r.MaxInstallments
	}
	return e
}

// DecodeEquipment lee un arreglo JSON de equipos. Registros sin id se descartan.
func DecodeEquipment(r io.Reader) ([]*entity.Equipment, error) {
	var recs []equipmentRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decodificar equipos: %w", err)
	}
	out := make([]*entity.Equipment, 0, len(recs))
	for _, rec := range recs {
		if rec.ID == "" {
			continue
		}
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// DecodeBrands lee un arreglo JSON de marcas.
func DecodeBrands(r io.Reader) ([]*entity.Brand, error) {
	recs, err := decodeNamed(r)
	if err != nil {
		return nil, fmt.Errorf("decodificar marcas: %w", err)
	}
	out := make([]*entity.Brand, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &entity.Brand{ID: string(rec.ID), Name: strings.TrimSpace(rec.Name)})
	}
	return out, nil
}

// DecodeCategories lee un arreglo JSON de categorías.
func DecodeCategories(r io.Reader) ([]*entity.Category, error) {
	recs, err := decodeNamed(r)
	if err != nil {
		return nil, fmt.Errorf("decodificar categorías: %w", err)
	}
	out := make([]*entity.Category, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &entity.Category{ID: string(rec.ID), Name: strings.TrimSpace(rec.Name)})
	}
	return out, nil
}

func decodeNamed(r io.Reader) ([]namedRecord, error) {
	var recs []namedRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, err
	}
	out := recs[:0]
	for _, rec := range recs {
		if rec.ID != "" {
			out = append(out, rec)
		}
	}
	return out, nil
}
