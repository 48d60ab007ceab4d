package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentResponse equipo del catálogo.
type EquipmentResponse struct {
	ID                         string          `json:"id"`
	Name                       string          `json:"name"`
	Code                       string          `json:"code,omitempty"`
	BrandID                    string          `json:"brand_id"`
	CategoryID                 string          `json:"category_id"`
	PriceGeneral               decimal.Decimal `json:"price_general"`
	PriceIndividualDoc         decimal.Decimal `json:"price_individual_doc"`
	PriceCorporateDoc          decimal.Decimal `json:"price_corporate_doc"`
	DownPaymentSPCorporate     decimal.Decimal `json:"down_payment_sp_corporate"`
	DownPaymentOtherCorporate  decimal.Decimal `json:"down_payment_other_corporate"`
	DownPaymentOtherIndividual decimal.Decimal `json:"down_payment_other_individual"`
	AcceptsBoleto              bool            `json:"accepts_boleto"`
	CashOnly                   bool            `json:"cash_only"`
	MaxInstallments            int             `json:"max_installments"`
}

// NamedResponse marca o categoría.
type NamedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EquipmentSearchRequest filtros del selector (query string).
type EquipmentSearchRequest struct {
	BrandID string `query:"brand_id"`
	Q       string `query:"q" validate:"max=100"`
	Exclude string `query:"exclude"` // IDs separados por coma
}

// CatalogStatusResponse estado de la carga del catálogo.
type CatalogStatusResponse struct {
	State      string     `json:"state"`
	Source     string     `json:"source"`
	Equipment  int        `json:"equipment"`
	Brands     int        `json:"brands"`
	Categories int        `json:"categories"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}
