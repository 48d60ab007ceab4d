package entity

import "github.com/shopspring/decimal"

// DefaultMaxInstallments es el tope de parcelas cuando el equipo no informa uno.
const DefaultMaxInstallments = 12

// Equipment representa un equipo del catálogo (solo lectura, viene de la API externa o de Postgres).
// Los precios dependen de la localización y del documento de facturación (CPF/CNPJ).
type Equipment struct {
	ID         string
	Name       string
	Code       string // opcional
	BrandID    string
	CategoryID string

	PriceGeneral       decimal.Decimal // usado en SP
	PriceIndividualDoc decimal.Decimal // fuera de SP, facturado a CPF
	PriceCorporateDoc  decimal.Decimal // fuera de SP, facturado a CNPJ

	// Sugerencias de entrada por unidad; ausentes = 0.
	DownPaymentSPCorporate     decimal.Decimal
	DownPaymentOtherCorporate  decimal.Decimal
	DownPaymentOtherIndividual decimal.Decimal

	AcceptsBoleto   bool
	CashOnly        bool // "à vista": no admite parcelamiento
	MaxInstallments int  // 0 = DefaultMaxInstallments
}

// InstallmentCap devuelve el máximo de parcelas del equipo aplicando el valor por defecto.
func (e *Equipment) InstallmentCap() int {
	if e == nil || e.MaxInstallments <= 0 {
		return DefaultMaxInstallments
	}
	return e.MaxInstallments
}
