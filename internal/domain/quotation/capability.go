package quotation

import (
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

const (
	// MaxInstallmentCount límite superior de parcelas aceptado por el formulario.
	MaxInstallmentCount = 21
	// CardMaxInstallments tope de parcelas para tarjeta, sin importar el equipo.
	CardMaxInstallments = 12
)

// Capabilities resultado del control de formas de pago para el carrito actual.
type Capabilities struct {
	BoletoAvailable      bool
	InstallmentsDisabled bool
	MaxInstallments      int
}

// EvaluateCapabilities calcula qué formas de pago y cuántas parcelas admite el carrito.
//   - Boleto disponible si el carrito está vacío o algún equipo acepta boleto.
//   - Parcelamiento deshabilitado si todos los equipos elegidos son solo à vista.
//   - Máximo de parcelas: el mayor tope entre los equipos (12 por defecto); tarjeta siempre 12.
func EvaluateCapabilities(cart []entity.CartSlot, payment entity.PaymentMethod) Capabilities {
	selected := SelectedEquipment(cart)

	caps := Capabilities{BoletoAvailable: len(selected) == 0}
	allCashOnly := len(selected) > 0
	maxInstallments := 0
	for _, eq := range selected {
		if eq.AcceptsBoleto {
			caps.BoletoAvailable = true
		}
		if !eq.CashOnly {
			allCashOnly = false
		}
		if c := eq.InstallmentCap(); c > maxInstallments {
			maxInstallments = c
		}
	}
	if maxInstallments == 0 {
		maxInstallments = entity.DefaultMaxInstallments
	}
	if maxInstallments > MaxInstallmentCount {
		maxInstallments = MaxInstallmentCount
	}

	switch {
	case allCashOnly:
		caps.InstallmentsDisabled = true
		caps.MaxInstallments = 1
	case payment == entity.PaymentCard:
		caps.MaxInstallments = CardMaxInstallments
	default:
		caps.MaxInstallments = maxInstallments
	}
	return caps
}

// ApplyCapabilities devuelve la configuración efectiva para el carrito:
// fuerza tarjeta (y reinicia la entrada) cuando boleto no está disponible y
// ajusta la cantidad de parcelas al rango permitido. InstallmentCount 0 toma el máximo.
func ApplyCapabilities(cart []entity.CartSlot, cfg entity.QuoteConfiguration) (entity.QuoteConfiguration, Capabilities) {
	caps := EvaluateCapabilities(cart, cfg.PaymentMethod)
	if !caps.BoletoAvailable && cfg.PaymentMethod == entity.PaymentBoleto {
		cfg.PaymentMethod = entity.PaymentCard
		cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentDefault}
		caps = EvaluateCapabilities(cart, cfg.PaymentMethod)
	}

	switch {
	case caps.InstallmentsDisabled:
		cfg.InstallmentCount = 1
	case cfg.InstallmentCount <= 0 || cfg.InstallmentCount > caps.MaxInstallments:
		cfg.InstallmentCount = caps.MaxInstallments
	}
	return cfg, caps
}
