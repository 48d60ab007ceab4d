package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// Draft estado editable de una cotización (un único editor).
// Cada método corresponde a un evento del formulario y deja el borrador consistente:
// los controles de forma de pago se recalculan cuando cambia la composición del carrito
// o la forma de pago; la entrada solo se recalcula mientras su origen sea "default".
type Draft struct {
	slots        []entity.CartSlot
	cfg          entity.QuoteConfiguration
	client       entity.ClientInfo
	capabilities Capabilities
	catalogSize  int
}

// NewDraft crea un borrador con un espacio vacío (cantidad 1) y la configuración por defecto.
// catalogSize limita la cantidad de espacios del carrito.
func NewDraft(catalogSize int) *Draft {
	d := &Draft{
		slots:       []entity.CartSlot{{Quantity: 1}},
		cfg:         entity.DefaultQuoteConfiguration(),
		catalogSize: catalogSize,
	}
	d.recalcCapabilities()
	return d
}

// Slots copia de los espacios del carrito.
func (d *Draft) Slots() []entity.CartSlot {
	out := make([]entity.CartSlot, len(d.slots))
	copy(out, d.slots)
	return out
}

// Config configuración actual.
func (d *Draft) Config() entity.QuoteConfiguration { return d.cfg }

// Capabilities último resultado de los controles de forma de pago.
func (d *Draft) Capabilities() Capabilities { return d.capabilities }

// Client datos del cliente/vendedor.
func (d *Draft) Client() entity.ClientInfo { return d.client }

// SetClient reemplaza los datos del cliente/vendedor.
func (d *Draft) SetClient(info entity.ClientInfo) { d.client = info }

// SetCatalogSize actualiza el tope de espacios (el catálogo puede terminar de cargar después).
func (d *Draft) SetCatalogSize(n int) { d.catalogSize = n }

// AddSlot agrega un espacio vacío. No se agrega si ya hay uno vacío o si el carrito
// ya tiene tantos espacios como equipos el catálogo.
func (d *Draft) AddSlot() error {
	for _, s := range d.slots {
		if s.Equipment == nil {
			return domain.ErrEmptySlot
		}
	}
	if len(d.slots) >= d.catalogSize {
		return domain.ErrCartFull
	}
	d.slots = append(d.slots, entity.CartSlot{Quantity: 1})
	return nil
}

// RemoveSlot elimina el espacio i. El carrito nunca queda sin espacios.
func (d *Draft) RemoveSlot(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if len(d.slots) <= 1 {
		return domain.ErrLastSlot
	}
	d.slots = append(d.slots[:i], d.slots[i+1:]...)
	d.recalcCapabilities()
	return nil
}

// SelectEquipment asigna un equipo al espacio i. Un equipo solo puede estar en un espacio.
func (d *Draft) SelectEquipment(i int, eq *entity.Equipment) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if eq == nil {
		return fmt.Errorf("%w: equipo requerido", domain.ErrInvalidInput)
	}
	for j, s := range d.slots {
		if j != i && s.Equipment != nil && s.Equipment.ID == eq.ID {
			return fmt.Errorf("%w: equipo %s ya está en el espacio %d", domain.ErrDuplicate, eq.ID, j+1)
		}
	}
	d.slots[i].Equipment = eq
	d.recalcCapabilities()
	return nil
}

// SetQuantity fija la cantidad del espacio i (negativos = 0). El texto digitado
// se interpreta antes con ParseQuantity.
func (d *Draft) SetQuantity(i, qty int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if qty < 0 {
		qty = 0
	}
	d.slots[i].Quantity = qty
	return nil
}

// SetPaymentMethod cambia la forma de pago y recalcula los controles.
func (d *Draft) SetPaymentMethod(p entity.PaymentMethod) error {
	if !p.Valid() {
		return fmt.Errorf("%w: forma de pago %q", domain.ErrInvalidInput, p)
	}
	d.cfg.PaymentMethod = p
	d.recalcCapabilities()
	return nil
}

// SetLocation cambia la localización.
func (d *Draft) SetLocation(l entity.Location) error {
	if !l.Valid() {
		return fmt.Errorf("%w: localización %q", domain.ErrInvalidInput, l)
	}
	d.cfg.Location = l
	return nil
}

// SetBillingDocType cambia el documento de facturación.
func (d *Draft) SetBillingDocType(b entity.BillingDocType) error {
	if !b.Valid() {
		return fmt.Errorf("%w: faturamento %q", domain.ErrInvalidInput, b)
	}
	d.cfg.BillingDocType = b
	return nil
}

// SetCondition cambia la condición comercial.
func (d *Draft) SetCondition(c entity.Condition) error {
	if !c.Valid() {
		return fmt.Errorf("%w: condición %q", domain.ErrInvalidInput, c)
	}
	d.cfg.Condition = c
	return nil
}

// SetInstallments fija la cantidad de parcelas dentro de 1..máximo permitido.
func (d *Draft) SetInstallments(n int) error {
	if n < 1 || n > MaxInstallmentCount {
		return fmt.Errorf("%w: parcelas fuera de 1..%d", domain.ErrInvalidInput, MaxInstallmentCount)
	}
	if d.capabilities.InstallmentsDisabled {
		d.cfg.InstallmentCount = 1
		return nil
	}
	if n > d.capabilities.MaxInstallments {
		n = d.capabilities.MaxInstallments
	}
	d.cfg.InstallmentCount = n
	return nil
}

// SetDiscount fija el descuento (negativos = 0).
func (d *Draft) SetDiscount(v decimal.Decimal) { d.cfg.Discount = normalizeAmount(v) }

// SetFreight fija el flete (negativos = 0).
func (d *Draft) SetFreight(v decimal.Decimal) { d.cfg.Freight = normalizeAmount(v) }

// EditDownPayment registra una entrada digitada: deja de recalcularse con el carrito.
func (d *Draft) EditDownPayment(v decimal.Decimal) {
	d.cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentOverride, Value: normalizeAmount(v)}
}

// ResetDownPayment vuelve la entrada al valor sugerido.
func (d *Draft) ResetDownPayment() {
	d.cfg.DownPayment = entity.DownPayment{Source: entity.DownPaymentDefault}
}

// Compute ejecuta el motor sobre el estado actual.
func (d *Draft) Compute(e *Engine) (*Result, error) {
	return e.Compute(d.slots, d.cfg)
}

// recalcCapabilities reaplica los controles y lleva las parcelas al máximo permitido.
func (d *Draft) recalcCapabilities() {
	cfg := d.cfg
	cfg.InstallmentCount = 0
	d.cfg, d.capabilities = ApplyCapabilities(d.slots, cfg)
}

func (d *Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.slots) {
		return fmt.Errorf("%w: espacio %d inexistente", domain.ErrNotFound, i)
	}
	return nil
}
