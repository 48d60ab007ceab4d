package quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

// DraftService eventos del formulario aplicados a borradores del servidor.
// Cada operación devuelve el borrador con el cálculo al día.
type DraftService struct {
	store *DraftStore
	uc    *UseCase
}

// NewDraftService construye el servicio sobre el mismo motor y catálogo que UseCase.
func NewDraftService(store *DraftStore, uc *UseCase) *DraftService {
	return &DraftService{store: store, uc: uc}
}

// Create abre un borrador con un espacio vacío y la configuración inicial.
func (s *DraftService) Create() (*dto.DraftResponse, error) {
	snap, err := s.uc.catalog.Snapshot()
	if err != nil {
		return nil, err
	}
	id, _ := s.store.Create(snap.Size())
	return s.Get(id)
}

// Get estado actual.
func (s *DraftService) Get(id string) (*dto.DraftResponse, error) {
	return s.apply(id, func(*quotation.Draft, *catalog.Snapshot) error { return nil })
}

// Delete descarta el borrador.
func (s *DraftService) Delete(id string) error {
	return s.store.Delete(id)
}

// AddSlot agrega un espacio vacío al carrito.
func (s *DraftService) AddSlot(id string) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error { return d.AddSlot() })
}

// RemoveSlot quita el espacio index.
func (s *DraftService) RemoveSlot(id string, index int) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error { return d.RemoveSlot(index) })
}

// SelectEquipment elige el equipo del espacio index.
func (s *DraftService) SelectEquipment(id string, index int, in dto.SelectEquipmentRequest) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, snap *catalog.Snapshot) error {
		eq, err := lookupEquipment(snap, in.EquipmentID)
		if err != nil {
			return err
		}
		return d.SelectEquipment(index, eq)
	})
}

// SetQuantity registra la cantidad digitada del espacio index.
func (s *DraftService) SetQuantity(id string, index int, in dto.QuantityRequest) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error { return d.SetQuantity(index, int(in.Quantity)) })
}

// UpdateConfig aplica los campos presentes en el orden del formulario:
// forma de pago, localización, faturamento, condición, parcelas, descuento, flete.
func (s *DraftService) UpdateConfig(id string, in dto.DraftConfigRequest) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error {
		if in.PaymentMethod != nil {
			if err := d.SetPaymentMethod(entity.PaymentMethod(*in.PaymentMethod)); err != nil {
				return err
			}
		}
		if in.Location != nil {
			if err := d.SetLocation(entity.Location(*in.Location)); err != nil {
				return err
			}
		}
		if in.BillingDocType != nil {
			if err := d.SetBillingDocType(entity.BillingDocType(*in.BillingDocType)); err != nil {
				return err
			}
		}
		if in.Condition != nil {
			if err := d.SetCondition(entity.Condition(*in.Condition)); err != nil {
				return err
			}
		}
		if in.InstallmentCount != nil {
			if err := d.SetInstallments(*in.InstallmentCount); err != nil {
				return err
			}
		}
		if in.Discount != nil {
			d.SetDiscount(in.Discount.Decimal())
		}
		if in.Freight != nil {
			d.SetFreight(in.Freight.Decimal())
		}
		return nil
	})
}

// EditDownPayment fija una entrada digitada (deja de recalcularse).
func (s *DraftService) EditDownPayment(id string, in dto.DownPaymentRequest) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error {
		d.EditDownPayment(in.Value.Decimal())
		return nil
	})
}

// ResetDownPayment vuelve a la entrada sugerida.
func (s *DraftService) ResetDownPayment(id string) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error {
		d.ResetDownPayment()
		return nil
	})
}

// SetClient reemplaza los datos de vendedor y cliente.
func (s *DraftService) SetClient(id string, in dto.ClientRequest) (*dto.DraftResponse, error) {
	return s.apply(id, func(d *quotation.Draft, _ *catalog.Snapshot) error {
		d.SetClient(toClientInfo(in))
		return nil
	})
}

// ExportPDF valida y genera el PDF del borrador.
func (s *DraftService) ExportPDF(ctx context.Context, id, sellerName string) (*ExportFile, error) {
	var doc *Document
	if err := s.withSnapshot(id, func(d *quotation.Draft, snap *catalog.Snapshot) error {
		client := d.Client()
		if strings.TrimSpace(client.SellerName) == "" {
			client.SellerName = sellerName
		}
		res, err := d.Compute(s.uc.engine)
		if err != nil {
			return err
		}
		if err := quotation.ValidateClient(client, res.Config.BillingDocType); err != nil {
			return err
		}
		doc = buildDocument(s.uc.companyName, s.uc.now(), snap, res, client)
		return nil
	}); err != nil {
		return nil, err
	}
	// la generación (posiblemente remota) corre fuera del lock del store
	data, err := s.uc.pdf.GenerateQuotePDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return &ExportFile{Name: doc.Filename("pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

func (s *DraftService) withSnapshot(id string, fn func(*quotation.Draft, *catalog.Snapshot) error) error {
	snap, err := s.uc.catalog.Snapshot()
	if err != nil {
		return err
	}
	return s.store.Update(id, func(d *quotation.Draft) error {
		d.SetCatalogSize(snap.Size())
		return fn(d, snap)
	})
}

// apply ejecuta el evento y arma la respuesta dentro del mismo lock.
func (s *DraftService) apply(id string, fn func(*quotation.Draft, *catalog.Snapshot) error) (*dto.DraftResponse, error) {
	var out *dto.DraftResponse
	err := s.withSnapshot(id, func(d *quotation.Draft, snap *catalog.Snapshot) error {
		if err := fn(d, snap); err != nil {
			return err
		}
		res, err := d.Compute(s.uc.engine)
		if err != nil {
			return err
		}
		out = toDraftResponse(id, d, snap, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func lookupEquipment(snap *catalog.Snapshot, id string) (*entity.Equipment, error) {
	cart, err := resolveCart(snap, []dto.QuoteItemRequest{{EquipmentID: id}})
	if err != nil {
		return nil, err
	}
	return cart[0].Equipment, nil
}

func toDraftResponse(id string, d *quotation.Draft, snap *catalog.Snapshot, res *quotation.Result) *dto.DraftResponse {
	slots := d.Slots()
	out := &dto.DraftResponse{
		ID:    id,
		Slots: make([]dto.DraftSlotResponse, 0, len(slots)),
		Quote: *toQuoteResponse(snap, res),
	}
	for i, sl := range slots {
		r := dto.DraftSlotResponse{Index: i, Quantity: sl.Quantity}
		if sl.Equipment != nil {
			r.EquipmentID = sl.Equipment.ID
			r.Name = sl.Equipment.Name
		}
		out.Slots = append(out.Slots, r)
	}
	c := d.Client()
	out.Client = dto.ClientRequest{SellerName: c.SellerName, ClientName: c.ClientName, ClientDocument: c.ClientDocument}
	return out
}
