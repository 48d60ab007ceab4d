package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
)

// DraftHandler borradores editables: cada evento del formulario devuelve el cálculo al día.
type DraftHandler struct {
	svc *quote.DraftService
}

// NewDraftHandler construye el handler.
func NewDraftHandler(svc *quote.DraftService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// Create godoc
// @Summary      Abrir un borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	out, err := h.svc.Create()
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return h.respond(c)(h.svc.Get(c.Params("id")))
}

// Delete godoc
// @Summary      Descartar borrador
// @Tags         drafts
// @Security     Bearer
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddSlot godoc
// @Summary      Agregar espacio al carrito
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/slots [post]
func (h *DraftHandler) AddSlot(c *fiber.Ctx) error {
	return h.respond(c)(h.svc.AddSlot(c.Params("id")))
}

// RemoveSlot godoc
// @Summary      Quitar espacio del carrito
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        index  path  int     true  "Índice del espacio"
// @Success      200  {object}  dto.DraftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/slots/{index} [delete]
func (h *DraftHandler) RemoveSlot(c *fiber.Ctx) error {
	idx, ok, err := slotIndex(c)
	if !ok {
		return err
	}
	return h.respond(c)(h.svc.RemoveSlot(c.Params("id"), idx))
}

// SelectEquipment godoc
// @Summary      Elegir el equipo de un espacio
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        index  path  int     true  "Índice del espacio"
// @Param        body   body  dto.SelectEquipmentRequest  true  "Equipo"
// @Success      200  {object}  dto.DraftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/slots/{index}/equipment [put]
func (h *DraftHandler) SelectEquipment(c *fiber.Ctx) error {
	idx, ok, err := slotIndex(c)
	if !ok {
		return err
	}
	var in dto.SelectEquipmentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c)(h.svc.SelectEquipment(c.Params("id"), idx, in))
}

// SetQuantity godoc
// @Summary      Cantidad digitada de un espacio
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID del borrador"
// @Param        index  path  int     true  "Índice del espacio"
// @Param        body   body  dto.QuantityRequest  true  "Cantidad"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/drafts/{id}/slots/{index}/quantity [put]
func (h *DraftHandler) SetQuantity(c *fiber.Ctx) error {
	idx, ok, err := slotIndex(c)
	if !ok {
		return err
	}
	var in dto.QuantityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c)(h.svc.SetQuantity(c.Params("id"), idx, in))
}

// UpdateConfig godoc
// @Summary      Cambiar configuración de pago
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.DraftConfigRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/config [patch]
func (h *DraftHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.DraftConfigRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c)(h.svc.UpdateConfig(c.Params("id"), in))
}

// EditDownPayment godoc
// @Summary      Entrada digitada por el vendedor
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.DownPaymentRequest  true  "Entrada"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/drafts/{id}/down-payment [put]
func (h *DraftHandler) EditDownPayment(c *fiber.Ctx) error {
	var in dto.DownPaymentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c)(h.svc.EditDownPayment(c.Params("id"), in))
}

// ResetDownPayment godoc
// @Summary      Volver a la entrada sugerida
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/drafts/{id}/down-payment [delete]
func (h *DraftHandler) ResetDownPayment(c *fiber.Ctx) error {
	return h.respond(c)(h.svc.ResetDownPayment(c.Params("id")))
}

// SetClient godoc
// @Summary      Datos de vendedor y cliente
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.ClientRequest  true  "Cliente"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/drafts/{id}/client [put]
func (h *DraftHandler) SetClient(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	return h.respond(c)(h.svc.SetClient(c.Params("id"), in))
}

// PDF godoc
// @Summary      Exportar el borrador en PDF
// @Tags         drafts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del borrador"
// @Success      200
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/drafts/{id}/pdf [post]
func (h *DraftHandler) PDF(c *fiber.Ctx) error {
	f, err := h.svc.ExportPDF(c.UserContext(), c.Params("id"), GetSellerName(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

func (h *DraftHandler) respond(c *fiber.Ctx) func(*dto.DraftResponse, error) error {
	return func(out *dto.DraftResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}

func slotIndex(c *fiber.Ctx) (int, bool, error) {
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil || idx < 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice de espacio inválido"})
	}
	return idx, true, nil
}
