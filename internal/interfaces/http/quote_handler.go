package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
)

// QuoteHandler simulación sin estado: cálculo, validación y exportación.
type QuoteHandler struct {
	uc *quote.UseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *quote.UseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Simulate godoc
// @Summary      Calcular la cotización
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Carrito y configuración"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/quotes/simulate [post]
func (h *QuoteHandler) Simulate(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Simulate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar vendedor, cliente y documento antes de exportar
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Datos de la cotización"
// @Success      200   {object}  dto.ValidationResponse
// @Router       /api/quotes/validate [post]
func (h *QuoteHandler) Validate(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	withSeller(c, &in.Client)
	out, err := h.uc.Validate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Exportar la cotización en PDF
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.QuoteRequest  true  "Datos de la cotización"
// @Success      200
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/quotes/pdf [post]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	f, err := h.uc.ExportPDF(c.UserContext(), in, GetSellerName(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// XLSX godoc
// @Summary      Exportar la cotización en planilla
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  dto.QuoteRequest  true  "Datos de la cotización"
// @Success      200
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/quotes/xlsx [post]
func (h *QuoteHandler) XLSX(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	f, err := h.uc.ExportSheet(c.UserContext(), in, GetSellerName(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// CardFees godoc
// @Summary      Tabla de tasas de tarjeta
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  dto.CardFeeDTO
// @Router       /api/quotes/card-fees [get]
func (h *QuoteHandler) CardFees(c *fiber.Ctx) error {
	return c.JSON(h.uc.CardFees())
}

// withSeller completa el vendedor con el del token cuando el formulario no lo trae.
func withSeller(c *fiber.Ctx, client *dto.ClientRequest) {
	if client.SellerName == "" {
		client.SellerName = GetSellerName(c)
	}
}
