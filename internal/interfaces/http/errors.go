package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody lee el JSON y aplica las reglas `validate` del DTO.
// Si devuelve false la respuesta de error ya fue escrita.
func parseBody(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return checkStruct(c, in)
}

func checkStruct(c *fiber.Ctx, in any) (bool, error) {
	err := validate.Struct(in)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	fields := make([]dto.FieldErrorDTO, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldErrorDTO{
			Field:   fieldPath(fe.Namespace()),
			Code:    strings.ToUpper(fe.Tag()),
			Message: fe.Error(),
		})
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "datos inválidos",
		Fields:  fields,
	})
}

// fieldPath quita el nombre del struct raíz: "QuoteRequest.Items[0].Quantity" → "Items[0].Quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "complete los datos antes de exportar",
			Fields:  quote.FieldErrors(err),
		})
	case errors.Is(err, domain.ErrCatalogLoading):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CATALOG_LOADING", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrCartFull):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CART_FULL", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySlot):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_SLOT", Message: err.Error()})
	case errors.Is(err, domain.ErrLastSlot):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_SLOT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrDocumentService):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DOCUMENT_SERVICE", Message: "no se pudo generar el documento, intente más tarde"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// sendFile responde un archivo exportado como descarga.
func sendFile(c *fiber.Ctx, f *quote.ExportFile) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Name+`"`)
	return c.Send(f.Data)
}
