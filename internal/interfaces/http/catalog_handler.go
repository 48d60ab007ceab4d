package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// CatalogHandler expone el catálogo en memoria (solo lectura).
type CatalogHandler struct {
	svc *catalog.Service
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Status godoc
// @Summary      Estado de la carga del catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogStatusResponse
// @Router       /api/catalog/status [get]
func (h *CatalogHandler) Status(c *fiber.Ctx) error {
	st := h.svc.Status()
	out := dto.CatalogStatusResponse{
		State:      string(st.State),
		Source:     st.Source,
		Equipment:  st.Equipment,
		Brands:     st.Brands,
		Categories: st.Categories,
		Error:      st.Error,
	}
	if !st.LoadedAt.IsZero() {
		t := st.LoadedAt
		out.LoadedAt = &t
	}
	return c.JSON(out)
}

// SearchEquipment godoc
// @Summary      Buscar equipos para el selector
// @Tags         catalog
// @Produce      json
// @Param        brand_id  query  string  false  "Marca"
// @Param        q         query  string  false  "Texto en nombre o código"
// @Param        exclude   query  string  false  "IDs ya elegidos, separados por coma"
// @Success      200  {array}   dto.EquipmentResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog/equipment [get]
func (h *CatalogHandler) SearchEquipment(c *fiber.Ctx) error {
	var in dto.EquipmentSearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if ok, err := checkStruct(c, &in); !ok {
		return err
	}
	list, err := h.svc.Search(catalog.SearchQuery{
		BrandID:    in.BrandID,
		Text:       in.Q,
		ExcludeIDs: splitIDs(in.Exclude),
	})
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEquipmentResponse(e))
	}
	return c.JSON(out)
}

// GetEquipment godoc
// @Summary      Obtener equipo por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/equipment/{id} [get]
func (h *CatalogHandler) GetEquipment(c *fiber.Ctx) error {
	e, err := h.svc.Equipment(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toEquipmentResponse(e))
}

// Brands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.NamedResponse
// @Router       /api/catalog/brands [get]
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(snap.Brands))
	for _, b := range snap.Brands {
		out = append(out, dto.NamedResponse{ID: b.ID, Name: b.Name})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.NamedResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(snap.Categories))
	for _, cat := range snap.Categories {
		out = append(out, dto.NamedResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(out)
}

func toEquipmentResponse(e *entity.Equipment) dto.EquipmentResponse {
	return dto.EquipmentResponse{
		ID:                         e.ID,
		Name:                       e.Name,
		Code:                       e.Code,
		BrandID:                    e.BrandID,
		CategoryID:                 e.CategoryID,
		PriceGeneral:               e.PriceGeneral,
		PriceIndividualDoc:         e.PriceIndividualDoc,
		PriceCorporateDoc:          e.PriceCorporateDoc,
		DownPaymentSPCorporate:     e.DownPaymentSPCorporate,
		DownPaymentOtherCorporate:  e.DownPaymentOtherCorporate,
		DownPaymentOtherIndividual: e.DownPaymentOtherIndividual,
		AcceptsBoleto:              e.AcceptsBoleto,
		CashOnly:                   e.CashOnly,
		MaxInstallments:            e.InstallmentCap(),
	}
}

func splitIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
