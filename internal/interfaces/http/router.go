package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog   *catalog.Service
	QuoteUC   *quote.UseCase
	Drafts    *quote.DraftService
	JWTSecret string // vacío = API abierta
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público: el selector se carga antes del login)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	cat := api.Group("/catalog")
	cat.Get("/status", catalogHandler.Status)
	cat.Get("/equipment", catalogHandler.SearchEquipment)
	cat.Get("/equipment/:id", catalogHandler.GetEquipment)
	cat.Get("/brands", catalogHandler.Brands)
	cat.Get("/categories", catalogHandler.Categories)

	// Rutas del vendedor (Bearer Token si JWT_SECRET está configurado)
	protected := api.Group("/")
	if deps.JWTSecret != "" {
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes := protected.Group("/quotes")
	quotes.Get("/card-fees", quoteHandler.CardFees)
	quotes.Post("/simulate", quoteHandler.Simulate)
	quotes.Post("/validate", quoteHandler.Validate)
	quotes.Post("/pdf", quoteHandler.PDF)
	quotes.Post("/xlsx", quoteHandler.XLSX)

	draftHandler := NewDraftHandler(deps.Drafts)
	drafts := protected.Group("/drafts")
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Delete("/:id", draftHandler.Delete)
	drafts.Post("/:id/slots", draftHandler.AddSlot)
	drafts.Delete("/:id/slots/:index", draftHandler.RemoveSlot)
	drafts.Put("/:id/slots/:index/equipment", draftHandler.SelectEquipment)
	drafts.Put("/:id/slots/:index/quantity", draftHandler.SetQuantity)
	drafts.Patch("/:id/config", draftHandler.UpdateConfig)
	drafts.Put("/:id/down-payment", draftHandler.EditDownPayment)
	drafts.Delete("/:id/down-payment", draftHandler.ResetDownPayment)
	drafts.Put("/:id/client", draftHandler.SetClient)
	drafts.Post("/:id/pdf", draftHandler.PDF)
}
