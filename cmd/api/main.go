package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/application/quote"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
	"github.com/jhoicas/Simulador-api/internal/domain/repository"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/catalogapi"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/docgen"
	infrapdf "github.com/jhoicas/Simulador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Simulador-api/internal/interfaces/http"
	"github.com/jhoicas/Simulador-api/pkg/config"
	"github.com/jhoicas/Simulador-api/pkg/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -d ./,../../internal/interfaces/http,../../internal/application/dto -o ../../docs --outputTypes json

const draftJanitorInterval = 10 * time.Minute

// @title           Simulador API
// @version         1.0
// @description     Simulación de cotizaciones de equipos: catálogo, borradores y exportación PDF/xlsx.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalog", cfg.Catalog.Source).
		Str("pdf", cfg.PDF.Mode).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Catálogo: API remota o PostgreSQL; se carga una sola vez en segundo plano
	var catalogRepo repository.CatalogRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		catalogRepo = postgres.NewCatalogRepository(pool)
	default:
		catalogRepo = catalogapi.NewClient(cfg.Catalog.APIURL, cfg.Catalog.Timeout)
	}
	catalogSvc := catalog.NewService(catalogRepo, cfg.Catalog.Source, log.Component("catalog"))
	catalogSvc.Start(ctx)

	params := quotation.DefaultParameters()
	params.BoletoRate = decimal.NewFromFloat(cfg.Quote.BoletoRate)
	params.Variant = quotation.FormulaVariant(cfg.Quote.FormulaVariant)
	engine, err := quotation.NewEngine(params)
	if err != nil {
		log.Fatal().Err(err).Msg("parámetros del motor de cotización")
	}

	// PDF: maroto local o servicio remoto de documentos
	var pdfGenerator quote.PDFGenerator = infrapdf.NewMarotoPDFGenerator()
	if cfg.PDF.Mode == config.PDFModeRemote {
		pdfGenerator = docgen.NewClient(cfg.PDF.ServiceURL, cfg.PDF.Timeout, cfg.PDF.MaxAttempts)
	}

	quoteUC := quote.NewUseCase(engine, catalogSvc, pdfGenerator, xlsx.NewExporter(), cfg.Quote.CompanyName, log.Component("quote"))
	draftStore := quote.NewDraftStore()
	draftSvc := quote.NewDraftService(draftStore, quoteUC)

	go draftStore.RunJanitor(ctx, draftJanitorInterval, cfg.Quote.DraftTTL, func(n int) {
		log.Info().Int("borradores", n).Msg("borradores vencidos descartados")
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.PDF.Timeout*time.Duration(cfg.PDF.MaxAttempts) + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"catalog": catalogSvc.Status().State,
			"drafts":  draftStore.Len(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:   catalogSvc,
		QuoteUC:   quoteUC,
		Drafts:    draftSvc,
		JWTSecret: cfg.JWT.Secret,
	})
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: rutas de cotización sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
