// seed_catalog carga en PostgreSQL el catálogo exportado de la API de equipos
// (para usar CATALOG_SOURCE=postgres).
//
// Uso: go run ./cmd/seed_catalog [directorio]
// El directorio (por defecto ".") debe contener equipamentos.json, marcaEquipamento.json
// y tipoEquipamento.json, tal como los devuelven los endpoints de la API.
// Los archivos exportados en ISO-8859-1 se convierten a UTF-8.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Simulador-api/internal/domain/repository"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/catalogapi"
	"github.com/jhoicas/Simulador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Simulador-api/pkg/config"
	"github.com/jhoicas/Simulador-api/pkg/logger"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	brands, err := catalogapi.DecodeBrands(openExport(dir, "marcaEquipamento.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("decodificar marcas")
	}
	categories, err := catalogapi.DecodeCategories(openExport(dir, "tipoEquipamento.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("decodificar categorías")
	}
	equipment, err := catalogapi.DecodeEquipment(openExport(dir, "equipamentos.json"))
	if err != nil {
		log.Fatal().Err(err).Msg("decodificar equipos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	err = postgres.NewTxRunner(pool).RunCatalog(ctx, func(w repository.CatalogWriter) error {
		for _, b := range brands {
			if err := w.UpsertBrand(ctx, b); err != nil {
				return fmt.Errorf("marca %s: %w", b.ID, err)
			}
		}
		for _, c := range categories {
			if err := w.UpsertCategory(ctx, c); err != nil {
				return fmt.Errorf("categoría %s: %w", c.ID, err)
			}
		}
		for _, e := range equipment {
			if err := w.UpsertEquipment(ctx, e); err != nil {
				return fmt.Errorf("equipo %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}

	log.Info().
		Int("marcas", len(brands)).
		Int("categorias", len(categories)).
		Int("equipos", len(equipment)).
		Msg("catálogo cargado en PostgreSQL")
}

// openExport lee el archivo completo; si no es UTF-8 válido lo decodifica como ISO-8859-1.
func openExport(dir, name string) io.Reader {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir %s: %v\n", name, err)
		os.Exit(1)
	}
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}
