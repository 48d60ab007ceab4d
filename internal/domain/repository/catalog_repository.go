package repository

import (
	"context"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// CatalogRepository define el puerto de lectura del catálogo de equipos (DIP).
// Lo implementan la API remota de catálogo y PostgreSQL.
type CatalogRepository interface {
	ListEquipment(ctx context.Context) ([]*entity.Equipment, error)
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// CatalogWriter puerto de escritura usado solo por la carga inicial (seed).
type CatalogWriter interface {
	UpsertBrand(ctx context.Context, b *entity.Brand) error
	UpsertCategory(ctx context.Context, c *entity.Category) error
	UpsertEquipment(ctx context.Context, e *entity.Equipment) error
}
