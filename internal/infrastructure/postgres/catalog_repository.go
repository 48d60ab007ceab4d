package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/repository"
)

var (
	_ repository.CatalogRepository = (*CatalogRepo)(nil)
	_ repository.CatalogWriter     = (*CatalogRepo)(nil)
)

// CatalogRepo catálogo de equipos sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListEquipment lista todos los equipos ordenados por nombre.
func (r *CatalogRepo) ListEquipment(ctx context.Context) ([]*entity.Equipment, error) {
	query := `
		SELECT id, name, code, brand_id, category_id,
		       price_general, price_individual_doc, price_corporate_doc,
		       down_payment_sp_corporate, down_payment_other_corporate, down_payment_other_individual,
		       accepts_boleto, cash_only, max_installments
		FROM equipment ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		var downSP, downOtherCorp, downOtherInd decimal.NullDecimal
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Code, &e.BrandID, &e.CategoryID,
			&e.PriceGeneral, &e.PriceIndividualDoc, &e.PriceCorporateDoc,
			&downSP, &downOtherCorp, &downOtherInd,
			&e.AcceptsBoleto, &e.CashOnly, &e.MaxInstallments,
		); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		e.DownPaymentSPCorporate = nullToZero(downSP)
		e.DownPaymentOtherCorporate = nullToZero(downOtherCorp)
		e.DownPaymentOtherIndividual = nullToZero(downOtherInd)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListBrands lista las marcas.
func (r *CatalogRepo) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM brands ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ListCategories lista los tipos de equipo.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpsertBrand inserta o actualiza una marca.
func (r *CatalogRepo) UpsertBrand(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO brands (id, name) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		b.ID, b.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert brand %s: %w", b.ID, err)
	}
	return nil
}

// UpsertCategory inserta o actualiza un tipo de equipo.
func (r *CatalogRepo) UpsertCategory(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		c.ID, c.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert category %s: %w", c.ID, err)
	}
	return nil
}

// UpsertEquipment inserta o actualiza un equipo. Sugerencias de entrada en cero se guardan como NULL.
func (r *CatalogRepo) UpsertEquipment(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, code, brand_id, category_id,
		    price_general, price_individual_doc, price_corporate_doc,
		    down_payment_sp_corporate, down_payment_other_corporate, down_payment_other_individual,
		    accepts_boleto, cash_only, max_installments, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name, code = EXCLUDED.code,
		    brand_id = EXCLUDED.brand_id, category_id = EXCLUDED.category_id,
		    price_general = EXCLUDED.price_general,
		    price_individual_doc = EXCLUDED.price_individual_doc,
		    price_corporate_doc = EXCLUDED.price_corporate_doc,
		    down_payment_sp_corporate = EXCLUDED.down_payment_sp_corporate,
		    down_payment_other_corporate = EXCLUDED.down_payment_other_corporate,
		    down_payment_other_individual = EXCLUDED.down_payment_other_individual,
		    accepts_boleto = EXCLUDED.accepts_boleto, cash_only = EXCLUDED.cash_only,
		    max_installments = EXCLUDED.max_installments, updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.Code, e.BrandID, e.CategoryID,
		e.PriceGeneral, e.PriceIndividualDoc, e.PriceCorporateDoc,
		zeroToNull(e.DownPaymentSPCorporate), zeroToNull(e.DownPaymentOtherCorporate), zeroToNull(e.DownPaymentOtherIndividual),
		e.AcceptsBoleto, e.CashOnly, e.MaxInstallments,
	)
	if err != nil {
		return fmt.Errorf("upsert equipment %s: %w", e.ID, err)
	}
	return nil
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func zeroToNull(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: !d.IsZero()}
}
