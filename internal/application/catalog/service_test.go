package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/application/catalog"
	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// fakeRepo repositorio en memoria; gate (si no es nil) retiene ListEquipment hasta cerrarse.
type fakeRepo struct {
	gate       chan struct{}
	equipment  []*entity.Equipment
	brands     []*entity.Brand
	categories []*entity.Category
	errBrands  error
}

func (f *fakeRepo) ListEquipment(ctx context.Context) ([]*entity.Equipment, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.equipment, nil
}

func (f *fakeRepo) ListBrands(context.Context) ([]*entity.Brand, error) {
	return f.brands, f.errBrands
}

func (f *fakeRepo) ListCategories(context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func sampleRepo() *fakeRepo {
	return &fakeRepo{
		equipment: []*entity.Equipment{
			{ID: "1", Name: "Scanner Pro", Code: "SCN-01", BrandID: "b1", CategoryID: "c1"},
			{ID: "2", Name: "Elevador 4T", Code: "ELV-4", BrandID: "b2", CategoryID: "c2"},
			{ID: "3", Name: "Scanner Lite", BrandID: "b1", CategoryID: "c1"},
		},
		brands:     []*entity.Brand{{ID: "b1", Name: "Alfa"}, {ID: "b2", Name: "Beta"}},
		categories: []*entity.Category{{ID: "c1", Name: "Diagnóstico"}, {ID: "c2", Name: "Elevadores"}},
	}
}

func waitLoaded(t *testing.T, svc *catalog.Service) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Wait(ctx))
}

func TestService_CargandoHastaQueTermine(t *testing.T) {
	repo := sampleRepo()
	repo.gate = make(chan struct{})
	svc := catalog.NewService(repo, "http", zerolog.Nop())
	svc.Start(context.Background())

	_, err := svc.Snapshot()
	assert.ErrorIs(t, err, domain.ErrCatalogLoading)
	_, err = svc.Search(catalog.SearchQuery{})
	assert.ErrorIs(t, err, domain.ErrCatalogLoading)
	assert.Equal(t, catalog.StateLoading, svc.Status().State)

	close(repo.gate)
	waitLoaded(t, svc)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Size())
	st := svc.Status()
	assert.Equal(t, catalog.StateReady, st.State)
	assert.Equal(t, 2, st.Brands)
	assert.Equal(t, 2, st.Categories)
	assert.Equal(t, "Diagnóstico", snap.CategoryName("c1"))
	assert.Equal(t, "Beta", snap.BrandName("b2"))
}

func TestService_FallaDejaCatalogoVacio(t *testing.T) {
	repo := sampleRepo()
	repo.errBrands = errors.New("timeout")
	svc := catalog.NewService(repo, "http", zerolog.Nop())
	svc.Start(context.Background())
	waitLoaded(t, svc)

	snap, err := svc.Snapshot()
	require.NoError(t, err, "tras la falla se sirve catálogo vacío")
	assert.Equal(t, 0, snap.Size())

	st := svc.Status()
	assert.Equal(t, catalog.StateFailed, st.State)
	assert.Contains(t, st.Error, "marcas")
}

func TestService_StartUnaSolaVez(t *testing.T) {
	svc := catalog.NewService(sampleRepo(), "postgres", zerolog.Nop())
	svc.Start(context.Background())
	svc.Start(context.Background())
	waitLoaded(t, svc)
	assert.Equal(t, "postgres", svc.Status().Source)
}

func TestService_Equipment(t *testing.T) {
	svc := catalog.NewService(sampleRepo(), "http", zerolog.Nop())
	svc.Start(context.Background())
	waitLoaded(t, svc)

	e, err := svc.Equipment("2")
	require.NoError(t, err)
	assert.Equal(t, "Elevador 4T", e.Name)

	_, err = svc.Equipment("99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshot_Search(t *testing.T) {
	repo := sampleRepo()
	snap := catalog.NewSnapshot(repo.equipment, repo.brands, repo.categories)

	got := snap.Search(catalog.SearchQuery{BrandID: "b1"})
	require.Len(t, got, 2)

	got = snap.Search(catalog.SearchQuery{Text: "scn"})
	require.Len(t, got, 1, "busca también por código")
	assert.Equal(t, "1", got[0].ID)

	got = snap.Search(catalog.SearchQuery{Text: "SCANNER", ExcludeIDs: []string{"1"}})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Empty(t, snap.Search(catalog.SearchQuery{BrandID: "b2", Text: "scanner"}))
}
