package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/internal/domain/repository"
)

// State estado de la carga del catálogo.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Status resumen expuesto por el endpoint de estado.
type Status struct {
	State      State
	Source     string
	Equipment  int
	Brands     int
	Categories int
	LoadedAt   time.Time
	Error      string
}

// Service mantiene el catálogo en memoria. Se carga una sola vez, en segundo plano,
// sin reintentos ni refresco; mientras carga las lecturas devuelven domain.ErrCatalogLoading.
// Si la carga falla el servicio queda con un catálogo vacío y el error en Status.
type Service struct {
	repo   repository.CatalogRepository
	source string
	log    zerolog.Logger
	now    func() time.Time

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	state    State
	snap     *Snapshot
	loadErr  error
	loadedAt time.Time
}

// NewService construye el servicio. source es solo informativo (http | postgres).
func NewService(repo repository.CatalogRepository, source string, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		source: source,
		log:    log,
		now:    time.Now,
		done:   make(chan struct{}),
		state:  StateLoading,
	}
}

// Start dispara la carga en una goroutine. Llamadas posteriores no hacen nada.
func (s *Service) Start(ctx context.Context) {
	s.once.Do(func() {
		go func() {
			defer close(s.done)
			s.load(ctx)
		}()
	})
}

// Wait bloquea hasta que termine la carga o se cancele ctx.
func (s *Service) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// load consulta equipos, marcas y categorías en paralelo.
func (s *Service) load(ctx context.Context) {
	var (
		equipment  []*entity.Equipment
		brands     []*entity.Brand
		categories []*entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		equipment, err = s.repo.ListEquipment(gctx)
		if err != nil {
			return fmt.Errorf("equipos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		brands, err = s.repo.ListBrands(gctx)
		if err != nil {
			return fmt.Errorf("marcas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.repo.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("categorías: %w", err)
		}
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedAt = s.now()
	if err != nil {
		s.state = StateFailed
		s.loadErr = err
		s.snap = NewSnapshot(nil, nil, nil)
		s.log.Error().Err(err).Str("source", s.source).Msg("error cargando catálogo")
		return
	}
	s.state = StateReady
	s.snap = NewSnapshot(equipment, brands, categories)
	s.log.Info().
		Str("source", s.source).
		Int("equipos", s.snap.Size()).
		Int("marcas", len(s.snap.Brands)).
		Int("categorias", len(s.snap.Categories)).
		Msg("catálogo cargado")
}

// Snapshot devuelve el catálogo actual o domain.ErrCatalogLoading si aún no terminó la carga.
func (s *Service) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == StateLoading {
		return nil, domain.ErrCatalogLoading
	}
	return s.snap, nil
}

// Status estado de la carga.
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Status{State: s.state, Source: s.source, LoadedAt: s.loadedAt}
	if s.snap != nil {
		st.Equipment = s.snap.Size()
		st.Brands = len(s.snap.Brands)
		st.Categories = len(s.snap.Categories)
	}
	if s.loadErr != nil {
		st.Error = s.loadErr.Error()
	}
	return st
}

// Search filtra equipos para el selector.
func (s *Service) Search(q SearchQuery) ([]*entity.Equipment, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Search(q), nil
}

// Equipment busca un equipo por ID.
func (s *Service) Equipment(id string) (*entity.Equipment, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	e, ok := snap.EquipmentByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: equipo %s", domain.ErrNotFound, id)
	}
	return e, nil
}
