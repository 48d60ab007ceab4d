package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

type draftEntry struct {
	draft     *quotation.Draft
	updatedAt time.Time
}

// DraftStore borradores en memoria. Cada borrador tiene un solo editor: las operaciones
// se serializan con el mutex del store y recalculan en el momento.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
	now    func() time.Time
}

// NewDraftStore construye un store vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*draftEntry), now: time.Now}
}

// Create registra un borrador nuevo y devuelve su ID.
func (s *DraftStore) Create(catalogSize int) (string, *quotation.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	d := quotation.NewDraft(catalogSize)
	s.drafts[id] = &draftEntry{draft: d, updatedAt: s.now()}
	return id, d
}

// Update ejecuta fn con el borrador bloqueado.
func (s *DraftStore) Update(id string, fn func(d *quotation.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[id]
	if !ok {
		return fmt.Errorf("%w: borrador %s", domain.ErrNotFound, id)
	}
	if err := fn(e.draft); err != nil {
		return err
	}
	e.updatedAt = s.now()
	return nil
}

// Delete elimina el borrador.
func (s *DraftStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return fmt.Errorf("%w: borrador %s", domain.ErrNotFound, id)
	}
	delete(s.drafts, id)
	return nil
}

// Len cantidad de borradores activos.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Prune elimina los borradores sin cambios desde hace más de ttl. Devuelve cuántos eliminó.
func (s *DraftStore) Prune(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := s.now().Add(-ttl)
	n := 0
	for id, e := range s.drafts {
		if e.updatedAt.Before(limit) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

// RunJanitor ejecuta Prune cada interval hasta que se cancele ctx.
func (s *DraftStore) RunJanitor(ctx context.Context, interval, ttl time.Duration, onPrune func(n int)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Prune(ttl); n > 0 && onPrune != nil {
				onPrune(n)
			}
		}
	}
}
