package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/quotation"
)

func TestDraftStore_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s := NewDraftStore()
	s.now = func() time.Time { return now }

	viejo, _ := s.Create(3)
	now = now.Add(2 * time.Hour)
	nuevo, _ := s.Create(3)

	assert.Equal(t, 1, s.Prune(time.Hour))
	assert.Equal(t, 1, s.Len())
	assert.ErrorIs(t, s.Update(viejo, func(*quotation.Draft) error { return nil }), domain.ErrNotFound)
	require.NoError(t, s.Update(nuevo, func(*quotation.Draft) error { return nil }))
}

func TestDraftStore_UpdateRefrescaActividad(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s := NewDraftStore()
	s.now = func() time.Time { return now }

	id, _ := s.Create(3)
	now = now.Add(50 * time.Minute)
	require.NoError(t, s.Update(id, func(d *quotation.Draft) error { return d.SetQuantity(0, 2) }))
	now = now.Add(50 * time.Minute)

	assert.Equal(t, 0, s.Prune(time.Hour), "actualizado hace 50 min")
}
