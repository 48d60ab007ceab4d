package catalog

import (
	"strings"

	"github.com/jhoicas/Simulador-api/internal/domain/entity"
)

// Snapshot catálogo inmutable tal como quedó tras la carga inicial.
type Snapshot struct {
	Equipment  []*entity.Equipment
	Brands     []*entity.Brand
	Categories []*entity.Category

	equipmentByID map[string]*entity.Equipment
	brandByID     map[string]*entity.Brand
	categoryByID  map[string]*entity.Category
}

// NewSnapshot indexa las tres listas por ID. Entradas nil se descartan.
func NewSnapshot(equipment []*entity.Equipment, brands []*entity.Brand, categories []*entity.Category) *Snapshot {
	s := &Snapshot{
		equipmentByID: make(map[string]*entity.Equipment, len(equipment)),
		brandByID:     make(map[string]*entity.Brand, len(brands)),
		categoryByID:  make(map[string]*entity.Category, len(categories)),
	}
	for _, e := range equipment {
		if e == nil {
			continue
		}
		s.Equipment = append(s.Equipment, e)
		s.equipmentByID[e.ID] = e
	}
	for _, b := range brands {
		if b == nil {
			continue
		}
		s.Brands = append(s.Brands, b)
		s.brandByID[b.ID] = b
	}
	for _, c := range categories {
		if c == nil {
			continue
		}
		s.Categories = append(s.Categories, c)
		s.categoryByID[c.ID] = c
	}
	return s
}

// Size cantidad de equipos; limita los espacios del carrito.
func (s *Snapshot) Size() int { return len(s.Equipment) }

// EquipmentByID busca un equipo; ok=false si no existe.
func (s *Snapshot) EquipmentByID(id string) (*entity.Equipment, bool) {
	e, ok := s.equipmentByID[id]
	return e, ok
}

// BrandName nombre de la marca o "" si no existe.
func (s *Snapshot) BrandName(id string) string {
	if b, ok := s.brandByID[id]; ok {
		return b.Name
	}
	return ""
}

// CategoryName nombre de la categoría o "" si no existe.
func (s *Snapshot) CategoryName(id string) string {
	if c, ok := s.categoryByID[id]; ok {
		return c.Name
	}
	return ""
}

// SearchQuery filtros del selector de equipos.
type SearchQuery struct {
	BrandID    string   // vacío = todas las marcas
	Text       string   // substring en nombre o código, sin distinguir mayúsculas
	ExcludeIDs []string // equipos ya elegidos en otros espacios del carrito
}

// Search aplica los filtros en el orden del catálogo.
func (s *Snapshot) Search(q SearchQuery) []*entity.Equipment {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	excluded := make(map[string]struct{}, len(q.ExcludeIDs))
	for _, id := range q.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	out := make([]*entity.Equipment, 0, len(s.Equipment))
	for _, e := range s.Equipment {
		if q.BrandID != "" && e.BrandID != q.BrandID {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(e.Name), text) &&
			!strings.Contains(strings.ToLower(e.Code), text) {
			continue
		}
		if _, skip := excluded[e.ID]; skip {
			continue
		}
		out = append(out, e)
	}
	return out
}
