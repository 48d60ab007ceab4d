package entity

// Brand marca de equipo. Se usa para filtrar el catálogo.
type Brand struct {
	ID   string
	Name string
}
