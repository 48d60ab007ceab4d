package entity

// Category tipo/grupo de equipo (ej. "DIAGNÓSTICO", "IMOBILIZADOR").
type Category struct {
	ID   string
	Name string
}
