package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrCatalogLoading  = errors.New("catálogo de equipos aún cargando")
	ErrCartFull        = errors.New("el carrito ya tiene un espacio por equipo del catálogo")
	ErrEmptySlot       = errors.New("ya existe un espacio vacío en el carrito")
	ErrLastSlot        = errors.New("el carrito debe tener al menos un espacio")
	ErrValidation      = errors.New("datos de la cotización incompletos")
	ErrDocumentService = errors.New("servicio de documentos no disponible")
)
