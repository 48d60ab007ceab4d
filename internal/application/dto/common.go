package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorDTO falla de un campo; el cliente usa Field para enfocar el input.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 422 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Fields  []FieldErrorDTO `json:"fields"`
}
