package quotation

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Simulador-api/internal/domain"
	"github.com/jhoicas/Simulador-api/internal/domain/entity"
	"github.com/jhoicas/Simulador-api/pkg/brdoc"
)

// Campos verificados antes de exportar la cotización.
const (
	FieldSellerName     = "seller_name"
	FieldClientName     = "client_name"
	FieldClientDocument = "client_document"
)

// FieldError falla de validación de un campo; el cliente usa Field para enfocar el input.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError reúne las fallas de la validación previa a la exportación.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

// Unwrap permite errors.Is(err, domain.ErrValidation).
func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// CheckSellerName nombre del vendedor obligatorio.
func CheckSellerName(name string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: FieldSellerName, Code: "REQUIRED", Message: "informe el nombre del vendedor"}
	}
	return nil
}

// CheckClientName nombre del cliente obligatorio.
func CheckClientName(name string) *FieldError {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: FieldClientName, Code: "REQUIRED", Message: "informe el nombre del cliente"}
	}
	return nil
}

// CheckClientDocument documento obligatorio y con la cantidad de dígitos del tipo de facturación
// (CPF 11, CNPJ 14). No verifica dígitos verificadores.
func CheckClientDocument(doc string, billing entity.BillingDocType) *FieldError {
	if strings.TrimSpace(doc) == "" {
		return &FieldError{Field: FieldClientDocument, Code: "REQUIRED", Message: "informe el " + string(billing) + " del cliente"}
	}
	want := billing.DocumentDigits()
	if !brdoc.HasLength(doc, want) {
		return &FieldError{
			Field:   FieldClientDocument,
			Code:    "INVALID_LENGTH",
			Message: fmt.Sprintf("%s debe tener %d dígitos", billing, want),
		}
	}
	return nil
}

// ValidateClient ejecuta las tres verificaciones; devuelve *ValidationError con todas las fallas o nil.
func ValidateClient(info entity.ClientInfo, billing entity.BillingDocType) error {
	var fields []FieldError
	for _, fe := range []*FieldError{
		CheckSellerName(info.SellerName),
		CheckClientName(info.ClientName),
		CheckClientDocument(info.ClientDocument, billing),
	} {
		if fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
