package quotation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// supportCategoryKeywords categorías con 2 años de soporte técnico.
var supportCategoryKeywords = []string{"DIAGNOSTICO", "IMOBILIZADOR"}

// IsDiagnosticCategory indica si la categoría del equipo lleva la nota de "2 anos de suporte".
// La comparación ignora mayúsculas y acentos ("Diagnóstico" == "DIAGNOSTICO").
func IsDiagnosticCategory(categoryName string) bool {
	folded := strings.ToUpper(foldAccents(categoryName))
	for _, kw := range supportCategoryKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
