// Package brdoc utilidades para documentos fiscales brasileños (CPF y CNPJ).
package brdoc

import "unicode"

const (
	// CPFLength dígitos de un CPF (persona física).
	CPFLength = 11
	// CNPJLength dígitos de un CNPJ (persona jurídica).
	CNPJLength = 14
)

// Digits devuelve solo los dígitos del documento.
// Acepta "123.456.789-09", "11.222.333/0001-81" o el número sin máscara.
func Digits(doc string) string {
	out := make([]byte, 0, len(doc))
	for _, r := range doc {
		if unicode.IsDigit(r) && r < 128 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// HasLength indica si el documento, sin máscara, tiene exactamente n dígitos.
func HasLength(doc string, n int) bool {
	return len(Digits(doc)) == n
}

// Format aplica la máscara usual según la cantidad de dígitos.
// Documentos con otra longitud se devuelven sin cambios.
func Format(doc string) string {
	d := Digits(doc)
	switch len(d) {
	case CPFLength:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case CNPJLength:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	default:
		return doc
	}
}
