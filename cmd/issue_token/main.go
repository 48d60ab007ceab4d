// issue_token emite un JWT de vendedor firmado con JWT_SECRET.
//
// Uso: go run ./cmd/issue_token <seller_id> "<nombre del vendedor>"
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Simulador-api/pkg/config"
	"github.com/jhoicas/Simulador-api/pkg/jwt"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, `uso: issue_token <seller_id> "<nombre del vendedor>"`)
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado")
		os.Exit(1)
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, os.Args[1], os.Args[2], cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
