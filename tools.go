//go:build tools

// Dependencias de herramientas: `go generate ./cmd/api` regenera docs/swagger.json con swag.
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
