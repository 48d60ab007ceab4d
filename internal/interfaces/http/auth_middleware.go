package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Simulador-api/internal/application/dto"
	"github.com/jhoicas/Simulador-api/pkg/jwt"
)

// Locals keys para el vendedor autenticado en Fiber.
const (
	LocalSellerID   = "seller_id"
	LocalSellerName = "seller_name"
)

// AuthMiddleware valida el Bearer Token JWT y extrae el vendedor a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSellerID, claims.SellerID)
		c.Locals(LocalSellerName, claims.SellerName)
		return c.Next()
	}
}

// GetSellerID devuelve el vendedor del token (vacío si la API está abierta).
func GetSellerID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSellerID).(string)
	return s
}

// GetSellerName devuelve el nombre del vendedor del token.
func GetSellerName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSellerName).(string)
	return s
}
