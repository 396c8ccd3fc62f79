package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalExternalID = "external_id"
	LocalIdentity   = "identity"
)

// AuthMiddleware valida el Bearer Token JWT y deja el id del principal
// externo en c.Locals. Con issuer configurado el claim iss también se exige.
// El token solo autentica: org y rol NUNCA viajan en él, se resuelven contra
// la BD en cada petición (ver RequireRoles).
func AuthMiddleware(jwtSecret, jwtIssuer string) fiber.Handler {
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
		externalID, err := jwt.Parse(jwtSecret, jwtIssuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalExternalID, externalID)
		return c.Next()
	}
}

// GetExternalID devuelve el id del principal externo (después de AuthMiddleware).
func GetExternalID(c *fiber.Ctx) string {
	v := c.Locals(LocalExternalID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
