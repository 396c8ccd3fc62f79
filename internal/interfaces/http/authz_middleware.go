package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/identity"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// RequireRoles gate de autorización por petición: resuelve la identidad
// contra la BD (sin caché, el rol puede haber cambiado) y exige que el rol
// pertenezca al conjunto permitido. La identidad resuelta queda en c.Locals
// para que los handlers no vuelvan a consultar.
func RequireRoles(resolver *identity.Resolver, allowed rbac.RoleSet, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := resolver.Authorize(c.UserContext(), GetExternalID(c), allowed)
		if err != nil {
			return writeError(c, log, err)
		}
		c.Locals(LocalIdentity, id)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad resuelta (después de RequireRoles).
func GetIdentity(c *fiber.Ctx) *identity.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*identity.Identity)
	return id
}
