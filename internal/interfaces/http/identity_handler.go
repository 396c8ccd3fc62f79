package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/usecase"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// IdentityHandler perfil, preferencias y catálogo de roles.
type IdentityHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewIdentityHandler construye el handler.
func NewIdentityHandler(uc *usecase.UserUseCase, log *logger.Logger) *IdentityHandler {
	return &IdentityHandler{uc: uc, log: log}
}

// Me godoc
// @Summary      Usuario autenticado con organización y rol
// @Tags         identity
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *IdentityHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return writeError(c, h.log, domain.ErrUnauthorized)
	}
	return c.JSON(h.uc.Me(id))
}

// UpdatePreferences godoc
// @Summary      Actualizar preferencias del usuario
// @Tags         identity
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePreferencesRequest  true  "Preferencias"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/preferences [patch]
func (h *IdentityHandler) UpdatePreferences(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return writeError(c, h.log, domain.ErrUnauthorized)
	}
	var in dto.UpdatePreferencesRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.UpdateDarkMode(c.UserContext(), id.UserID, *in.DarkMode); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Roles godoc
// @Summary      Listar roles de aplicación
// @Tags         identity
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/roles [get]
func (h *IdentityHandler) Roles(c *fiber.Ctx) error {
	out, err := h.uc.Roles(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
