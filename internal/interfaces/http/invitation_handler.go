package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/invitation"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// InvitationHandler maneja verificación, alta y aceptación de invitaciones.
type InvitationHandler struct {
	uc       *invitation.UseCase
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewInvitationHandler construye el handler.
func NewInvitationHandler(uc *invitation.UseCase, userRepo repository.UserRepository, log *logger.Logger) *InvitationHandler {
	return &InvitationHandler{uc: uc, userRepo: userRepo, log: log}
}

// Verify godoc
// @Summary      Verificar invitación (público)
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyInvitationRequest  true  "Email y código"
// @Success      200   {object}  dto.VerifyInvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invitations/verify [post]
func (h *InvitationHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyInvitationRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Verify(c.UserContext(), in)
	if err != nil {
		// Código inexistente, email distinto o ya consumida: misma respuesta.
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear invitación (solo admin)
// @Tags         invitations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvitationRequest  true  "Email y rol"
// @Success      201   {object}  dto.InvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/invitations [post]
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	id := GetIdentity(c)
	if id == nil {
		return writeError(c, h.log, domain.ErrUnauthorized)
	}
	var in dto.CreateInvitationRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), id.OrgID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Accept godoc
// @Summary      Aceptar invitación (autenticado)
// @Tags         invitations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AcceptInvitationRequest  true  "Código de invitación"
// @Success      200   {object}  dto.AcceptInvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invitations/accept [post]
//
// No pasa por RequireRoles: quien acepta puede no tener membresía todavía,
// o estar entrando a una segunda organización. Solo exige usuario
// aprovisionado.
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	externalID := GetExternalID(c)
	user, err := h.userRepo.GetByExternalID(c.UserContext(), externalID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if user == nil {
		return writeError(c, h.log, domain.ErrUnauthorized)
	}

	var in dto.AcceptInvitationRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Accept(c.UserContext(), user.ID, user.Email, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
