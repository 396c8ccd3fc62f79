package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/valuation"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// ValuationHandler consultas de valorización de inventario.
type ValuationHandler struct {
	uc  *valuation.UseCase
	log *logger.Logger
}

// NewValuationHandler construye el handler.
func NewValuationHandler(uc *valuation.UseCase, log *logger.Logger) *ValuationHandler {
	return &ValuationHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Valorización global del inventario
// @Tags         valuation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationSummaryResponse
// @Router       /api/valuation/summary [get]
func (h *ValuationHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ByProject godoc
// @Summary      Valorización de un proyecto
// @Tags         valuation
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectValuationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/valuation/project/{id} [get]
func (h *ValuationHandler) ByProject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, h.log, domain.ErrInvalidInput)
	}
	out, err := h.uc.ByProject(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
