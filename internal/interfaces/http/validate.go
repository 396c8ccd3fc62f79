package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/domain"
)

var validate = validator.New()

// parseBody decodifica y valida el body JSON. Los fallos suben como
// domain.ErrInvalidInput para que writeError los traduzca a 400.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: body ilegible: %v", domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
