package http

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/provisioning"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// PayloadVerifier valida la firma del webhook sobre los bytes crudos del body.
type PayloadVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// WebhookHandler recibe los eventos firmados del proveedor de identidad.
type WebhookHandler struct {
	verifier PayloadVerifier
	uc       *provisioning.UseCase
	log      *logger.Logger
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(verifier PayloadVerifier, uc *provisioning.UseCase, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, uc: uc, log: log}
}

// HandleProvisioning godoc
// @Summary      Webhook de aprovisionamiento de usuarios
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/webhooks/provisioning [post]
//
// La firma se verifica ANTES de parsear: un payload no verificable o
// malformado responde 400 sin efectos secundarios. Un fallo de persistencia
// responde 500 para que el proveedor reintente la entrega.
func (h *WebhookHandler) HandleProvisioning(c *fiber.Ctx) error {
	payload := c.Body()

	headers := make(http.Header)
	for _, k := range []string{"svix-id", "svix-timestamp", "svix-signature"} {
		if v := c.Get(k); v != "" {
			headers.Set(k, v)
		}
	}
	if err := h.verifier.Verify(payload, headers); err != nil {
		h.log.Warn().Err(err).Msg("firma de webhook inválida")
		provisioningEventsTotal.WithLabelValues("unknown", "bad_signature").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "firma inválida"})
	}

	var evt dto.UserCreatedEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		provisioningEventsTotal.WithLabelValues("unknown", "bad_payload").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "payload ilegible"})
	}

	// Otros tipos de evento se reconocen y descartan con 200 para que el
	// proveedor no los reintente.
	if evt.Type != "user.created" {
		h.log.Debug().Str("type", evt.Type).Msg("evento de webhook ignorado")
		provisioningEventsTotal.WithLabelValues(evt.Type, "ignored").Inc()
		return c.JSON(dto.SuccessResponse{Success: true})
	}

	if err := h.uc.HandleUserCreated(c.UserContext(), evt); err != nil {
		provisioningEventsTotal.WithLabelValues(evt.Type, "error").Inc()
		return writeError(c, h.log, err)
	}
	provisioningEventsTotal.WithLabelValues(evt.Type, "processed").Inc()
	return c.JSON(dto.SuccessResponse{Success: true})
}
