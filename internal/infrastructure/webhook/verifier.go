// Package webhook verificación de firmas de webhooks entrantes (formato svix).
package webhook

import (
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// Verifier valida la firma HMAC de los webhooks del proveedor de identidad.
// El payload debe validarse sobre los bytes crudos del body, antes de
// cualquier parseo JSON.
type Verifier struct {
	wh *svix.Webhook
}

// NewVerifier construye el verificador a partir del secreto compartido
// ("whsec_<base64>").
func NewVerifier(signingSecret string) (*Verifier, error) {
	wh, err := svix.NewWebhook(signingSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook: secreto inválido: %w", err)
	}
	return &Verifier{wh: wh}, nil
}

// Verify valida firma y timestamp; devuelve error si la firma no coincide,
// faltan cabeceras o el mensaje está fuera de la ventana de tolerancia.
func (v *Verifier) Verify(payload []byte, headers http.Header) error {
	return v.wh.Verify(payload, headers)
}
