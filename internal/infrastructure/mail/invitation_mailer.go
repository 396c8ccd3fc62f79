// Package mail envío de correos transaccionales vía SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mdmgroup/inventory-api/internal/application/ports"
	"github.com/mdmgroup/inventory-api/pkg/config"
)

// InvitationMailer implementa ports.InvitationMailer sobre gomail.
type InvitationMailer struct {
	cfg config.SMTPConfig
}

var _ ports.InvitationMailer = (*InvitationMailer)(nil)

// NewInvitationMailer constructor.
func NewInvitationMailer(cfg config.SMTPConfig) *InvitationMailer {
	return &InvitationMailer{cfg: cfg}
}

// SendInvitation envía el código de invitación al correo destino.
func (m *InvitationMailer) SendInvitation(toEmail, orgName, roleKey, inviteCode string) error {
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>You have been invited to %s</h3>
				<p>Role: <strong>%s</strong></p>
				<p>Your invitation code: <strong>%s</strong></p>
				<p>Sign up with this email address and enter the code to join.</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, orgName, roleKey, inviteCode)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Invitation to join %s", orgName))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar invitación: %w", err)
	}
	return nil
}
