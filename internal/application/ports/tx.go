// Package ports contratos transversales de la capa de aplicación.
package ports

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de las escrituras
// multi-fila: el aprovisionamiento (org + user + membership) y la aceptación
// de invitaciones (claim + membership) corren completas o no corren.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		invitationRepo repository.InvitationRepository,
	) error) error
}

// InvitationMailer envío opcional del código de invitación por correo.
type InvitationMailer interface {
	SendInvitation(toEmail, orgName, roleKey, inviteCode string) error
}
