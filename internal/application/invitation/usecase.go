// Package invitation valida, crea y consume invitaciones.
package invitation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/ports"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// UseCase casos de uso de invitaciones.
type UseCase struct {
	invRepo  repository.InvitationRepository
	orgRepo  repository.OrganizationRepository
	txRunner ports.TxRunner
	mailer   ports.InvitationMailer // nil si no hay SMTP configurado
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. mailer puede ser nil.
func NewUseCase(
	invRepo repository.InvitationRepository,
	orgRepo repository.OrganizationRepository,
	txRunner ports.TxRunner,
	mailer ports.InvitationMailer,
	log *logger.Logger,
) *UseCase {
	return &UseCase{invRepo: invRepo, orgRepo: orgRepo, txRunner: txRunner, mailer: mailer, log: log}
}

// Verify valida el par (email, código) contra las invitaciones sin consumir.
// Cero filas (código inexistente, email distinto o ya usada) colapsan en el
// mismo ErrInvitationInvalid: el cliente no distingue el motivo. Solo lectura;
// la consumición es una operación aparte (Claim vía aceptación).
func (uc *UseCase) Verify(ctx context.Context, in dto.VerifyInvitationRequest) (*dto.VerifyInvitationResponse, error) {
	inv, err := uc.invRepo.FindValid(ctx, in.Email, in.InviteCode)
	if err != nil {
		return nil, fmt.Errorf("verificar invitación: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvitationInvalid
	}
	return &dto.VerifyInvitationResponse{OK: true, RoleKey: inv.RoleKey, OrgID: inv.OrgID}, nil
}

// Create crea una invitación para la organización del admin que la emite y,
// si hay SMTP configurado, envía el código por correo. El fallo del correo no
// revierte la invitación: se reporta en EmailSent.
func (uc *UseCase) Create(ctx context.Context, orgID string, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if !rbac.AllOperating.Contains(in.RoleKey) {
		return nil, domain.ErrInvalidInput
	}

	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("buscar organización: %w", err)
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	inv := &entity.Invitation{
		ID:         uuid.New().String(),
		OrgID:      orgID,
		Email:      in.Email,
		RoleKey:    in.RoleKey,
		InviteCode: uuid.New().String(),
		CreatedAt:  time.Now(),
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	sent := false
	if uc.mailer != nil {
		if err := uc.mailer.SendInvitation(inv.Email, org.Name, inv.RoleKey, inv.InviteCode); err != nil {
			uc.log.Warn().Err(err).Str("email", inv.Email).Msg("no se pudo enviar el correo de invitación")
		} else {
			sent = true
		}
	}

	return &dto.InvitationResponse{
		ID:         inv.ID,
		OrgID:      inv.OrgID,
		Email:      inv.Email,
		RoleKey:    inv.RoleKey,
		InviteCode: inv.InviteCode,
		EmailSent:  sent,
		CreatedAt:  inv.CreatedAt,
	}, nil
}

// Accept consume la invitación y otorga la membresía en UNA transacción.
// El claim es un UPDATE condicional sobre used_at: de dos aceptaciones
// concurrentes del mismo código, exactamente una gana; la otra recibe
// ErrInvitationInvalid. Si el usuario ya tiene membresía en la organización
// de la invitación, la transacción se revierte con ErrConflict (el código
// queda sin consumir).
func (uc *UseCase) Accept(ctx context.Context, userID, email string, in dto.AcceptInvitationRequest) (*dto.AcceptInvitationResponse, error) {
	var out dto.AcceptInvitationResponse

	err := uc.txRunner.Run(ctx, func(
		_ repository.OrganizationRepository,
		_ repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		invitationRepo repository.InvitationRepository,
	) error {
		inv, err := invitationRepo.Claim(ctx, email, in.InviteCode)
		if err != nil {
			return fmt.Errorf("claim de invitación: %w", err)
		}
		if inv == nil {
			return domain.ErrInvitationInvalid
		}

		existing, err := membershipRepo.GetByOrgAndUser(ctx, inv.OrgID, userID)
		if err != nil {
			return fmt.Errorf("buscar membresía existente: %w", err)
		}
		if existing != nil {
			return domain.ErrConflict
		}

		if err := membershipRepo.Create(ctx, &entity.Membership{
			OrgID:   inv.OrgID,
			UserID:  userID,
			RoleKey: inv.RoleKey,
		}); err != nil {
			return fmt.Errorf("crear membresía: %w", err)
		}

		out = dto.AcceptInvitationResponse{OrgID: inv.OrgID, RoleKey: inv.RoleKey}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
