// Package provisioning reacciona a los eventos "user.created" del proveedor
// de identidad: crea el usuario interno, resuelve su organización destino y
// otorga la membresía inicial, todo en una transacción.
package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/ports"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

// UseCase aprovisionamiento de usuarios.
type UseCase struct {
	txRunner       ports.TxRunner
	defaultOrgName string
	log            *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ports.TxRunner, defaultOrgName string, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, defaultOrgName: defaultOrgName, log: log}
}

// HandleUserCreated procesa un evento verificado de usuario creado.
//
// Resolución de tenant: una invitación sin consumir para el email del evento
// gana (se reclama atómicamente y fija organización y rol); sin invitación
// aplica el bootstrap single-tenant: cero organizaciones ⇒ se crea la default
// y el usuario entra como admin; si ya existe alguna, entra como admin en la
// más antigua (orden determinista por created_at).
//
// Idempotencia: el proveedor reintenta eventos fallidos, así que un usuario
// ya existente para el mismo id externo es un no-op exitoso, no una violación
// de unicidad. Usuario y membresía se insertan en la misma transacción: el
// estado parcial usuario-sin-membresía nunca es observable por el resolver.
func (uc *UseCase) HandleUserCreated(ctx context.Context, evt dto.UserCreatedEvent) error {
	email := evt.Data.PrimaryEmail()
	if email == "" {
		return domain.ErrInvalidInput
	}
	if evt.Data.ID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
		membershipRepo repository.MembershipRepository,
		invitationRepo repository.InvitationRepository,
	) error {
		existing, err := userRepo.GetByExternalID(ctx, evt.Data.ID)
		if err != nil {
			return fmt.Errorf("buscar usuario existente: %w", err)
		}
		if existing != nil {
			uc.log.Info().Str("external_id", evt.Data.ID).Msg("evento reintentado, usuario ya aprovisionado")
			return nil
		}

		orgID, roleKey, err := uc.resolveTenant(ctx, email, orgRepo, invitationRepo)
		if err != nil {
			return err
		}

		user := &entity.User{
			ID:          uuid.New().String(),
			ExternalID:  evt.Data.ID,
			Email:       email,
			DisplayName: displayName(evt.Data.FirstName, evt.Data.LastName),
			CreatedAt:   time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			// Carrera entre dos entregas del mismo evento: el índice único
			// sobre external_id la convierte en no-op exitoso.
			if errors.Is(err, domain.ErrDuplicate) {
				uc.log.Info().Str("external_id", evt.Data.ID).Msg("usuario creado por entrega concurrente")
				return nil
			}
			return fmt.Errorf("crear usuario: %w", err)
		}

		if err := membershipRepo.Create(ctx, &entity.Membership{
			OrgID:   orgID,
			UserID:  user.ID,
			RoleKey: roleKey,
		}); err != nil {
			return fmt.Errorf("crear membresía: %w", err)
		}

		uc.log.Info().
			Str("email", email).
			Str("org_id", orgID).
			Str("role", roleKey).
			Msg("usuario aprovisionado")
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// resolveTenant determina la organización y el rol destino del nuevo usuario.
func (uc *UseCase) resolveTenant(
	ctx context.Context,
	email string,
	orgRepo repository.OrganizationRepository,
	invitationRepo repository.InvitationRepository,
) (orgID, roleKey string, err error) {
	// Invitación primero: destino explícito de tenant. El claim dentro de la
	// transacción garantiza consumo único también frente al endpoint de accept.
	inv, err := invitationRepo.FindValidByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("buscar invitación por email: %w", err)
	}
	if inv != nil {
		claimed, err := invitationRepo.Claim(ctx, inv.Email, inv.InviteCode)
		if err != nil {
			return "", "", fmt.Errorf("claim de invitación: %w", err)
		}
		if claimed != nil {
			return claimed.OrgID, claimed.RoleKey, nil
		}
		// Alguien la consumió entre la búsqueda y el claim: cae al bootstrap.
	}

	first, err := orgRepo.FirstByCreation(ctx)
	if err != nil {
		return "", "", fmt.Errorf("buscar primera organización: %w", err)
	}
	if first != nil {
		return first.ID, entity.RoleAdmin, nil
	}

	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      uc.defaultOrgName,
		CreatedAt: time.Now(),
	}
	if err := orgRepo.Create(ctx, org); err != nil {
		return "", "", fmt.Errorf("crear organización por defecto: %w", err)
	}
	uc.log.Info().Str("org", org.Name).Msg("organización por defecto creada en el primer signup")
	return org.ID, entity.RoleAdmin, nil
}

// displayName arma "First Last" solo cuando el evento trae ambos nombres.
func displayName(first, last *string) *string {
	if first == nil || last == nil || *first == "" || *last == "" {
		return nil
	}
	s := *first + " " + *last
	return &s
}
