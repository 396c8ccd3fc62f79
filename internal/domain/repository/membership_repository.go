package repository

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// ResolvedIdentity resultado del join users → memberships → organizations
// para un principal externo autenticado.
type ResolvedIdentity struct {
	UserID      string
	Email       string
	DisplayName *string
	DarkMode    bool
	OrgID       string
	OrgName     string
	RoleKey     string
}

// MembershipRepository define el puerto de persistencia para Membership (DIP).
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	// GetByOrgAndUser devuelve la membresía o nil si no existe.
	GetByOrgAndUser(ctx context.Context, orgID, userID string) (*entity.Membership, error)
	// ResolveByExternalID resuelve el principal externo a identidad interna.
	// Devuelve nil si el usuario existe pero no tiene membresía; el caso
	// "usuario inexistente" lo distingue el resolver consultando UserRepository.
	ResolveByExternalID(ctx context.Context, externalID string) (*ResolvedIdentity, error)
}
