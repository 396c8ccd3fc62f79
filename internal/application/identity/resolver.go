// Package identity resuelve el principal externo autenticado a la identidad
// interna (usuario, organización, rol) y aplica el gate de autorización.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// Identity identidad resuelta de un principal externo.
type Identity struct {
	UserID      string
	Email       string
	DisplayName *string
	DarkMode    bool
	OrgID       string
	OrgName     string
	RoleKey     string
}

// Resolver resuelve principals externos contra la DB. Solo lectura y sin
// caché: el rol puede cambiar entre peticiones, así que cada petición
// resuelve de nuevo.
type Resolver struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewResolver construye el resolver.
func NewResolver(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) *Resolver {
	return &Resolver{userRepo: userRepo, membershipRepo: membershipRepo}
}

// Resolve mapea el identificador externo a {usuario, organización, rol}.
// ErrNotFound si no hay usuario para el principal; ErrNoOrganizationAccess
// si el usuario existe pero no tiene membresía.
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*Identity, error) {
	if externalID == "" {
		return nil, domain.ErrUnauthorized
	}

	resolved, err := r.membershipRepo.ResolveByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("resolver identidad: %w", err)
	}
	if resolved == nil {
		// Distinguir "usuario inexistente" de "usuario sin membresía".
		user, err := r.userRepo.GetByExternalID(ctx, externalID)
		if err != nil {
			return nil, fmt.Errorf("buscar usuario por id externo: %w", err)
		}
		if user == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrNoOrganizationAccess
	}

	return &Identity{
		UserID:      resolved.UserID,
		Email:       resolved.Email,
		DisplayName: resolved.DisplayName,
		DarkMode:    resolved.DarkMode,
		OrgID:       resolved.OrgID,
		OrgName:     resolved.OrgName,
		RoleKey:     resolved.RoleKey,
	}, nil
}

// ForbiddenError error de autorización que conserva el conjunto requerido
// para diagnóstico. Envuelve domain.ErrForbidden.
type ForbiddenError struct {
	Role     string
	Required rbac.RoleSet
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("rol %q no permitido, se requiere uno de %v", e.Role, []string(e.Required))
}

// Unwrap permite errors.Is(err, domain.ErrForbidden).
func (e *ForbiddenError) Unwrap() error { return domain.ErrForbidden }

// Authorize gate de autorización: resuelve la identidad y verifica que el rol
// pertenezca al conjunto permitido. Chequeo plano, sin jerarquía: admin solo
// pasa si está listado. Cualquier fallo de resolución se colapsa a
// ErrUnauthorized; rol fuera del conjunto produce ForbiddenError.
func (r *Resolver) Authorize(ctx context.Context, externalID string, allowed rbac.RoleSet) (*Identity, error) {
	id, err := r.Resolve(ctx, externalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrNoOrganizationAccess),
			errors.Is(err, domain.ErrUnauthorized):
			return nil, domain.ErrUnauthorized
		default:
			// Fallos de infraestructura no se disfrazan de 401.
			return nil, err
		}
	}
	if !allowed.Contains(id.RoleKey) {
		return nil, &ForbiddenError{Role: id.RoleKey, Required: allowed}
	}
	return id, nil
}
