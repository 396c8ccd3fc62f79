package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmgroup/inventory-api/internal/application/identity"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byExternal map[string]*entity.User
	err        error
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byExternal[externalID], nil
}
func (f *fakeUserRepo) UpdateDarkMode(context.Context, string, bool) error { return nil }

type fakeMembershipRepo struct {
	resolved map[string]*repository.ResolvedIdentity
	err      error
}

func (f *fakeMembershipRepo) Create(context.Context, *entity.Membership) error { return nil }
func (f *fakeMembershipRepo) GetByOrgAndUser(context.Context, string, string) (*entity.Membership, error) {
	return nil, nil
}
func (f *fakeMembershipRepo) ResolveByExternalID(_ context.Context, externalID string) (*repository.ResolvedIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resolved[externalID], nil
}

func resolverWith(resolved *repository.ResolvedIdentity, user *entity.User) *identity.Resolver {
	users := &fakeUserRepo{byExternal: map[string]*entity.User{}}
	memberships := &fakeMembershipRepo{resolved: map[string]*repository.ResolvedIdentity{}}
	if user != nil {
		users.byExternal[user.ExternalID] = user
	}
	if resolved != nil {
		memberships.resolved["ext-1"] = resolved
	}
	return identity.NewResolver(users, memberships)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_PrincipalConMembresia(t *testing.T) {
	r := resolverWith(&repository.ResolvedIdentity{
		UserID:  "u1",
		Email:   "ana@mdm.test",
		OrgID:   "org1",
		OrgName: "MDM Group Inc.",
		RoleKey: entity.RoleBuyer,
	}, nil)

	id, err := r.Resolve(context.Background(), "ext-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "org1", id.OrgID)
	assert.Equal(t, entity.RoleBuyer, id.RoleKey)
}

func TestResolve_UsuarioInexistente_ErrNotFound(t *testing.T) {
	r := resolverWith(nil, nil)

	_, err := r.Resolve(context.Background(), "ext-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_UsuarioSinMembresia_ErrNoOrganizationAccess(t *testing.T) {
	// El usuario existe pero no tiene fila en memberships.
	r := resolverWith(nil, &entity.User{ID: "u1", ExternalID: "ext-1", Email: "ana@mdm.test"})

	_, err := r.Resolve(context.Background(), "ext-1")
	assert.ErrorIs(t, err, domain.ErrNoOrganizationAccess)
}

func TestResolve_IDExternoVacio_ErrUnauthorized(t *testing.T) {
	r := resolverWith(nil, nil)

	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_RolPermitido(t *testing.T) {
	r := resolverWith(&repository.ResolvedIdentity{
		UserID: "u1", OrgID: "org1", RoleKey: entity.RoleWarehouse,
	}, nil)

	id, err := r.Authorize(context.Background(), "ext-1", rbac.LedgerWrite)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWarehouse, id.RoleKey)
}

func TestAuthorize_RolFueraDelConjunto_Forbidden(t *testing.T) {
	r := resolverWith(&repository.ResolvedIdentity{
		UserID: "u1", OrgID: "org1", RoleKey: entity.RoleAuditor,
	}, nil)

	_, err := r.Authorize(context.Background(), "ext-1", rbac.LedgerWrite)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	var fe *identity.ForbiddenError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, entity.RoleAuditor, fe.Role)
}

func TestAuthorize_FallosDeIdentidad_ColapsanEnUnauthorized(t *testing.T) {
	// Usuario inexistente y usuario sin membresía producen el mismo 401:
	// el cliente no distingue entre ambos estados.
	sinUsuario := resolverWith(nil, nil)
	_, err := sinUsuario.Authorize(context.Background(), "ext-1", rbac.AllOperating)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	sinMembresia := resolverWith(nil, &entity.User{ID: "u1", ExternalID: "ext-1"})
	_, err = sinMembresia.Authorize(context.Background(), "ext-1", rbac.AllOperating)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_ErrorDeInfraestructura_NoSeDisfrazaDe401(t *testing.T) {
	boom := errors.New("conexión caída")
	r := identity.NewResolver(
		&fakeUserRepo{},
		&fakeMembershipRepo{err: boom},
	)

	_, err := r.Authorize(context.Background(), "ext-1", rbac.AllOperating)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, boom)
}
