package provisioning_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/provisioning"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
	"github.com/mdmgroup/inventory-api/pkg/config"
	"github.com/mdmgroup/inventory-api/pkg/logger"
)

const defaultOrg = "MDM Group Inc."

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users       []*entity.User
	orgs        []*entity.Organization
	memberships []*entity.Membership
	invitations []*entity.Invitation
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range r.s.users {
		if e.ExternalID == u.ExternalID {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ExternalID == externalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateDarkMode(context.Context, string, bool) error { return nil }

type memOrgRepo struct{ s *memStore }

func (r *memOrgRepo) Create(_ context.Context, org *entity.Organization) error {
	cp := *org
	r.s.orgs = append(r.s.orgs, &cp)
	return nil
}

func (r *memOrgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	for _, o := range r.s.orgs {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOrgRepo) FirstByCreation(_ context.Context) (*entity.Organization, error) {
	var first *entity.Organization
	for _, o := range r.s.orgs {
		if first == nil || o.CreatedAt.Before(first.CreatedAt) {
			first = o
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

type memMembershipRepo struct{ s *memStore }

func (r *memMembershipRepo) Create(_ context.Context, m *entity.Membership) error {
	for _, e := range r.s.memberships {
		if e.OrgID == m.OrgID && e.UserID == m.UserID {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.s.memberships = append(r.s.memberships, &cp)
	return nil
}

func (r *memMembershipRepo) GetByOrgAndUser(_ context.Context, orgID, userID string) (*entity.Membership, error) {
	for _, m := range r.s.memberships {
		if m.OrgID == orgID && m.UserID == userID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMembershipRepo) ResolveByExternalID(context.Context, string) (*repository.ResolvedIdentity, error) {
	return nil, nil
}

type memInvRepo struct{ s *memStore }

func (r *memInvRepo) Create(_ context.Context, inv *entity.Invitation) error {
	cp := *inv
	r.s.invitations = append(r.s.invitations, &cp)
	return nil
}

func (r *memInvRepo) FindValid(_ context.Context, email, code string) (*entity.Invitation, error) {
	for _, inv := range r.s.invitations {
		if inv.Email == email && inv.InviteCode == code && !inv.Used() {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInvRepo) FindValidByEmail(_ context.Context, email string) (*entity.Invitation, error) {
	for _, inv := range r.s.invitations {
		if inv.Email == email && !inv.Used() {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memInvRepo) Claim(_ context.Context, email, code string) (*entity.Invitation, error) {
	for _, inv := range r.s.invitations {
		if inv.Email == email && inv.InviteCode == code && !inv.Used() {
			now := time.Now()
			inv.UsedAt = &now
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

type memTxRunner struct{ s *memStore }

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	repository.OrganizationRepository,
	repository.UserRepository,
	repository.MembershipRepository,
	repository.InvitationRepository,
) error) error {
	return fn(&memOrgRepo{tr.s}, &memUserRepo{tr.s}, &memMembershipRepo{tr.s}, &memInvRepo{tr.s})
}

func newUseCase(s *memStore) *provisioning.UseCase {
	log := logger.New(config.AppConfig{Env: config.EnvDevelopment, LogLevel: "error"})
	return provisioning.NewUseCase(&memTxRunner{s}, defaultOrg, log)
}

func userCreated(externalID, email string) dto.UserCreatedEvent {
	evt := dto.UserCreatedEvent{Type: "user.created"}
	evt.Data.ID = externalID
	if email != "" {
		evt.Data.EmailAddresses = []dto.EmailAddress{{EmailAddress: email}}
	}
	return evt
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Primer signup sin invitación: se crea la organización por defecto y el
// usuario entra como admin.
func TestHandleUserCreated_BootstrapPrimerUsuario(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	err := uc.HandleUserCreated(context.Background(), userCreated("ext-1", "founder@mdm.test"))
	require.NoError(t, err)

	require.Len(t, s.orgs, 1)
	assert.Equal(t, defaultOrg, s.orgs[0].Name)
	require.Len(t, s.users, 1)
	require.Len(t, s.memberships, 1)
	assert.Equal(t, entity.RoleAdmin, s.memberships[0].RoleKey)
	assert.Equal(t, s.orgs[0].ID, s.memberships[0].OrgID)
}

// Con una organización existente, el signup sin invitación se adjunta a la
// más antigua de forma determinista.
func TestHandleUserCreated_SegundoUsuarioSeAdjuntaALaMasAntigua(t *testing.T) {
	s := &memStore{orgs: []*entity.Organization{
		{ID: "org-new", Name: "Nueva", CreatedAt: time.Now()},
		{ID: "org-old", Name: "Vieja", CreatedAt: time.Now().Add(-24 * time.Hour)},
	}}
	uc := newUseCase(s)

	err := uc.HandleUserCreated(context.Background(), userCreated("ext-2", "segundo@mdm.test"))
	require.NoError(t, err)

	require.Len(t, s.memberships, 1)
	assert.Equal(t, "org-old", s.memberships[0].OrgID)
	assert.Len(t, s.orgs, 2, "no se crean organizaciones nuevas si ya existe alguna")
}

// Una invitación pendiente para el email del evento gana sobre el bootstrap:
// fija organización y rol, y queda consumida.
func TestHandleUserCreated_InvitacionResuelveTenantYRol(t *testing.T) {
	s := &memStore{
		orgs: []*entity.Organization{{ID: "org1", Name: defaultOrg, CreatedAt: time.Now()}},
		invitations: []*entity.Invitation{{
			ID: "inv1", OrgID: "org2", Email: "invitada@mdm.test",
			RoleKey: entity.RoleAuditor, InviteCode: "code-1", CreatedAt: time.Now(),
		}},
	}
	uc := newUseCase(s)

	err := uc.HandleUserCreated(context.Background(), userCreated("ext-3", "invitada@mdm.test"))
	require.NoError(t, err)

	require.Len(t, s.memberships, 1)
	assert.Equal(t, "org2", s.memberships[0].OrgID)
	assert.Equal(t, entity.RoleAuditor, s.memberships[0].RoleKey)
	assert.True(t, s.invitations[0].Used(), "la invitación queda consumida por el aprovisionamiento")
}

func TestHandleUserCreated_SinEmail_Rechazado(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	err := uc.HandleUserCreated(context.Background(), userCreated("ext-4", ""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.users)
	assert.Empty(t, s.orgs)
}

func TestHandleUserCreated_SinIDExterno_Rechazado(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	err := uc.HandleUserCreated(context.Background(), userCreated("", "alguien@mdm.test"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El proveedor reintenta entregas: un usuario ya aprovisionado es un no-op
// exitoso, sin membresías duplicadas.
func TestHandleUserCreated_ReintentoIdempotente(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	evt := userCreated("ext-5", "retry@mdm.test")
	require.NoError(t, uc.HandleUserCreated(context.Background(), evt))
	require.NoError(t, uc.HandleUserCreated(context.Background(), evt))

	assert.Len(t, s.users, 1)
	assert.Len(t, s.memberships, 1)
	assert.Len(t, s.orgs, 1)
}

// DisplayName solo se arma cuando el evento trae nombre y apellido.
func TestHandleUserCreated_DisplayNameSoloConAmbosNombres(t *testing.T) {
	s := &memStore{}
	uc := newUseCase(s)

	first, last := "Ana", "Rojas"
	evt := userCreated("ext-6", "ana@mdm.test")
	evt.Data.FirstName = &first
	evt.Data.LastName = &last
	require.NoError(t, uc.HandleUserCreated(context.Background(), evt))
	require.NotNil(t, s.users[0].DisplayName)
	assert.Equal(t, "Ana Rojas", *s.users[0].DisplayName)

	soloNombre := userCreated("ext-7", "solo@mdm.test")
	soloNombre.Data.FirstName = &first
	require.NoError(t, uc.HandleUserCreated(context.Background(), soloNombre))
	assert.Nil(t, s.users[1].DisplayName)
}
