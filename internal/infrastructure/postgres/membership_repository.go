package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	db Querier
}

// NewMembershipRepository construye el adaptador de persistencia para membresías.
func NewMembershipRepository(db Querier) *MembershipRepo {
	return &MembershipRepo{db: db}
}

// Create persiste una membresía. (org_id, user_id) es único: un usuario tiene
// a lo sumo un rol por organización; el duplicado se mapea a ErrDuplicate.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (org_id, user_id, role_key)
		VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, m.OrgID, m.UserID, m.RoleKey)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByOrgAndUser devuelve la membresía o nil si no existe.
func (r *MembershipRepo) GetByOrgAndUser(ctx context.Context, orgID, userID string) (*entity.Membership, error) {
	query := `SELECT org_id, user_id, role_key FROM memberships WHERE org_id = $1 AND user_id = $2`
	var m entity.Membership
	err := r.db.QueryRow(ctx, query, orgID, userID).Scan(&m.OrgID, &m.UserID, &m.RoleKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// ResolveByExternalID join users → memberships → organizations por el
// identificador externo del principal. Nil cuando no hay fila (usuario
// inexistente o sin membresía; el resolver distingue los dos casos).
// Con más de una membresía gana la organización más antigua, el mismo
// orden determinista que usa el aprovisionamiento.
func (r *MembershipRepo) ResolveByExternalID(ctx context.Context, externalID string) (*repository.ResolvedIdentity, error) {
	query := `
		SELECT u.id, u.email, u.display_name, u.dark_mode, o.id, o.name, m.role_key
		FROM users u
		JOIN memberships m ON m.user_id = u.id
		JOIN organizations o ON o.id = m.org_id
		WHERE u.external_id = $1
		ORDER BY o.created_at, o.id
		LIMIT 1`
	var ri repository.ResolvedIdentity
	err := r.db.QueryRow(ctx, query, externalID).Scan(
		&ri.UserID, &ri.Email, &ri.DisplayName, &ri.DarkMode, &ri.OrgID, &ri.OrgName, &ri.RoleKey,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return &ri, nil
}
