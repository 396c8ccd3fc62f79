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

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	db Querier
}

// NewInvitationRepository construye el adaptador de persistencia para invitaciones.
func NewInvitationRepository(db Querier) *InvitationRepo {
	return &InvitationRepo{db: db}
}

const invitationColumns = `id, org_id, email, role_key, invite_code, used_at, created_at`

// Create persiste una invitación. Código duplicado se mapea a ErrDuplicate.
func (r *InvitationRepo) Create(ctx context.Context, inv *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, org_id, email, role_key, invite_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.OrgID, inv.Email, inv.RoleKey, inv.InviteCode, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// FindValid busca por código Y email exactos con used_at sin fijar.
// El código es único a nivel global, así que el filtro por email es defensa
// redundante, no el discriminador. Cero filas ⇒ nil.
func (r *InvitationRepo) FindValid(ctx context.Context, email, code string) (*entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE invite_code = $1 AND email = $2 AND used_at IS NULL
		LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, code, email), "find valid invitation")
}

// FindValidByEmail busca una invitación sin consumir para el email (la más
// antigua primero, determinista). Nil si no hay.
func (r *InvitationRepo) FindValidByEmail(ctx context.Context, email string) (*entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE email = $1 AND used_at IS NULL
		ORDER BY created_at, id
		LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, email), "find invitation by email")
}

// Claim consumo atómico: UPDATE condicional sobre used_at (compare-and-swap).
// De dos claims concurrentes del mismo código exactamente uno recibe la fila;
// el otro obtiene nil. Cierra la carrera de la doble verificación.
func (r *InvitationRepo) Claim(ctx context.Context, email, code string) (*entity.Invitation, error) {
	query := `
		UPDATE invitations
		SET used_at = now()
		WHERE invite_code = $1 AND email = $2 AND used_at IS NULL
		RETURNING ` + invitationColumns
	return r.scanOne(r.db.QueryRow(ctx, query, code, email), "claim invitation")
}

func (r *InvitationRepo) scanOne(row pgx.Row, op string) (*entity.Invitation, error) {
	var inv entity.Invitation
	err := row.Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.RoleKey, &inv.InviteCode, &inv.UsedAt, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}
