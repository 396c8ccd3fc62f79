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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. El índice único sobre external_id mapea
// la doble entrega del evento de aprovisionamiento a ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, external_id, email, display_name, dark_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.ExternalID, user.Email, user.DisplayName, user.DarkMode, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, external_id, email, display_name, dark_mode, created_at
		FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "get user by id")
}

// GetByExternalID obtiene un usuario por su identificador externo; nil si no existe.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	query := `
		SELECT id, external_id, email, display_name, dark_mode, created_at
		FROM users WHERE external_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, externalID), "get user by external id")
}

// UpdateDarkMode actualiza la preferencia de tema.
func (r *UserRepo) UpdateDarkMode(ctx context.Context, userID string, darkMode bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET dark_mode = $2 WHERE id = $1`, userID, darkMode)
	if err != nil {
		return fmt.Errorf("update dark_mode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.ExternalID, &u.Email, &u.DisplayName, &u.DarkMode, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
