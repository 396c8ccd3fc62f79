package repository

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	// UpdateDarkMode actualiza la preferencia de tema del usuario.
	UpdateDarkMode(ctx context.Context, userID string, darkMode bool) error
}
