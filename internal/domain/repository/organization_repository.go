package repository

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	// FirstByCreation devuelve la organización más antigua (orden determinista
	// por created_at) o nil si no existe ninguna. Soporta el bootstrap
	// single-tenant del aprovisionamiento.
	FirstByCreation(ctx context.Context) (*entity.Organization, error)
}
