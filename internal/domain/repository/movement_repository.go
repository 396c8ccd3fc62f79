package repository

import (
	"context"
	"time"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar el ledger.
type MovementFilter struct {
	ItemID      string
	WarehouseID string
	ProjectID   string
	From        *time.Time
	To          *time.Time
}

// MovementRepository define el puerto de persistencia del ledger de movimientos.
// El ledger es append-only: el puerto no ofrece update ni delete.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, f MovementFilter, limit, offset int) ([]*entity.Movement, error)
}
