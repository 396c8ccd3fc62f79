package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest alta de entrada en el ledger. Qty es un decimal con
// signo (NUMERIC 18,6); UnitCost es opcional.
type RegisterMovementRequest struct {
	ItemID      string           `json:"item_id" validate:"required,uuid4"`
	WarehouseID string           `json:"warehouse_id" validate:"required,uuid4"`
	BinID       *string          `json:"bin_id" validate:"omitempty,uuid4"`
	ProjectID   *string          `json:"project_id" validate:"omitempty,uuid4"`
	Qty         decimal.Decimal  `json:"qty"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
	Type        string           `json:"mtype" validate:"required"`
	Ref         *string          `json:"ref"`
	MovedAt     *time.Time       `json:"moved_at"`
}

// MovementResponse entrada del ledger.
type MovementResponse struct {
	ID          string           `json:"id"`
	ItemID      string           `json:"item_id"`
	WarehouseID string           `json:"warehouse_id"`
	BinID       *string          `json:"bin_id,omitempty"`
	ProjectID   *string          `json:"project_id,omitempty"`
	Qty         decimal.Decimal  `json:"qty"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	Type        string           `json:"mtype"`
	Ref         *string          `json:"ref,omitempty"`
	MovedAt     time.Time        `json:"moved_at"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ListMovementsRequest filtros de listado del ledger.
type ListMovementsRequest struct {
	ItemID      string     `query:"item_id"`
	WarehouseID string     `query:"warehouse_id"`
	ProjectID   string     `query:"project_id"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
	PageRequest
}

// MovementListResponse listado paginado del ledger.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
