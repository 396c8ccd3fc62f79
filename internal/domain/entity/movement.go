package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger.
const (
	MovementPOReceive     = "po_receive"
	MovementAdjustmentIn  = "adjustment_in"
	MovementAdjustmentOut = "adjustment_out"
	MovementSOIssue       = "so_issue"
	MovementTransferIn    = "transfer_in"
	MovementTransferOut   = "transfer_out"
)

// ValidMovementType indica si el tipo pertenece al enum del ledger.
func ValidMovementType(t string) bool {
	switch t {
	case MovementPOReceive, MovementAdjustmentIn, MovementAdjustmentOut,
		MovementSOIssue, MovementTransferIn, MovementTransferOut:
		return true
	}
	return false
}

// Movement entrada del ledger de inventario. Append-only: nunca se actualiza
// ni se borra. Es la única fuente de verdad para existencias y valorización;
// no existe ninguna columna mutable de "stock actual".
// Qty es NUMERIC(18,6) con signo; UnitCost puede ser nulo.
type Movement struct {
	ID          string
	ItemID      string
	WarehouseID string
	BinID       *string
	ProjectID   *string
	Qty         decimal.Decimal
	UnitCost    *decimal.Decimal
	Type        string
	Ref         *string
	MovedAt     time.Time
	CreatedAt   time.Time
}
