package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ValuationSummary agregado global sobre el ledger: SUM(qty * COALESCE(unit_cost, 0)),
// COUNT(DISTINCT item_id) y COUNT(*) considerando solo filas con qty > 0.
// Modela "valor de lo recibido/ajustado hacia adentro", no existencias netas.
type ValuationSummary struct {
	TotalValue     decimal.Decimal
	UniqueItems    int64
	TotalMovements int64
}

// ProjectValuation valorización de un proyecto (LEFT JOIN sobre movimientos qty > 0).
type ProjectValuation struct {
	ProjectID    string
	Code         string
	Name         string
	ProjectValue decimal.Decimal
	ItemCount    int64
}

// ValuationRepository consultas de solo lectura sobre las vistas de valorización.
type ValuationRepository interface {
	// Summary devuelve el agregado global; con ledger vacío devuelve ceros, nunca error.
	Summary(ctx context.Context) (*ValuationSummary, error)
	// ByProject devuelve la fila del proyecto o nil si el proyecto no existe.
	// Un proyecto existente sin movimientos calificantes devuelve ceros.
	ByProject(ctx context.Context, projectID string) (*ProjectValuation, error)
	// AllProjects todas las filas de la vista por proyecto (reportes).
	AllProjects(ctx context.Context) ([]*ProjectValuation, error)
}
