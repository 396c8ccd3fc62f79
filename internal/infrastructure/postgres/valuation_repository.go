package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

var _ repository.ValuationRepository = (*ValuationRepo)(nil)

// ValuationRepo consultas de solo lectura sobre las vistas de valorización
// (creadas por migración; mismas definiciones que alimentan los reportes).
type ValuationRepo struct {
	db Querier
}

// NewValuationRepository construye el adaptador de valorización.
func NewValuationRepository(db Querier) *ValuationRepo {
	return &ValuationRepo{db: db}
}

// Summary lee la vista global. La vista agrega sin GROUP BY, así que siempre
// devuelve una fila; con ledger vacío SUM es NULL y se coalesce a cero.
func (r *ValuationRepo) Summary(ctx context.Context) (*repository.ValuationSummary, error) {
	const query = `
		SELECT COALESCE(total_value, 0), unique_items, total_movements
		FROM valuation_summary`
	var s repository.ValuationSummary
	err := r.db.QueryRow(ctx, query).Scan(&s.TotalValue, &s.UniqueItems, &s.TotalMovements)
	if err != nil {
		return nil, fmt.Errorf("valuation summary: %w", err)
	}
	return &s, nil
}

// ByProject lee la vista por proyecto. La vista parte de projects con LEFT JOIN,
// de modo que cero filas significa proyecto inexistente (nil); un proyecto sin
// movimientos calificantes sale con valor e item_count en cero.
func (r *ValuationRepo) ByProject(ctx context.Context, projectID string) (*repository.ProjectValuation, error) {
	const query = `
		SELECT project_id, code, name, project_value, item_count
		FROM valuation_by_project
		WHERE project_id = $1`
	var p repository.ProjectValuation
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&p.ProjectID, &p.Code, &p.Name, &p.ProjectValue, &p.ItemCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("valuation by project: %w", err)
	}
	return &p, nil
}

// AllProjects todas las filas de la vista por proyecto (reportes).
func (r *ValuationRepo) AllProjects(ctx context.Context) ([]*repository.ProjectValuation, error) {
	const query = `
		SELECT project_id, code, name, project_value, item_count
		FROM valuation_by_project
		ORDER BY code`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("valuation all projects: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProjectValuation
	for rows.Next() {
		var p repository.ProjectValuation
		if err := rows.Scan(&p.ProjectID, &p.Code, &p.Name, &p.ProjectValue, &p.ItemCount); err != nil {
			return nil, fmt.Errorf("scan project valuation: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
