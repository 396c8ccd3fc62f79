// Package valuation consultas de valorización de inventario sobre el ledger.
package valuation

import (
	"context"
	"fmt"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// UseCase agregados de valorización. Solo lectura; idempotente entre
// peticiones sin escrituras intermedias.
type UseCase struct {
	repo repository.ValuationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ValuationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Summary agregado global: SUM(qty * COALESCE(unit_cost, 0)),
// COUNT(DISTINCT item_id) y COUNT(*) sobre movimientos con qty > 0.
// Las salidas (qty <= 0) no afectan ni la suma ni los conteos: el agregado
// modela valor recibido, no existencias netas. Ledger vacío devuelve ceros.
func (uc *UseCase) Summary(ctx context.Context) (*dto.ValuationSummaryResponse, error) {
	s, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("valorización global: %w", err)
	}
	return &dto.ValuationSummaryResponse{
		TotalValue:     s.TotalValue,
		UniqueItems:    s.UniqueItems,
		TotalMovements: s.TotalMovements,
	}, nil
}

// ByProject valorización de un proyecto. Proyecto inexistente ⇒ ErrNotFound;
// proyecto sin movimientos calificantes ⇒ fila en ceros.
func (uc *UseCase) ByProject(ctx context.Context, projectID string) (*dto.ProjectValuationResponse, error) {
	row, err := uc.repo.ByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("valorización de proyecto: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProjectValuationResponse{
		ProjectID:    row.ProjectID,
		Code:         row.Code,
		Name:         row.Name,
		ProjectValue: row.ProjectValue,
		ItemCount:    row.ItemCount,
	}, nil
}
