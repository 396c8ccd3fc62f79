package dto

import "github.com/shopspring/decimal"

// ValuationSummaryResponse agregado global de valorización.
type ValuationSummaryResponse struct {
	TotalValue     decimal.Decimal `json:"total_value"`
	UniqueItems    int64           `json:"unique_items"`
	TotalMovements int64           `json:"total_movements"`
}

// ProjectValuationResponse valorización de un proyecto.
type ProjectValuationResponse struct {
	ProjectID    string          `json:"project_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ProjectValue decimal.Decimal `json:"project_value"`
	ItemCount    int64           `json:"item_count"`
}
