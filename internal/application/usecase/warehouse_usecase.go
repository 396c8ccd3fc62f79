package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso de bodegas y bins.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega; código duplicado sube como domain.ErrDuplicate.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w), nil
}

// GetByID obtiene una bodega; nil si no existe.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return toWarehouseResponse(w), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateBin crea un bin dentro de una bodega existente. El código de bin es
// único por bodega (duplicado ⇒ domain.ErrDuplicate).
func (uc *WarehouseUseCase) CreateBin(ctx context.Context, warehouseID string, in dto.CreateBinRequest) (*dto.BinResponse, error) {
	w, err := uc.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	b := &entity.Bin{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Code:        in.Code,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateBin(ctx, b); err != nil {
		return nil, err
	}
	return toBinResponse(b), nil
}

// ListBins lista los bins de una bodega.
func (uc *WarehouseUseCase) ListBins(ctx context.Context, warehouseID string) ([]dto.BinResponse, error) {
	w, err := uc.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListBins(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	bins := make([]dto.BinResponse, 0, len(list))
	for _, b := range list {
		bins = append(bins, *toBinResponse(b))
	}
	return bins, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}

func toBinResponse(b *entity.Bin) *dto.BinResponse {
	if b == nil {
		return nil
	}
	return &dto.BinResponse{
		ID:          b.ID,
		WarehouseID: b.WarehouseID,
		Code:        b.Code,
		CreatedAt:   b.CreatedAt,
	}
}
