package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de artículos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. SKU duplicado sube como domain.ErrDuplicate.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	uom := in.UOM
	if uom == "" {
		uom = "ea"
	}
	item := &entity.Item{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Description: in.Description,
		UOM:         uom,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo; nil si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista artículos con paginación.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		SKU:         i.SKU,
		Description: i.Description,
		UOM:         i.UOM,
		CreatedAt:   i.CreatedAt,
	}
}
