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

// MovementUseCase registro y consulta del ledger de movimientos.
type MovementUseCase struct {
	movRepo       repository.MovementRepository
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movRepo repository.MovementRepository,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, itemRepo: itemRepo, warehouseRepo: warehouseRepo}
}

// Register agrega una entrada al ledger. Valida tipo de movimiento y
// existencia de artículo y bodega; la cantidad no puede ser cero (el signo
// lo pone el tipo de operación que la originó). Nunca hay update ni delete.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Qty.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}

	movedAt := time.Now()
	if in.MovedAt != nil {
		movedAt = *in.MovedAt
	}

	m := &entity.Movement{
		ID:          uuid.New().String(),
		ItemID:      in.ItemID,
		WarehouseID: in.WarehouseID,
		BinID:       in.BinID,
		ProjectID:   in.ProjectID,
		Qty:         in.Qty,
		UnitCost:    in.UnitCost,
		Type:        in.Type,
		Ref:         in.Ref,
		MovedAt:     movedAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.movRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// List lista el ledger con filtros opcionales.
func (uc *MovementUseCase) List(ctx context.Context, in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	in.DefaultPage()
	f := repository.MovementFilter{
		ItemID:      in.ItemID,
		WarehouseID: in.WarehouseID,
		ProjectID:   in.ProjectID,
		From:        in.From,
		To:          in.To,
	}
	list, err := uc.movRepo.List(ctx, f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ItemID:      m.ItemID,
		WarehouseID: m.WarehouseID,
		BinID:       m.BinID,
		ProjectID:   m.ProjectID,
		Qty:         m.Qty,
		UnitCost:    m.UnitCost,
		Type:        m.Type,
		Ref:         m.Ref,
		MovedAt:     m.MovedAt,
		CreatedAt:   m.CreatedAt,
	}
}
