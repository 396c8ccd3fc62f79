package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/usecase"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memMovementRepo struct{ rows []*entity.Movement }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.rows {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) List(_ context.Context, f repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.rows {
		if f.ItemID != "" && m.ItemID != f.ItemID {
			continue
		}
		if f.WarehouseID != "" && m.WarehouseID != f.WarehouseID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memItemRepo struct{ items map[string]*entity.Item }

func (r *memItemRepo) Create(context.Context, *entity.Item) error { return nil }
func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *memItemRepo) List(context.Context, int, int) ([]*entity.Item, error) { return nil, nil }

type memWarehouseRepo struct{ whs map[string]*entity.Warehouse }

func (r *memWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.whs[id], nil
}
func (r *memWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *memWarehouseRepo) CreateBin(context.Context, *entity.Bin) error { return nil }
func (r *memWarehouseRepo) ListBins(context.Context, string) ([]*entity.Bin, error) {
	return nil, nil
}

func newMovementUC(movRepo *memMovementRepo) *usecase.MovementUseCase {
	items := &memItemRepo{items: map[string]*entity.Item{
		"item1": {ID: "item1", SKU: "SKU-1", Description: "Tornillo 3/8", UOM: "ea"},
	}}
	whs := &memWarehouseRepo{whs: map[string]*entity.Warehouse{
		"wh1": {ID: "wh1", Code: "BOD-1", Name: "Bodega Central"},
	}}
	return usecase.NewMovementUseCase(movRepo, items, whs)
}

func validRegister() dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ItemID:      "item1",
		WarehouseID: "wh1",
		Qty:         decimal.RequireFromString("10"),
		Type:        entity.MovementPOReceive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_MovimientoValido(t *testing.T) {
	repo := &memMovementRepo{}
	uc := newMovementUC(repo)

	out, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Qty.Equal(decimal.RequireFromString("10")))
	assert.False(t, out.MovedAt.IsZero())
	require.Len(t, repo.rows, 1)
}

func TestRegister_TipoDesconocido_Invalido(t *testing.T) {
	uc := newMovementUC(&memMovementRepo{})

	in := validRegister()
	in.Type = "teleport_out"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La cantidad lleva el signo de la operación; cero no representa nada.
func TestRegister_CantidadCero_Invalida(t *testing.T) {
	uc := newMovementUC(&memMovementRepo{})

	in := validRegister()
	in.Qty = decimal.Zero
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CantidadNegativa_Valida(t *testing.T) {
	repo := &memMovementRepo{}
	uc := newMovementUC(repo)

	in := validRegister()
	in.Type = entity.MovementSOIssue
	in.Qty = decimal.RequireFromString("-5")
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Qty.IsNegative())
}

func TestRegister_ArticuloInexistente_NotFound(t *testing.T) {
	uc := newMovementUC(&memMovementRepo{})

	in := validRegister()
	in.ItemID = "item-fantasma"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_BodegaInexistente_NotFound(t *testing.T) {
	uc := newMovementUC(&memMovementRepo{})

	in := validRegister()
	in.WarehouseID = "wh-fantasma"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_RespetaMovedAtExplicito(t *testing.T) {
	repo := &memMovementRepo{}
	uc := newMovementUC(repo)

	past := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	in := validRegister()
	in.MovedAt = &past
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.MovedAt.Equal(past))
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorArticulo(t *testing.T) {
	repo := &memMovementRepo{}
	uc := newMovementUC(repo)

	_, err := uc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	out, err := uc.List(context.Background(), dto.ListMovementsRequest{ItemID: "item1"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	vacio, err := uc.List(context.Background(), dto.ListMovementsRequest{ItemID: "otro"})
	require.NoError(t, err)
	assert.Empty(t, vacio.Items)
}
