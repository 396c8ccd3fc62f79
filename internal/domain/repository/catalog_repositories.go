package repository

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para el catálogo de artículos.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
}

// WarehouseRepository define el puerto de persistencia para bodegas y bins.
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
	CreateBin(ctx context.Context, b *entity.Bin) error
	ListBins(ctx context.Context, warehouseID string) ([]*entity.Bin, error)
}

// ProjectRepository define el puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Project, error)
}

// RoleRepository acceso de lectura al conjunto estático de roles.
type RoleRepository interface {
	List(ctx context.Context) ([]*entity.Role, error)
}
