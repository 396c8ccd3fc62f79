package dto

import "time"

// CreateItemRequest alta de artículo.
type CreateItemRequest struct {
	SKU         string `json:"sku" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
	UOM         string `json:"uom"`
}

// ItemResponse artículo del catálogo.
type ItemResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	UOM         string    `json:"uom"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateWarehouseRequest alta de bodega.
type CreateWarehouseRequest struct {
	Code string `json:"code" validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateBinRequest alta de bin dentro de una bodega.
type CreateBinRequest struct {
	Code string `json:"code" validate:"required,min=1"`
}

// BinResponse bin de bodega.
type BinResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	Code string `json:"code" validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
}

// ProjectResponse proyecto.
type ProjectResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
