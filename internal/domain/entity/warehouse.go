package entity

import "time"

// Warehouse bodega física. Código único.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}

// Bin ubicación dentro de una bodega. El código es único por bodega.
type Bin struct {
	ID          string
	WarehouseID string
	Code        string
	CreatedAt   time.Time
}
