package entity

import "time"

// Item artículo del catálogo. SKU único.
type Item struct {
	ID          string
	SKU         string
	Description string
	UOM         string // unidad de medida, por defecto "ea"
	CreatedAt   time.Time
}
