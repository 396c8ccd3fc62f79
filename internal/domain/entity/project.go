package entity

import "time"

// Project centro de costo / proyecto contra el que se imputan movimientos.
type Project struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}
