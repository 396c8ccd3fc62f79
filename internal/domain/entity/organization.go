package entity

import "time"

// Organization representa un tenant. El nombre es único a nivel sistema.
// En este despliegue se crea exactamente una en el primer signup (bootstrap).
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
