package entity

import "time"

// User usuario interno, vinculado 1:1 con el principal del proveedor de
// identidad externo vía ExternalID (único). Solo pertenece a organizaciones
// a través de Membership.
type User struct {
	ID          string
	ExternalID  string
	Email       string
	DisplayName *string // "First Last" solo si el evento trae ambos nombres
	DarkMode    bool
	CreatedAt   time.Time
}
