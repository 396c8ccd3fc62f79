package entity

import "time"

// Invitation invitación a unirse a una organización con un rol dado.
// El código es único a nivel global. Se consume exactamente una vez
// (UsedAt se fija con un claim condicional atómico); una vez consumida
// nunca vuelve a validar.
type Invitation struct {
	ID         string
	OrgID      string
	Email      string
	RoleKey    string
	InviteCode string
	UsedAt     *time.Time
	CreatedAt  time.Time
}

// Used indica si la invitación ya fue consumida.
func (i Invitation) Used() bool { return i.UsedAt != nil }
