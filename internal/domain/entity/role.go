package entity

// Claves de rol válidas. Conjunto estático de referencia; se siembra por migración.
const (
	RoleAdmin     = "admin"
	RoleBuyer     = "buyer"
	RoleApprover  = "approver"
	RoleWarehouse = "warehouse"
	RoleManager   = "manager"
	RoleAuditor   = "auditor"
)

// Role rol de aplicación: clave + descripción.
type Role struct {
	Key         string
	Description string
}

// Membership otorga a un usuario exactamente un rol dentro de una organización.
// (OrgID, UserID) es único: un usuario tiene a lo sumo un rol por organización.
type Membership struct {
	OrgID   string
	UserID  string
	RoleKey string
}
