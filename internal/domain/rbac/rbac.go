// Package rbac implementa el chequeo plano de capacidades por operación.
// No hay jerarquía de roles: una operación permite exactamente los roles
// enumerados en su conjunto, y "admin" solo pasa donde está listado
// (se lista manualmente en todos los conjuntos definidos aquí).
package rbac

import "github.com/mdmgroup/inventory-api/internal/domain/entity"

// RoleSet conjunto de roles permitidos para una operación.
type RoleSet []string

// Contains verifica pertenencia explícita del rol al conjunto.
// Es la única regla de autorización: rol ∈ conjunto, sin herencia.
func (s RoleSet) Contains(role string) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Conjuntos por operación. Todos incluyen admin de forma explícita.
var (
	// AllOperating todos los roles operativos: lecturas generales,
	// valorización y preferencias de usuario.
	AllOperating = RoleSet{
		entity.RoleAdmin, entity.RoleBuyer, entity.RoleApprover,
		entity.RoleWarehouse, entity.RoleManager, entity.RoleAuditor,
	}

	// CatalogWrite alta y edición de artículos, bodegas y proyectos.
	CatalogWrite = RoleSet{entity.RoleAdmin, entity.RoleBuyer, entity.RoleManager}

	// LedgerWrite registro de movimientos de inventario.
	LedgerWrite = RoleSet{entity.RoleAdmin, entity.RoleWarehouse, entity.RoleManager}

	// AdminOnly gestión de invitaciones y usuarios.
	AdminOnly = RoleSet{entity.RoleAdmin}
)
