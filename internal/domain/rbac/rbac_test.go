package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/rbac"
)

// El chequeo es plano: un rol pasa solo si está listado, sin jerarquía.
func TestRoleSet_ChequeoPlano(t *testing.T) {
	set := rbac.RoleSet{entity.RoleBuyer, entity.RoleManager}

	assert.True(t, set.Contains(entity.RoleBuyer))
	assert.True(t, set.Contains(entity.RoleManager))
	assert.False(t, set.Contains(entity.RoleAdmin),
		"admin no pasa por jerarquía implícita: solo si está listado")
	assert.False(t, set.Contains(entity.RoleAuditor))
	assert.False(t, set.Contains(""))
	assert.False(t, set.Contains("superadmin"))
}

func TestAllOperating_ContieneLosSeisRoles(t *testing.T) {
	for _, r := range []string{
		entity.RoleAdmin, entity.RoleBuyer, entity.RoleApprover,
		entity.RoleWarehouse, entity.RoleManager, entity.RoleAuditor,
	} {
		assert.True(t, rbac.AllOperating.Contains(r), "rol %q debe estar en AllOperating", r)
	}
	assert.Len(t, rbac.AllOperating, 6)
}

func TestAdminOnly_SoloAdmin(t *testing.T) {
	assert.True(t, rbac.AdminOnly.Contains(entity.RoleAdmin))
	assert.False(t, rbac.AdminOnly.Contains(entity.RoleManager))
}

func TestLedgerWrite_AuditorNoEscribe(t *testing.T) {
	assert.True(t, rbac.LedgerWrite.Contains(entity.RoleWarehouse))
	assert.False(t, rbac.LedgerWrite.Contains(entity.RoleAuditor))
	assert.False(t, rbac.LedgerWrite.Contains(entity.RoleBuyer))
}
