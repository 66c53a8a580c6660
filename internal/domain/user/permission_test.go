package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionCompanySwitch, true},
		{RoleOwner, PermissionCompanySwitch, false},
		{RoleOwner, PermissionTicketViewAll, true},
		{RoleManager, PermissionTicketViewAll, true},
		{RoleEmployee, PermissionTicketViewAll, false},
		{RoleEmployee, PermissionTicketViewOwn, true},
		{RolePending, PermissionDashboardView, false},
		{Role("unknown"), PermissionDashboardView, false},
		{Role(""), PermissionTicketViewOwn, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "%s/%s", c.role, c.permission)
	}
}

func TestRole_Elevation(t *testing.T) {
	assert.True(t, RoleAdmin.IsElevated())
	assert.True(t, RoleManager.IsElevated())
	assert.False(t, RoleEmployee.IsElevated())
	assert.False(t, Role("").IsElevated())

	assert.True(t, RoleAdmin.CanSwitchCompany())
	assert.False(t, RoleManager.CanSwitchCompany())
}
