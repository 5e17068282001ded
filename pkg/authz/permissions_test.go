package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableIsComplete(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestAllowedSpotChecks(t *testing.T) {
	cases := []struct {
		cap  Capability
		role Role
		want bool
	}{
		{CapUsersManage, RoleAdmin, true},
		{CapUsersManage, RoleCoach, false},
		{CapUsersManage, RoleUser, false},
		{CapClassesReserve, RoleUser, true},
		{CapClassesReserve, RoleCoach, false},
		{CapClassesManage, RoleCoach, true},
		{CapClassesManage, RoleUser, false},
		{CapChat, RoleUser, true},
		{CapDashboardView, RoleAdmin, true},
		{CapDashboardView, RoleCoach, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.cap, tc.role), "cap=%s role=%s", tc.cap, tc.role)
	}
}

// There is no role hierarchy: admin does not inherit coach-only or
// user-only capabilities.
func TestNoRoleHierarchy(t *testing.T) {
	assert.False(t, Allowed(CapClientsView, RoleAdmin))
	assert.False(t, Allowed(CapClassesReserve, RoleAdmin))
	assert.False(t, Allowed(CapWorkoutsSelf, RoleAdmin))
}

func TestAllowedUnknownInputs(t *testing.T) {
	assert.False(t, Allowed(Capability("made.up"), RoleAdmin))
	assert.False(t, Allowed(CapUsersManage, Role("superadmin")))
	assert.False(t, Allowed(CapUsersManage, Role("")))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("coach"))
	assert.True(t, ValidRole("user"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}
