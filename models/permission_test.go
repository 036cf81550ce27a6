package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissionSets(t *testing.T) {
	assert.Empty(t, RoleUser.Permissions())
	assert.ElementsMatch(t, []Permission{
		PermAddCourse, PermEditCourse, PermDeleteCourse,
	}, RoleAdmin.Permissions())
	assert.Len(t, RoleSuperAdmin.Permissions(), 10)
	assert.Empty(t, Role("moderator").Permissions())
}

func TestCheckIfUserCan(t *testing.T) {
	assert.True(t, CheckIfUserCan(RoleAdmin, PermAddCourse))
	assert.True(t, CheckIfUserCan(RoleAdmin, PermAddCourse, PermEditCourse))
	assert.False(t, CheckIfUserCan(RoleAdmin, PermAddCourse, PermAddAuthor))
	assert.False(t, CheckIfUserCan(RoleUser, PermAddCourse))
	assert.True(t, CheckIfUserCan(RoleSuperAdmin, RoleSuperAdmin.Permissions()...))

	// empty permission list always passes
	assert.True(t, CheckIfUserCan(RoleUser))
}

func TestCheckIfUserCanIsConjunctive(t *testing.T) {
	all := RoleSuperAdmin.Permissions()
	for _, role := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		for i, p1 := range all {
			for _, p2 := range all[i:] {
				both := CheckIfUserCan(role, p1, p2)
				each := CheckIfUserCan(role, p1) && CheckIfUserCan(role, p2)
				assert.Equal(t, each, both, "role %s, %s+%s", role, p1, p2)
			}
		}
	}
}

func TestRoleTitles(t *testing.T) {
	assert.Equal(t, "User", RoleUser.Title())
	assert.Equal(t, "Admin", RoleAdmin.Title())
	assert.Equal(t, "Super Admin", RoleSuperAdmin.Title())
	assert.Equal(t, "Unknown", Role("ghost").Title())
}
