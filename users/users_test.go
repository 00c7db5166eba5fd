package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neurobridge/dashboard/users"
)

func TestParseRole(t *testing.T) {
	t.Run("accepts every enumerated role", func(t *testing.T) {
		for _, raw := range []string{"super_admin", "school_admin", "tutor_centre_admin"} {
			role, err := users.ParseRole(raw)
			require.NoError(t, err)
			require.Equal(t, users.Role(raw), role)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		for _, raw := range []string{"", "admin", "SUPER_ADMIN", "teacher"} {
			_, err := users.ParseRole(raw)
			require.Error(t, err, "role %q should be rejected", raw)
		}
	})
}

func TestRolePredicates(t *testing.T) {
	superAdmin := &users.User{Role: users.RoleSuperAdmin}
	schoolAdmin := &users.User{Role: users.RoleSchoolAdmin, InstitutionID: "inst-1"}
	tutorAdmin := &users.User{Role: users.RoleTutorCentreAdmin, InstitutionID: "inst-2"}

	require.True(t, superAdmin.IsSuperAdmin())
	require.False(t, schoolAdmin.IsSuperAdmin())

	require.True(t, schoolAdmin.IsInstitutionAdmin())
	require.True(t, tutorAdmin.IsInstitutionAdmin())
	require.False(t, superAdmin.IsInstitutionAdmin())

	require.True(t, schoolAdmin.HasRole(users.RoleSchoolAdmin, users.RoleTutorCentreAdmin))
	require.False(t, schoolAdmin.HasRole(users.RoleSuperAdmin))
	require.False(t, schoolAdmin.HasRole())
}
