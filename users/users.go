package users

import (
	"fmt"
	"time"
)

// Role represents a user's role on the platform
type Role string

const (
	RoleSuperAdmin       Role = "super_admin"        // Platform operator, can manage all institutions
	RoleSchoolAdmin      Role = "school_admin"       // Administrator of a school
	RoleTutorCentreAdmin Role = "tutor_centre_admin" // Administrator of a tutoring centre
)

// ParseRole validates a raw role string against the closed enumeration. An
// unrecognised value is an error, never a silent default: a user with an
// unknown role could otherwise slip past every role allow-list.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleSuperAdmin, RoleSchoolAdmin, RoleTutorCentreAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID            string     `json:"id"`                      // Unique identifier for the user
	Email         string     `json:"email"`                   // User's email address
	Name          string     `json:"name"`                    // Display name, always populated after normalization
	Role          Role       `json:"role"`                    // One of the closed role enumeration
	InstitutionID string     `json:"institutionId,omitempty"` // Required in practice for non super-admin roles
	CreatedAt     time.Time  `json:"createdAt"`               // When the account was created
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`   // Last successful login, if any
}

// IsSuperAdmin returns true if the user has platform-wide privileges
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsInstitutionAdmin returns true if the user administers a single institution
func (u *User) IsInstitutionAdmin() bool {
	return u.Role == RoleSchoolAdmin || u.Role == RoleTutorCentreAdmin
}

// HasRole checks if the user's role is in the given set
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
