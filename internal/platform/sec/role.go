// Copyright (c) 2026 Book2Screen. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to a session.
type UserRole string

const (
	// Can manage the catalog and author registry
	RoleAdmin UserRole = "admin"

	// Default role for every other login
	RoleUser UserRole = "user"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleUser:
		return 10
	default:
		return 0
	}
}
