// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// The portfolio only ever discriminates admin vs. everyone else, but the
// account schema keeps the two-value enum so a future non-admin account type
// does not require a migration.
type Role string

const (
	// RoleAdmin has unrestricted access to the content-management API.
	RoleAdmin Role = "admin"

	// RoleUser is the default role. No endpoint currently grants it anything
	// beyond the public surface.
	RoleUser Role = "user"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}
