// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package sec

// # Moderation Roles

// Role represents the authorization level granted to an admin account.
type Role string

const (
	// Unrestricted system access, including account management
	RoleAdmin Role = "admin"

	// Can review pending posters and moderate comments
	RoleModerator Role = "moderator"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-20) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 20
	case RoleModerator:
		return 10
	default:
		return 0
	}
}
