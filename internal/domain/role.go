package domain

import "strings"

// Role is the authority level carried by admin users and issued tokens.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleView   Role = "VIEW"
)

// rank orders roles by privilege. Unknown roles rank below VIEW so they
// never satisfy a guard.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleEditor:
		return 2
	case RoleView:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the role is one of the closed enumeration.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// AtLeast reports whether the role carries at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() > 0 && r.rank() >= min.rank()
}

// CanEdit reports whether the role may perform content edits.
func (r Role) CanEdit() bool {
	return r.AtLeast(RoleEditor)
}

// ParseRole normalizes a role string, returning false for anything outside
// the enumeration.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	return role, role.Valid()
}
