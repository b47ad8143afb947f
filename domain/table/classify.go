package table

import "strings"

// Role names a semantic class of measurement columns.
type Role string

const (
	// RolePosition marks the chainage column used as the 1-D coordinate.
	RolePosition Role = "position"
	// RoleVelocity marks seismic velocity series (weak-zone candidates).
	RoleVelocity Role = "velocity"
	// RoleMachine marks boring-machine operational parameters.
	RoleMachine Role = "machine"
)

// Rules maps a semantic role to the name substrings that identify it.
// Matching is against normalized (trimmed, lower-cased) column names, so
// alternate naming conventions are supported by swapping the rule set
// rather than changing code.
type Rules map[Role][]string

// DefaultRules returns the naming conventions of combined TBM/TSP sheets.
func DefaultRules() Rules {
	return Rules{
		RolePosition: {"chain"},
		RoleVelocity: {"velocity"},
		RoleMachine:  {"penetration", "torque", "thrust", "revolution"},
	}
}

// Matches reports whether a normalized column name belongs to the role.
func (r Rules) Matches(role Role, name string) bool {
	for _, sub := range r[role] {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

// Select returns the columns matching the role, preserving input order.
func (r Rules) Select(role Role, columns []string) []string {
	var out []string
	for _, c := range columns {
		if r.Matches(role, c) {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first column matching the role, or "" when none does.
func (r Rules) First(role Role, columns []string) string {
	for _, c := range columns {
		if r.Matches(role, c) {
			return c
		}
	}
	return ""
}
