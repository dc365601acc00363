package domain

import "strings"

// Role is one of the five fixed positions a player can fill on a team.
type Role int

const (
	RoleCarry Role = iota + 1
	RoleMid
	RoleOfflane
	RoleSoftSupport
	RoleHardSupport
)

// NumRoles is the number of role slots on a team. Every finalized team
// fills each role exactly once.
const NumRoles = 5

// AllRoles returns the five roles in position order (1-5).
func AllRoles() [NumRoles]Role {
	return [NumRoles]Role{RoleCarry, RoleMid, RoleOfflane, RoleSoftSupport, RoleHardSupport}
}

// String returns the position number as used in player-facing shorthand.
func (r Role) String() string {
	switch r {
	case RoleCarry:
		return "1"
	case RoleMid:
		return "2"
	case RoleOfflane:
		return "3"
	case RoleSoftSupport:
		return "4"
	case RoleHardSupport:
		return "5"
	default:
		return "?"
	}
}

// DisplayName returns the human-readable role name.
func (r Role) DisplayName() string {
	switch r {
	case RoleCarry:
		return "Carry"
	case RoleMid:
		return "Mid"
	case RoleOfflane:
		return "Offlane"
	case RoleSoftSupport:
		return "Soft Support"
	case RoleHardSupport:
		return "Hard Support"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the five defined roles.
func (r Role) Valid() bool {
	return r >= RoleCarry && r <= RoleHardSupport
}

// ParseRole converts a position number or role name to a Role.
// Accepts "1".."5" and common names ("carry", "mid", "offlane",
// "soft support"/"soft", "hard support"/"hard"). Returns false if the
// input matches nothing.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "carry", "safelane":
		return RoleCarry, true
	case "2", "mid", "midlane":
		return RoleMid, true
	case "3", "offlane", "off":
		return RoleOfflane, true
	case "4", "soft support", "soft", "softsupport":
		return RoleSoftSupport, true
	case "5", "hard support", "hard", "hardsupport":
		return RoleHardSupport, true
	default:
		return 0, false
	}
}

// ParseRoles converts a comma- or space-separated list of role tokens
// into a deduplicated, order-preserving role list.
func ParseRoles(s string) ([]Role, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) == 0 {
		return nil, false
	}

	roles := make([]Role, 0, len(fields))
	seen := [NumRoles + 1]bool{}
	for _, f := range fields {
		role, ok := ParseRole(f)
		if !ok {
			return nil, false
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles, true
}

// FormatRoles renders a role list as position numbers, e.g. "1, 3".
// Returns "none" for an empty list.
func FormatRoles(roles []Role) string {
	if len(roles) == 0 {
		return "none"
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// roleMask packs a role list into a bitmask for compact set membership
// checks and cache keys.
func roleMask(roles []Role) uint8 {
	var mask uint8
	for _, r := range roles {
		if r.Valid() {
			mask |= 1 << (uint8(r) - 1)
		}
	}
	return mask
}
