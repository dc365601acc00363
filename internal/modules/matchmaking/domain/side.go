package domain

import "strings"

// Side identifies one of the two in-game factions.
type Side int

const (
	// SideNone is the zero value, used before a side has been assigned
	// or when a field does not apply (e.g. first pick on a shuffled plan).
	SideNone Side = iota
	SideRadiant
	SideDire
)

// String returns the lowercase faction name, or "none".
func (s Side) String() string {
	switch s {
	case SideRadiant:
		return "radiant"
	case SideDire:
		return "dire"
	default:
		return "none"
	}
}

// DisplayName returns the capitalized faction name.
func (s Side) DisplayName() string {
	switch s {
	case SideRadiant:
		return "Radiant"
	case SideDire:
		return "Dire"
	default:
		return "None"
	}
}

// Opposite returns the other faction. SideNone maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideRadiant:
		return SideDire
	case SideDire:
		return SideRadiant
	default:
		return SideNone
	}
}

// ParseSide converts user input to a Side. "none" and the empty string
// map to SideNone, which callers use to clear a preference.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radiant":
		return SideRadiant, true
	case "dire":
		return SideDire, true
	case "", "none":
		return SideNone, true
	default:
		return SideNone, false
	}
}
