package domain

import (
	"slices"

	"github.com/disgoorg/snowflake/v2"
)

// Player is an immutable snapshot of one candidate handed to the engine
// for a single invocation. Value is the display-scale skill scalar
// derived from whichever rating system is active; ExclusionCount is the
// fairness ledger read from persistence. The engine never mutates a
// Player; exclusion updates are reported back to the caller instead.
type Player struct {
	ID              snowflake.ID
	Name            string
	Value           float64
	Roles           []Role // preferred roles in preference order; empty means no stated preference
	CaptainEligible bool
	ExclusionCount  int
}

// HasRole reports whether role is one of the player's stated preferences.
// A player with no stated preferences is off-role everywhere.
func (p Player) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// sortedByID returns a copy of players in ascending ID order, the
// canonical ordering used by the optimizers so results are independent
// of input order.
func sortedByID(players []Player) []Player {
	out := slices.Clone(players)
	slices.SortFunc(out, func(a, b Player) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out
}

// playerIDs extracts the IDs of players in order.
func playerIDs(players []Player) []snowflake.ID {
	ids := make([]snowflake.ID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// containsID reports whether players includes id.
func containsID(players []Player, id snowflake.ID) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}
