package domain

import "github.com/disgoorg/snowflake/v2"

// TeamSize is the fixed number of players on a finalized team.
const TeamSize = 5

// PoolSize is the fixed number of players selected for one match.
const PoolSize = 2 * TeamSize

// Team is one finalized side of a match. Roles is parallel to Players
// and holds the optimized role assignment; it is nil for draft-built
// teams, where role negotiation is left to the players themselves.
// Value is the team's adjusted skill total: each on-role player
// contributes their raw value, each off-role player the penalized one.
// Without an assignment, Value is the plain sum of raw values.
type Team struct {
	Players []Player
	Roles   []Role
	Value   float64
	OffRole int
}

// newUnassignedTeam builds a Team with no role assignment, valued as
// the raw sum of player values. Used by the draft path.
func newUnassignedTeam(players []Player) Team {
	t := Team{Players: players}
	for _, p := range players {
		t.Value += p.Value
	}
	return t
}

// Has reports whether the team contains the player with the given ID.
func (t Team) Has(id snowflake.ID) bool {
	return containsID(t.Players, id)
}

// RawValue returns the sum of unpenalized player values.
func (t Team) RawValue() float64 {
	var sum float64
	for _, p := range t.Players {
		sum += p.Value
	}
	return sum
}

// RoleOf returns the role assigned to the player with the given ID and
// whether the team has an assignment covering that player.
func (t Team) RoleOf(id snowflake.ID) (Role, bool) {
	if t.Roles == nil {
		return 0, false
	}
	for i, p := range t.Players {
		if p.ID == id {
			return t.Roles[i], true
		}
	}
	return 0, false
}
