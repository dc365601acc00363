package domain

import (
	"math"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
)

// Provenance records which selection path produced a match plan.
type Provenance string

const (
	ProvenanceShuffle Provenance = "shuffle"
	ProvenanceDraft   Provenance = "draft"
)

// MatchPlan is the engine's final output: two finalized teams with side
// labels, plus metadata about how they were formed. The shape is
// identical across both provenances so downstream consumers never
// special-case the selection path; draft plans simply carry no role
// assignment and a first-pick side.
type MatchPlan struct {
	ID         uuid.UUID
	GuildID    snowflake.ID
	Provenance Provenance
	Radiant    Team
	Dire       Team
	FirstPick  Side // side holding first pick in-game; SideNone on shuffled plans
	CreatedAt  time.Time
}

// ValueGap returns the absolute difference between the two team values.
func (p *MatchPlan) ValueGap() float64 {
	return math.Abs(p.Radiant.Value - p.Dire.Value)
}

// Players returns all ten players across both teams, Radiant first.
func (p *MatchPlan) Players() []Player {
	out := make([]Player, 0, len(p.Radiant.Players)+len(p.Dire.Players))
	out = append(out, p.Radiant.Players...)
	out = append(out, p.Dire.Players...)
	return out
}

// SideOf returns the side the given player landed on, or SideNone if
// the player is not part of the plan.
func (p *MatchPlan) SideOf(id snowflake.ID) Side {
	if p.Radiant.Has(id) {
		return SideRadiant
	}
	if p.Dire.Has(id) {
		return SideDire
	}
	return SideNone
}

// newMatchPlan stamps identity and creation time onto a finished plan.
func newMatchPlan(guildID snowflake.ID, provenance Provenance, radiant, dire Team, firstPick Side) *MatchPlan {
	return &MatchPlan{
		ID:         uuid.New(),
		GuildID:    guildID,
		Provenance: provenance,
		Radiant:    radiant,
		Dire:       dire,
		FirstPick:  firstPick,
		CreatedAt:  time.Now().UTC(),
	}
}
