package domain

import (
	"slices"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Default rating prior assigned to newly registered players.
const (
	DefaultMu    = 25.0
	DefaultSigma = 25.0 / 3.0
)

// Profile is a player's persisted registration within one guild: the
// identity and preferences they manage through commands, plus the state
// the matchmaker maintains on their behalf (rating estimate and the
// exclusion ledger).
type Profile struct {
	GuildID         snowflake.ID
	UserID          snowflake.ID
	Name            string
	Roles           []Role
	CaptainEligible bool
	Mu              float64
	Sigma           float64
	ExclusionCount  int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewProfile creates a profile with the default rating prior.
func NewProfile(guildID, userID snowflake.ID, name string) Profile {
	now := time.Now().UTC()
	return Profile{
		GuildID:   guildID,
		UserID:    userID,
		Name:      name,
		Mu:        DefaultMu,
		Sigma:     DefaultSigma,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AsPlayer converts the profile into the engine's player snapshot.
// value is the display-scale rating computed by the active rating
// scale; the engine never sees mu/sigma directly.
func (p Profile) AsPlayer(value float64) Player {
	return Player{
		ID:              p.UserID,
		Name:            p.Name,
		Value:           value,
		Roles:           slices.Clone(p.Roles),
		CaptainEligible: p.CaptainEligible,
		ExclusionCount:  p.ExclusionCount,
	}
}
