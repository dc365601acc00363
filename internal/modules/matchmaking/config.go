package matchmaking

import "time"

// Config holds the matchmaking module configuration.
type Config struct {
	// DBPath is the SQLite file holding profiles and the match log.
	DBPath string `env:"MATCHMAKING_DB_PATH" envDefault:"stackbot.db"`

	// OffRoleMultiplier and OffRoleFlatPenalty shape the adjusted value
	// of a player assigned outside their preferred roles.
	OffRoleMultiplier  float64 `env:"MATCHMAKING_OFF_ROLE_MULTIPLIER" envDefault:"0.95"`
	OffRoleFlatPenalty float64 `env:"MATCHMAKING_OFF_ROLE_FLAT_PENALTY" envDefault:"350"`

	// CaptainProximityFactor controls how strongly the second captain is
	// biased toward the first captain's value.
	CaptainProximityFactor float64 `env:"MATCHMAKING_CAPTAIN_PROXIMITY_FACTOR" envDefault:"100"`

	// AssignmentCacheSize bounds the role-assignment memo cache.
	AssignmentCacheSize int `env:"MATCHMAKING_ASSIGNMENT_CACHE_SIZE" envDefault:"512"`

	// DraftTTL expires abandoned drafts. Zero keeps them until cancelled.
	DraftTTL time.Duration `env:"MATCHMAKING_DRAFT_TTL" envDefault:"0"`
}
