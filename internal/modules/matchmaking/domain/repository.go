package domain

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// ProfileRepository stores player registrations per guild.
type ProfileRepository interface {
	// Save upserts the profile keyed by (guild, user).
	Save(ctx context.Context, profile Profile) error

	// Get returns the profile for the given guild member, or
	// ErrProfileNotFound.
	Get(ctx context.Context, guildID, userID snowflake.ID) (Profile, error)

	// List returns one profile per requested user, in request order.
	// Returns ErrProfileNotFound if any user has no profile.
	List(ctx context.Context, guildID snowflake.ID, userIDs []snowflake.ID) ([]Profile, error)

	// ApplyExclusions overwrites the exclusion counts of the given
	// users, leaving everyone else untouched.
	ApplyExclusions(ctx context.Context, guildID snowflake.ID, counts map[snowflake.ID]int) error
}

// LobbyRepository holds the per-guild set of players waiting for a
// match. Membership order is preserved for display; selection itself
// never depends on it.
type LobbyRepository interface {
	// Add puts the user in the guild lobby, or ErrAlreadyInLobby.
	Add(ctx context.Context, guildID, userID snowflake.ID) error

	// Remove takes the user out of the guild lobby, or ErrNotInLobby.
	Remove(ctx context.Context, guildID, userID snowflake.ID) error

	// Members returns the lobby members in join order.
	Members(ctx context.Context, guildID snowflake.ID) ([]snowflake.ID, error)

	// Clear empties the guild lobby.
	Clear(ctx context.Context, guildID snowflake.ID) error
}

// DraftRepository keeps at most one live draft per guild and serializes
// all access to it, since DraftState itself is not safe for concurrent
// use.
type DraftRepository interface {
	// Create installs a new draft for its guild. Returns
	// ErrDraftInProgress if a non-terminal draft already exists;
	// a leftover terminal draft is replaced.
	Create(ctx context.Context, draft *DraftState) error

	// Mutate runs fn against the guild's draft under the entry's write
	// lock, or ErrNoDraft. fn must not retain the state.
	Mutate(ctx context.Context, guildID snowflake.ID, fn func(*DraftState) error) error

	// View returns a snapshot of the guild's draft, or ErrNoDraft.
	View(ctx context.Context, guildID snowflake.ID) (DraftStatus, error)

	// Delete removes the guild's draft if present.
	Delete(ctx context.Context, guildID snowflake.ID) error
}
