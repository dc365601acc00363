package infrastructure

import (
	"context"
	"slices"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// MemoryLobby is an in-memory implementation of LobbyRepository. Each
// guild's lobby keeps join order.
type MemoryLobby struct {
	mu      sync.RWMutex
	members map[snowflake.ID][]snowflake.ID
}

// NewMemoryLobby creates a new MemoryLobby.
func NewMemoryLobby() *MemoryLobby {
	return &MemoryLobby{
		members: make(map[snowflake.ID][]snowflake.ID),
	}
}

// Add appends the user to the guild lobby, or returns
// domain.ErrAlreadyInLobby.
func (l *MemoryLobby) Add(_ context.Context, guildID, userID snowflake.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.members[guildID], userID) {
		return domain.ErrAlreadyInLobby
	}
	l.members[guildID] = append(l.members[guildID], userID)
	return nil
}

// Remove drops the user from the guild lobby, or returns
// domain.ErrNotInLobby.
func (l *MemoryLobby) Remove(_ context.Context, guildID, userID snowflake.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.Index(l.members[guildID], userID)
	if idx < 0 {
		return domain.ErrNotInLobby
	}
	l.members[guildID] = slices.Delete(l.members[guildID], idx, idx+1)
	return nil
}

// Members returns the guild lobby in join order.
func (l *MemoryLobby) Members(_ context.Context, guildID snowflake.ID) ([]snowflake.ID, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.members[guildID]), nil
}

// Clear empties the guild lobby.
func (l *MemoryLobby) Clear(_ context.Context, guildID snowflake.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.members, guildID)
	return nil
}

// Ensure MemoryLobby implements LobbyRepository.
var _ domain.LobbyRepository = (*MemoryLobby)(nil)
