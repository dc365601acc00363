package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// draftEntry holds one guild's live draft behind its own lock, so a
// long pick sequence in one guild never blocks another guild's draft.
type draftEntry struct {
	mu    sync.RWMutex
	draft *domain.DraftState
	timer *time.Timer
	gen   uint64
}

// MemoryDraftStore is an in-memory implementation of DraftRepository.
// A non-zero ttl cancels a draft that sees no mutation for that long;
// the deadline re-arms on every successful mutation.
type MemoryDraftStore struct {
	mu      sync.Mutex
	entries map[snowflake.ID]*draftEntry
	ttl     time.Duration
}

// NewMemoryDraftStore creates a new MemoryDraftStore. A ttl of zero
// disables expiry.
func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{
		entries: make(map[snowflake.ID]*draftEntry),
		ttl:     ttl,
	}
}

// Create installs the draft as the guild's live draft. A leftover
// terminal draft is replaced; a live one returns
// domain.ErrDraftInProgress.
func (s *MemoryDraftStore) Create(_ context.Context, draft *domain.DraftState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guildID := draft.GuildID()
	if old, ok := s.entries[guildID]; ok {
		old.mu.Lock()
		live := old.draft != nil && !old.draft.Phase().Terminal()
		if !live && old.timer != nil {
			old.timer.Stop()
		}
		old.mu.Unlock()
		if live {
			return domain.ErrDraftInProgress
		}
	}

	entry := &draftEntry{draft: draft}
	s.entries[guildID] = entry
	entry.mu.Lock()
	s.arm(guildID, entry)
	entry.mu.Unlock()
	return nil
}

// Mutate runs fn on the guild's draft under its write lock. A
// successful mutation re-arms the expiry deadline.
func (s *MemoryDraftStore) Mutate(_ context.Context, guildID snowflake.ID, fn func(*domain.DraftState) error) error {
	entry, ok := s.entry(guildID)
	if !ok {
		return domain.ErrNoDraft
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.draft == nil {
		return domain.ErrNoDraft
	}
	if err := fn(entry.draft); err != nil {
		return err
	}
	if entry.draft.Phase().Terminal() {
		if entry.timer != nil {
			entry.timer.Stop()
		}
	} else {
		s.arm(guildID, entry)
	}
	return nil
}

// View returns a snapshot of the guild's draft under its read lock.
func (s *MemoryDraftStore) View(_ context.Context, guildID snowflake.ID) (domain.DraftStatus, error) {
	entry, ok := s.entry(guildID)
	if !ok {
		return domain.DraftStatus{}, domain.ErrNoDraft
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	if entry.draft == nil {
		return domain.DraftStatus{}, domain.ErrNoDraft
	}
	return entry.draft.Status(), nil
}

// Delete discards the guild's draft. Deleting an absent draft is not an
// error.
func (s *MemoryDraftStore) Delete(_ context.Context, guildID snowflake.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[guildID]
	if !ok {
		return nil
	}
	entry.mu.Lock()
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.draft = nil
	entry.mu.Unlock()
	delete(s.entries, guildID)
	return nil
}

func (s *MemoryDraftStore) entry(guildID snowflake.ID) (*draftEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[guildID]
	return entry, ok
}

// arm schedules (or reschedules) the expiry for the entry. Callers must
// hold the entry lock.
func (s *MemoryDraftStore) arm(guildID snowflake.ID, entry *draftEntry) {
	if s.ttl <= 0 {
		return
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	entry.gen++
	gen := entry.gen
	entry.timer = time.AfterFunc(s.ttl, func() {
		s.expire(guildID, entry, gen)
	})
}

// expire cancels the draft if the entry is still current and no
// mutation re-armed the deadline since this timer was set.
func (s *MemoryDraftStore) expire(guildID snowflake.ID, entry *draftEntry, gen uint64) {
	s.mu.Lock()
	current, ok := s.entries[guildID]
	s.mu.Unlock()
	if !ok || current != entry {
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.gen != gen || entry.draft == nil || entry.draft.Phase().Terminal() {
		return
	}
	_ = entry.draft.Cancel(0, true)
}

// Ensure MemoryDraftStore implements DraftRepository.
var _ domain.DraftRepository = (*MemoryDraftStore)(nil)
