package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// JoinLobbyInput contains the input for the Join use case.
type JoinLobbyInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// JoinLobbyOutput contains the result of the Join use case.
type JoinLobbyOutput struct {
	Count int // lobby size after joining
}

// LeaveLobbyInput contains the input for the Leave use case.
type LeaveLobbyInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// LeaveLobbyOutput contains the result of the Leave use case.
type LeaveLobbyOutput struct {
	Count int // lobby size after leaving
}

// LobbyMembersInput contains the input for the Members use case.
type LobbyMembersInput struct {
	GuildID snowflake.ID
}

// LobbyMembersOutput contains the result of the Members use case.
type LobbyMembersOutput struct {
	Members []RatedProfile // in join order
}

// ClearLobbyInput contains the input for the Clear use case.
type ClearLobbyInput struct {
	GuildID snowflake.ID
}

// LobbyService manages the per-guild set of players waiting for a
// match.
type LobbyService struct {
	profiles domain.ProfileRepository
	lobby    domain.LobbyRepository
	scale    ports.RatingScale
}

// NewLobbyService creates a new LobbyService.
func NewLobbyService(
	profiles domain.ProfileRepository,
	lobby domain.LobbyRepository,
	scale ports.RatingScale,
) *LobbyService {
	return &LobbyService{
		profiles: profiles,
		lobby:    lobby,
		scale:    scale,
	}
}

// Join adds a registered player to the guild lobby.
func (l *LobbyService) Join(ctx context.Context, input JoinLobbyInput) (*JoinLobbyOutput, error) {
	if _, err := l.profiles.Get(ctx, input.GuildID, input.UserID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	if err := l.lobby.Add(ctx, input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	count, err := l.count(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	return &JoinLobbyOutput{Count: count}, nil
}

// Leave removes a player from the guild lobby.
func (l *LobbyService) Leave(ctx context.Context, input LeaveLobbyInput) (*LeaveLobbyOutput, error) {
	if err := l.lobby.Remove(ctx, input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	count, err := l.count(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	return &LeaveLobbyOutput{Count: count}, nil
}

// Members returns the lobby members with their display ratings, in
// join order.
func (l *LobbyService) Members(ctx context.Context, input LobbyMembersInput) (*LobbyMembersOutput, error) {
	ids, err := l.lobby.Members(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("listing lobby: %w", err)
	}
	if len(ids) == 0 {
		return &LobbyMembersOutput{}, nil
	}

	profiles, err := l.profiles.List(ctx, input.GuildID, ids)
	if err != nil {
		return nil, fmt.Errorf("loading lobby profiles: %w", err)
	}

	members := make([]RatedProfile, len(profiles))
	for i, p := range profiles {
		members[i] = RatedProfile{
			Profile: p,
			Value:   l.scale.DisplayValue(ports.Rating{Mu: p.Mu, Sigma: p.Sigma}),
		}
	}
	return &LobbyMembersOutput{Members: members}, nil
}

// Clear empties the guild lobby.
func (l *LobbyService) Clear(ctx context.Context, input ClearLobbyInput) error {
	if err := l.lobby.Clear(ctx, input.GuildID); err != nil {
		return fmt.Errorf("clearing lobby: %w", err)
	}
	return nil
}

func (l *LobbyService) count(ctx context.Context, guildID snowflake.ID) (int, error) {
	ids, err := l.lobby.Members(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("listing lobby: %w", err)
	}
	return len(ids), nil
}
