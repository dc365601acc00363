package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// loadCandidates resolves the guild lobby into engine player snapshots
// plus a rating lookup kept around for win prediction once teams are
// known. Lobby membership requires registration, so every member is
// expected to resolve to a profile.
func loadCandidates(
	ctx context.Context,
	profiles domain.ProfileRepository,
	lobby domain.LobbyRepository,
	scale ports.RatingScale,
	guildID snowflake.ID,
) ([]domain.Player, map[snowflake.ID]ports.Rating, error) {
	ids, err := lobby.Members(ctx, guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing lobby: %w", err)
	}

	ratings := make(map[snowflake.ID]ports.Rating, len(ids))
	if len(ids) == 0 {
		return nil, ratings, nil
	}

	list, err := profiles.List(ctx, guildID, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("loading lobby profiles: %w", err)
	}

	players := make([]domain.Player, len(list))
	for i, p := range list {
		r := ports.Rating{Mu: p.Mu, Sigma: p.Sigma}
		ratings[p.UserID] = r
		players[i] = p.AsPlayer(scale.DisplayValue(r))
	}
	return players, ratings, nil
}

// teamRatings projects a finalized team onto the stored ratings of its
// players, in roster order.
func teamRatings(team domain.Team, ratings map[snowflake.ID]ports.Rating) []ports.Rating {
	out := make([]ports.Rating, len(team.Players))
	for i, p := range team.Players {
		out[i] = ratings[p.ID]
	}
	return out
}
