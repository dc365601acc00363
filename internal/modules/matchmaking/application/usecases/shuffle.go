package usecases

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// ShuffleInput contains the input for the Shuffle use case.
type ShuffleInput struct {
	GuildID snowflake.ID
}

// ShuffleOutput contains the result of the Shuffle use case.
type ShuffleOutput struct {
	Plan     *domain.MatchPlan
	Excluded []domain.Player // lobby members who did not make the pool
	// RadiantWinProbability is the predicted probability of a Radiant
	// win for the produced plan.
	RadiantWinProbability float64
}

// ShuffleService turns the guild lobby into a balanced match plan in
// one step: fairness-weighted pool selection, optimal partition,
// exclusion ledger update and match recording.
type ShuffleService struct {
	profiles domain.ProfileRepository
	lobby    domain.LobbyRepository
	balancer *domain.Balancer
	recorder ports.MatchRecorder
	scale    ports.RatingScale
	policy   domain.ExclusionPolicy

	mu  sync.Mutex // guards rng; *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewShuffleService creates a new ShuffleService. A nil policy falls
// back to domain.DefaultExclusionPolicy.
func NewShuffleService(
	profiles domain.ProfileRepository,
	lobby domain.LobbyRepository,
	balancer *domain.Balancer,
	recorder ports.MatchRecorder,
	scale ports.RatingScale,
	policy domain.ExclusionPolicy,
	rng *rand.Rand,
) *ShuffleService {
	if policy == nil {
		policy = domain.DefaultExclusionPolicy
	}
	return &ShuffleService{
		profiles: profiles,
		lobby:    lobby,
		balancer: balancer,
		recorder: recorder,
		scale:    scale,
		policy:   policy,
		rng:      rng,
	}
}

// Shuffle selects ten lobby members into a pool, partitions them into
// the most balanced teams, persists the plan and the exclusion ledger
// updates, and returns the enriched plan. The lobby itself is left
// untouched so the guild can immediately reroll.
func (s *ShuffleService) Shuffle(ctx context.Context, input ShuffleInput) (*ShuffleOutput, error) {
	candidates, ratings, err := loadCandidates(ctx, s.profiles, s.lobby, s.scale, input.GuildID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	selected, excluded, err := domain.SelectPool(s.rng, candidates, domain.PoolSize, nil)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	plan, err := s.balancer.BestPartition(input.GuildID, selected)
	if err != nil {
		return nil, fmt.Errorf("partitioning pool: %w", err)
	}

	winProb := s.scale.PredictWin(
		teamRatings(plan.Radiant, ratings),
		teamRatings(plan.Dire, ratings),
	)

	if err := s.recorder.Record(ctx, plan, winProb); err != nil {
		return nil, fmt.Errorf("recording match: %w", err)
	}

	counts := make(map[snowflake.ID]int, len(candidates))
	for _, p := range selected {
		counts[p.ID] = s.policy(p.ExclusionCount, true)
	}
	for _, p := range excluded {
		counts[p.ID] = s.policy(p.ExclusionCount, false)
	}
	if err := s.profiles.ApplyExclusions(ctx, input.GuildID, counts); err != nil {
		return nil, fmt.Errorf("updating exclusion ledger: %w", err)
	}

	return &ShuffleOutput{
		Plan:                  plan,
		Excluded:              excluded,
		RadiantWinProbability: winProb,
	}, nil
}
