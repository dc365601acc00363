package ports

import (
	"context"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// MatchRecorder appends finalized match plans to the match log.
type MatchRecorder interface {
	// Record persists the plan. radiantWinProb is the predicted
	// probability of a Radiant win at creation time.
	Record(ctx context.Context, plan *domain.MatchPlan, radiantWinProb float64) error
}
