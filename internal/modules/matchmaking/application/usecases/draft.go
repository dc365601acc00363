package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// StartDraftInput contains the input for the Start use case. Zero
// captain IDs leave the corresponding slot to automatic selection.
type StartDraftInput struct {
	GuildID  snowflake.ID
	Captain1 snowflake.ID
	Captain2 snowflake.ID
}

// StartDraftOutput contains the result of the Start use case.
type StartDraftOutput struct {
	Status   domain.DraftStatus
	Excluded []domain.Player // lobby members who did not make the pool
}

// ChooseSideInput contains the input for the ChooseSide use case.
type ChooseSideInput struct {
	GuildID snowflake.ID
	Actor   snowflake.ID
	Side    domain.Side
}

// ChooseFirstPickInput contains the input for the ChooseFirstPick use
// case.
type ChooseFirstPickInput struct {
	GuildID snowflake.ID
	Actor   snowflake.ID
	Slot    domain.PickSlot
}

// ChooseDraftOrderInput contains the input for the ChooseDraftOrder use
// case.
type ChooseDraftOrderInput struct {
	GuildID snowflake.ID
	Actor   snowflake.ID
	Slot    domain.PickSlot
}

// PickInput contains the input for the Pick use case.
type PickInput struct {
	GuildID snowflake.ID
	Actor   snowflake.ID
	Player  snowflake.ID
}

// PickOutput contains the result of the Pick use case. Plan is non-nil
// only for the completing pick.
type PickOutput struct {
	Status                domain.DraftStatus
	Plan                  *domain.MatchPlan
	RadiantWinProbability float64
}

// SetSidePreferenceInput contains the input for the SetSidePreference
// use case.
type SetSidePreferenceInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	Side    domain.Side
}

// CancelDraftInput contains the input for the Cancel use case.
// Authorized is set by the caller for guild moderators, letting
// non-captains cancel.
type CancelDraftInput struct {
	GuildID    snowflake.ID
	Actor      snowflake.ID
	Authorized bool
}

// DraftStatusInput contains the input for the Status use case.
type DraftStatusInput struct {
	GuildID snowflake.ID
}

// DraftProgressOutput is the common result of draft operations that
// advance or inspect a live draft.
type DraftProgressOutput struct {
	Status domain.DraftStatus
}

// DraftService orchestrates captain's drafts: one live draft per guild,
// negotiation and picks serialized through the draft repository, match
// recording and lobby cleanup on completion.
type DraftService struct {
	profiles domain.ProfileRepository
	lobby    domain.LobbyRepository
	drafts   domain.DraftRepository
	recorder ports.MatchRecorder
	scale    ports.RatingScale
	policy   domain.ExclusionPolicy
	factor   float64 // captain proximity factor

	mu  sync.Mutex // guards rng; *rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewDraftService creates a new DraftService. A nil policy falls back
// to domain.DefaultExclusionPolicy; a non-positive factor falls back to
// domain.DefaultCaptainProximityFactor.
func NewDraftService(
	profiles domain.ProfileRepository,
	lobby domain.LobbyRepository,
	drafts domain.DraftRepository,
	recorder ports.MatchRecorder,
	scale ports.RatingScale,
	policy domain.ExclusionPolicy,
	factor float64,
	rng *rand.Rand,
) *DraftService {
	if policy == nil {
		policy = domain.DefaultExclusionPolicy
	}
	return &DraftService{
		profiles: profiles,
		lobby:    lobby,
		drafts:   drafts,
		recorder: recorder,
		scale:    scale,
		policy:   policy,
		factor:   factor,
		rng:      rng,
	}
}

// Start selects the pool and captains from the lobby, runs the
// coinflip and installs the draft. Explicit captains must be eligible
// lobby members; they are pinned into the pool before the weighted
// draw.
func (s *DraftService) Start(ctx context.Context, input StartDraftInput) (*StartDraftOutput, error) {
	if _, err := s.drafts.View(ctx, input.GuildID); err == nil {
		return nil, domain.ErrDraftInProgress
	} else if !errors.Is(err, domain.ErrNoDraft) {
		return nil, err
	}

	candidates, _, err := loadCandidates(ctx, s.profiles, s.lobby, s.scale, input.GuildID)
	if err != nil {
		return nil, err
	}

	explicit := make([]snowflake.ID, 0, 2)
	for _, id := range []snowflake.ID{input.Captain1, input.Captain2} {
		if id == 0 {
			continue
		}
		if !playerSetHas(candidates, id) {
			return nil, domain.ErrInvalidCaptain
		}
		explicit = append(explicit, id)
	}

	s.mu.Lock()
	selected, excluded, err := domain.SelectPool(s.rng, candidates, domain.PoolSize, explicit)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	captains, err := domain.SelectCaptains(s.rng, selected, explicit, s.factor)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	draft, err := domain.NewDraft(s.rng, input.GuildID, selected, captains)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	status := draft.Status()
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
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

	return &StartDraftOutput{Status: status, Excluded: excluded}, nil
}

// ChooseSide forwards the side choice of the negotiation.
func (s *DraftService) ChooseSide(ctx context.Context, input ChooseSideInput) (*DraftProgressOutput, error) {
	return s.advance(ctx, input.GuildID, func(d *domain.DraftState) error {
		return d.ChooseSide(input.Actor, input.Side)
	})
}

// ChooseFirstPick forwards the in-game first-pick choice of the
// negotiation.
func (s *DraftService) ChooseFirstPick(ctx context.Context, input ChooseFirstPickInput) (*DraftProgressOutput, error) {
	return s.advance(ctx, input.GuildID, func(d *domain.DraftState) error {
		return d.ChooseFirstPick(input.Actor, input.Slot)
	})
}

// ChooseDraftOrder forwards the player draft order choice.
func (s *DraftService) ChooseDraftOrder(ctx context.Context, input ChooseDraftOrderInput) (*DraftProgressOutput, error) {
	return s.advance(ctx, input.GuildID, func(d *domain.DraftState) error {
		return d.ChooseDraftOrder(input.Actor, input.Slot)
	})
}

// SetSidePreference records an undrafted player's side wish.
func (s *DraftService) SetSidePreference(ctx context.Context, input SetSidePreferenceInput) (*DraftProgressOutput, error) {
	return s.advance(ctx, input.GuildID, func(d *domain.DraftState) error {
		return d.SetSidePreference(input.UserID, input.Side)
	})
}

// Pick drafts a player. The completing pick records the match, clears
// the lobby and discards the draft state.
func (s *DraftService) Pick(ctx context.Context, input PickInput) (*PickOutput, error) {
	var (
		status domain.DraftStatus
		plan   *domain.MatchPlan
	)
	err := s.drafts.Mutate(ctx, input.GuildID, func(d *domain.DraftState) error {
		if err := d.Pick(input.Actor, input.Player); err != nil {
			return err
		}
		status = d.Status()
		plan, _ = d.Plan()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return &PickOutput{Status: status}, nil
	}

	winProb, err := s.predictWin(ctx, plan)
	if err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, plan, winProb); err != nil {
		return nil, fmt.Errorf("recording match: %w", err)
	}
	if err := s.lobby.Clear(ctx, input.GuildID); err != nil {
		return nil, fmt.Errorf("clearing lobby: %w", err)
	}
	if err := s.drafts.Delete(ctx, input.GuildID); err != nil {
		return nil, err
	}

	return &PickOutput{
		Status:                status,
		Plan:                  plan,
		RadiantWinProbability: winProb,
	}, nil
}

// Cancel terminates the live draft and discards its state.
func (s *DraftService) Cancel(ctx context.Context, input CancelDraftInput) (*DraftProgressOutput, error) {
	out, err := s.advance(ctx, input.GuildID, func(d *domain.DraftState) error {
		return d.Cancel(input.Actor, input.Authorized)
	})
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Delete(ctx, input.GuildID); err != nil {
		return nil, err
	}
	return out, nil
}

// Status returns a snapshot of the live draft.
func (s *DraftService) Status(ctx context.Context, input DraftStatusInput) (*DraftProgressOutput, error) {
	status, err := s.drafts.View(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	return &DraftProgressOutput{Status: status}, nil
}

// advance runs a single state transition under the draft lock and
// returns the resulting snapshot.
func (s *DraftService) advance(
	ctx context.Context,
	guildID snowflake.ID,
	op func(*domain.DraftState) error,
) (*DraftProgressOutput, error) {
	var status domain.DraftStatus
	err := s.drafts.Mutate(ctx, guildID, func(d *domain.DraftState) error {
		if err := op(d); err != nil {
			return err
		}
		status = d.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DraftProgressOutput{Status: status}, nil
}

// predictWin resolves stored ratings for the plan's rosters and asks
// the scale for a Radiant win probability.
func (s *DraftService) predictWin(ctx context.Context, plan *domain.MatchPlan) (float64, error) {
	players := plan.Players()
	ids := make([]snowflake.ID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	profiles, err := s.profiles.List(ctx, plan.GuildID, ids)
	if err != nil {
		return 0, fmt.Errorf("loading plan profiles: %w", err)
	}

	ratings := make(map[snowflake.ID]ports.Rating, len(profiles))
	for _, p := range profiles {
		ratings[p.UserID] = ports.Rating{Mu: p.Mu, Sigma: p.Sigma}
	}
	return s.scale.PredictWin(
		teamRatings(plan.Radiant, ratings),
		teamRatings(plan.Dire, ratings),
	), nil
}

func playerSetHas(players []domain.Player, id snowflake.ID) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}
