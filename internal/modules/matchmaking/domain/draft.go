package domain

import (
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// draftPicks is the number of picks in a full draft: everyone in the
// pool except the two captains.
const draftPicks = PoolSize - 2

// snakeTurns is the fixed 1-2-2-2-1 snake pattern over the eight picks,
// expressed as 0 for the first-drafting captain and 1 for the other.
var snakeTurns = [draftPicks]int{0, 1, 1, 0, 0, 1, 1, 0}

// DraftPhase tracks where a draft is in its lifecycle.
type DraftPhase int

const (
	// PhaseCoinflip is the notional initial phase; NewDraft resolves the
	// coinflip immediately, so a live draft is never observed in it.
	PhaseCoinflip DraftPhase = iota
	PhaseWinnerChoice
	PhaseLoserChoice
	PhasePlayerDraftOrder
	PhaseDrafting
	PhaseComplete
	PhaseCancelled
)

// String returns a short lowercase phase name for logs and embeds.
func (p DraftPhase) String() string {
	switch p {
	case PhaseCoinflip:
		return "coinflip"
	case PhaseWinnerChoice:
		return "winner choice"
	case PhaseLoserChoice:
		return "loser choice"
	case PhasePlayerDraftOrder:
		return "draft order choice"
	case PhaseDrafting:
		return "drafting"
	case PhaseComplete:
		return "complete"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the draft has ended, successfully or not.
func (p DraftPhase) Terminal() bool {
	return p == PhaseComplete || p == PhaseCancelled
}

// PickSlot is a choice between acting first or second, used both for
// the in-game first pick and for the player draft order.
type PickSlot int

const (
	SlotFirst PickSlot = iota + 1
	SlotSecond
)

// String returns "first" or "second".
func (s PickSlot) String() string {
	switch s {
	case SlotFirst:
		return "first"
	case SlotSecond:
		return "second"
	default:
		return "unknown"
	}
}

func (s PickSlot) valid() bool {
	return s == SlotFirst || s == SlotSecond
}

// ParsePickSlot converts user input to a PickSlot.
func ParsePickSlot(s string) (PickSlot, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "1":
		return SlotFirst, true
	case "second", "2":
		return SlotSecond, true
	default:
		return 0, false
	}
}

// loserOption is the choice dimension reserved for the coinflip loser
// after the winner has taken the other one.
type loserOption int

const (
	reservedNone loserOption = iota
	reservedSide
	reservedFirstPick
)

// DraftState is the mutable state of one captain's draft. All methods
// validate fully before mutating, so a failed operation leaves the
// state exactly as it was. A DraftState is not safe for concurrent use;
// callers serialize access through the draft store.
//
// Lifecycle: NewDraft resolves the coinflip and enters WinnerChoice.
// The winner takes one of side / first pick, the loser supplies the
// other, the lower-valued captain chooses the player draft order, and
// the captains then alternate picks in the 1-2-2-2-1 snake until all
// eight non-captains are drafted, which produces the MatchPlan.
type DraftState struct {
	guildID   snowflake.ID
	captains  [2]Player
	sides     [2]Side
	winner    int
	reserved  loserOption
	firstPick int // captain index holding the in-game first pick; -1 until chosen
	order     [draftPicks]int
	picksMade int
	teams     [2][]Player
	available []Player
	prefs     map[snowflake.ID]Side
	phase     DraftPhase
	plan      *MatchPlan
	createdAt time.Time
}

// NewDraft validates the pool and captains, resolves the coinflip with
// the injected rng, and returns a draft awaiting the winner's choice.
func NewDraft(rng *rand.Rand, guildID snowflake.ID, pool []Player, captains [2]Player) (*DraftState, error) {
	if len(pool) != PoolSize {
		return nil, ErrInvalidPoolSize
	}
	sorted := sortedByID(pool)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, ErrInvalidPoolSize
		}
	}
	if captains[0].ID == captains[1].ID {
		return nil, ErrInvalidCaptain
	}
	for i, c := range captains {
		idx := indexOfID(sorted, c.ID)
		if idx < 0 {
			return nil, ErrInvalidCaptain
		}
		captains[i] = sorted[idx]
	}

	available := make([]Player, 0, draftPicks)
	for _, p := range sorted {
		if p.ID != captains[0].ID && p.ID != captains[1].ID {
			available = append(available, p)
		}
	}

	return &DraftState{
		guildID:   guildID,
		captains:  captains,
		winner:    rng.IntN(2),
		firstPick: -1,
		teams:     [2][]Player{make([]Player, 0, draftPicks/2), make([]Player, 0, draftPicks/2)},
		available: available,
		prefs:     make(map[snowflake.ID]Side),
		phase:     PhaseWinnerChoice,
		createdAt: time.Now().UTC(),
	}, nil
}

// GuildID returns the guild the draft belongs to.
func (d *DraftState) GuildID() snowflake.ID {
	return d.guildID
}

// Phase returns the current phase.
func (d *DraftState) Phase() DraftPhase {
	return d.phase
}

// Plan returns the finished match plan once the draft is complete.
func (d *DraftState) Plan() (*MatchPlan, bool) {
	return d.plan, d.plan != nil
}

func (d *DraftState) loser() int {
	return 1 - d.winner
}

// orderChooser is the captain who picks the player draft order: the
// lower-valued one, captain 1 on ties.
func (d *DraftState) orderChooser() int {
	if d.captains[1].Value < d.captains[0].Value {
		return 1
	}
	return 0
}

// assignSides sets the chooser's side and gives the opposite side to
// the other captain.
func (d *DraftState) assignSides(chooser int, side Side) {
	d.sides[chooser] = side
	d.sides[1-chooser] = side.Opposite()
}

// resolveChoices closes the winner/loser negotiation once both the
// sides and the first pick are known.
func (d *DraftState) resolveChoices() {
	d.reserved = reservedNone
	d.phase = PhasePlayerDraftOrder
}

// ChooseSide is the side half of the coinflip negotiation. In
// WinnerChoice the winner takes a side, reserving the first-pick choice
// for the loser; in LoserChoice it is only valid when the side choice
// is the reserved one.
func (d *DraftState) ChooseSide(actor snowflake.ID, side Side) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	switch d.phase {
	case PhaseWinnerChoice:
		if actor != d.captains[d.winner].ID {
			return ErrNotYourTurn
		}
		if side != SideRadiant && side != SideDire {
			return ErrInvalidChoice
		}
		d.assignSides(d.winner, side)
		d.reserved = reservedFirstPick
		d.phase = PhaseLoserChoice
		return nil
	case PhaseLoserChoice:
		if d.reserved != reservedSide {
			return ErrInvalidPhase
		}
		if actor != d.captains[d.loser()].ID {
			return ErrNotYourTurn
		}
		if side != SideRadiant && side != SideDire {
			return ErrInvalidChoice
		}
		d.assignSides(d.loser(), side)
		d.resolveChoices()
		return nil
	default:
		return ErrInvalidPhase
	}
}

// ChooseFirstPick is the first-pick half of the coinflip negotiation.
// The slot states whether the chooser's own side picks first in-game.
func (d *DraftState) ChooseFirstPick(actor snowflake.ID, slot PickSlot) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	switch d.phase {
	case PhaseWinnerChoice:
		if actor != d.captains[d.winner].ID {
			return ErrNotYourTurn
		}
		if !slot.valid() {
			return ErrInvalidChoice
		}
		d.firstPick = d.winner
		if slot == SlotSecond {
			d.firstPick = d.loser()
		}
		d.reserved = reservedSide
		d.phase = PhaseLoserChoice
		return nil
	case PhaseLoserChoice:
		if d.reserved != reservedFirstPick {
			return ErrInvalidPhase
		}
		if actor != d.captains[d.loser()].ID {
			return ErrNotYourTurn
		}
		if !slot.valid() {
			return ErrInvalidChoice
		}
		d.firstPick = d.loser()
		if slot == SlotSecond {
			d.firstPick = d.winner
		}
		d.resolveChoices()
		return nil
	default:
		return ErrInvalidPhase
	}
}

// ChooseDraftOrder lets the lower-valued captain decide whether they
// draft players first or second, fixing the snake turn table.
func (d *DraftState) ChooseDraftOrder(actor snowflake.ID, slot PickSlot) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	if d.phase != PhasePlayerDraftOrder {
		return ErrInvalidPhase
	}
	chooser := d.orderChooser()
	if actor != d.captains[chooser].ID {
		return ErrNotYourTurn
	}
	if !slot.valid() {
		return ErrInvalidChoice
	}

	first := chooser
	if slot == SlotSecond {
		first = 1 - chooser
	}
	for i, turn := range snakeTurns {
		if turn == 0 {
			d.order[i] = first
		} else {
			d.order[i] = 1 - first
		}
	}
	d.phase = PhaseDrafting
	return nil
}

// Pick drafts an available player onto the acting captain's team. The
// eighth pick completes the draft and produces the match plan.
func (d *DraftState) Pick(actor, playerID snowflake.ID) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	if d.phase != PhaseDrafting {
		return ErrInvalidPhase
	}
	holder := d.order[d.picksMade]
	if actor != d.captains[holder].ID {
		return ErrNotYourTurn
	}
	idx := indexOfID(d.available, playerID)
	if idx < 0 {
		return ErrPlayerNotAvailable
	}

	picked := d.available[idx]
	d.available = append(d.available[:idx], d.available[idx+1:]...)
	d.teams[holder] = append(d.teams[holder], picked)
	delete(d.prefs, picked.ID)
	d.picksMade++

	if d.picksMade == draftPicks {
		d.complete()
	}
	return nil
}

// complete assembles the final rosters and stamps the match plan.
func (d *DraftState) complete() {
	var rosters [2]Team
	for i := range d.captains {
		players := make([]Player, 0, TeamSize)
		players = append(players, d.captains[i])
		players = append(players, d.teams[i]...)
		rosters[i] = newUnassignedTeam(players)
	}

	radiant, dire := rosters[0], rosters[1]
	if d.sides[0] != SideRadiant {
		radiant, dire = rosters[1], rosters[0]
	}
	d.plan = newMatchPlan(d.guildID, ProvenanceDraft, radiant, dire, d.sides[d.firstPick])
	d.phase = PhaseComplete
}

// SetSidePreference records which side an undrafted player would like
// to end up on. It is informational only and never constrains picks.
// SideNone clears the preference.
func (d *DraftState) SetSidePreference(playerID snowflake.ID, side Side) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	if d.phase.Terminal() {
		return ErrInvalidPhase
	}
	if side != SideNone && side != SideRadiant && side != SideDire {
		return ErrInvalidChoice
	}
	if !containsID(d.available, playerID) {
		return ErrPlayerNotAvailable
	}

	if side == SideNone {
		delete(d.prefs, playerID)
	} else {
		d.prefs[playerID] = side
	}
	return nil
}

// Cancel terminates the draft. Captains may always cancel their own
// draft; anyone else needs the authorized flag, which the caller grants
// to guild moderators.
func (d *DraftState) Cancel(actor snowflake.ID, authorized bool) error {
	if d.phase == PhaseCancelled {
		return ErrDraftCancelled
	}
	if d.phase.Terminal() {
		return ErrInvalidPhase
	}
	if !authorized && actor != d.captains[0].ID && actor != d.captains[1].ID {
		return ErrNotYourTurn
	}
	d.phase = PhaseCancelled
	return nil
}

// PendingChoice identifies the decision the draft is waiting on.
type PendingChoice int

const (
	ChoiceNone PendingChoice = iota
	// ChoiceSideOrFirstPick is the winner's open pick of either dimension.
	ChoiceSideOrFirstPick
	// ChoiceSide is the loser's reserved side choice.
	ChoiceSide
	// ChoiceFirstPick is the loser's reserved first-pick choice.
	ChoiceFirstPick
	ChoiceDraftOrder
	ChoicePick
)

// CaptainStatus is one captain's slice of a draft snapshot.
type CaptainStatus struct {
	Player Player
	Side   Side
	Picks  []Player
}

// DraftStatus is a point-in-time snapshot of a draft, safe to hold and
// render after the draft has moved on. Players inside it are value
// copies; the engine treats them as immutable throughout.
type DraftStatus struct {
	GuildID        snowflake.ID
	Phase          DraftPhase
	Captains       [2]CaptainStatus
	CoinflipWinner Player
	FirstPick      Side // SideNone until both sides and the first pick are known
	Pending        PendingChoice
	NextActor      Player // zero value in terminal phases
	PicksRemaining int    // consecutive picks left for NextActor while drafting
	PicksMade      int
	Available      []Player
	Preferences    map[snowflake.ID]Side
	CreatedAt      time.Time
}

// Status returns a deep snapshot of the draft. It never mutates state
// and the returned value shares no mutable structure with the draft.
func (d *DraftState) Status() DraftStatus {
	st := DraftStatus{
		GuildID:        d.guildID,
		Phase:          d.phase,
		CoinflipWinner: d.captains[d.winner],
		PicksMade:      d.picksMade,
		Available:      slices.Clone(d.available),
		Preferences:    maps.Clone(d.prefs),
		CreatedAt:      d.createdAt,
	}
	for i := range d.captains {
		st.Captains[i] = CaptainStatus{
			Player: d.captains[i],
			Side:   d.sides[i],
			Picks:  slices.Clone(d.teams[i]),
		}
	}
	if d.firstPick >= 0 && d.sides[d.firstPick] != SideNone {
		st.FirstPick = d.sides[d.firstPick]
	}

	switch d.phase {
	case PhaseWinnerChoice:
		st.Pending = ChoiceSideOrFirstPick
		st.NextActor = d.captains[d.winner]
	case PhaseLoserChoice:
		st.Pending = ChoiceSide
		if d.reserved == reservedFirstPick {
			st.Pending = ChoiceFirstPick
		}
		st.NextActor = d.captains[d.loser()]
	case PhasePlayerDraftOrder:
		st.Pending = ChoiceDraftOrder
		st.NextActor = d.captains[d.orderChooser()]
	case PhaseDrafting:
		holder := d.order[d.picksMade]
		st.Pending = ChoicePick
		st.NextActor = d.captains[holder]
		for i := d.picksMade; i < draftPicks && d.order[i] == holder; i++ {
			st.PicksRemaining++
		}
	}
	return st
}
