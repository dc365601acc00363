package domain

import "errors"

// Engine errors. All are local validation failures detected before any
// state mutation: a failed operation leaves draft state untouched and a
// failed one-shot computation has no effect at all.
var (
	// ErrInsufficientCandidates is returned by pool selection when the
	// candidate set cannot fill the requested pool.
	ErrInsufficientCandidates = errors.New("not enough candidates for the pool")

	// ErrInvalidPoolSize is returned when a pool does not contain exactly
	// the fixed number of distinct players the optimizer requires.
	ErrInvalidPoolSize = errors.New("pool must contain exactly 10 distinct players")

	// ErrInvalidTeamSize is returned when a team handed to the role
	// optimizer does not contain exactly 5 players.
	ErrInvalidTeamSize = errors.New("team must contain exactly 5 players")

	// ErrInsufficientCaptains is returned when fewer than two eligible
	// captains remain after honoring explicit choices.
	ErrInsufficientCaptains = errors.New("not enough eligible captains")

	// ErrInvalidCaptain is returned when an explicitly requested captain
	// is not in the pool, not eligible, or duplicated.
	ErrInvalidCaptain = errors.New("invalid captain")

	// ErrNotYourTurn is returned when a draft operation is attempted by
	// someone other than the captain it belongs to.
	ErrNotYourTurn = errors.New("it is not your turn")

	// ErrPlayerNotAvailable is returned when a pick or side preference
	// names a player who is not in the undrafted pool.
	ErrPlayerNotAvailable = errors.New("player is not available")

	// ErrInvalidPhase is returned when a draft operation is attempted in
	// a phase it does not belong to.
	ErrInvalidPhase = errors.New("operation not valid in the current draft phase")

	// ErrInvalidChoice is returned when a draft choice names a value the
	// current decision does not offer, such as a side of "none".
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrDraftCancelled is returned when an operation is attempted on a
	// cancelled draft.
	ErrDraftCancelled = errors.New("the draft has been cancelled")
)

// Keyed-store errors shared by the draft repository implementations.
var (
	// ErrDraftInProgress is returned when starting a draft while another
	// one is live for the same guild.
	ErrDraftInProgress = errors.New("a draft is already in progress")

	// ErrNoDraft is returned when operating on a guild with no live draft.
	ErrNoDraft = errors.New("no draft in progress")

	// ErrAlreadyInLobby is returned when joining a lobby twice.
	ErrAlreadyInLobby = errors.New("already in the lobby")

	// ErrNotInLobby is returned when leaving a lobby without having joined.
	ErrNotInLobby = errors.New("not in the lobby")

	// ErrProfileNotFound is returned by profile repositories when a
	// player has no stored profile.
	ErrProfileNotFound = errors.New("profile not found")
)
