package usecases

import "errors"

// Application-level errors for the matchmaking module. Repository and
// engine errors pass through from the domain package; these cover rules
// that only exist at the orchestration layer.
var (
	// ErrNotRegistered is returned when an operation requires a player
	// profile that does not exist yet.
	ErrNotRegistered = errors.New("you are not registered, use /register first")
)
