package ports

// Rating is a stored skill estimate as kept in the player directory.
type Rating struct {
	Mu    float64
	Sigma float64
}

// RatingScale converts stored rating estimates into the scalar values
// the engine compares, and predicts outcomes for finalized plans. The
// engine itself never sees mu/sigma; it works on display values only.
type RatingScale interface {
	// DisplayValue converts a rating to the display-scale scalar.
	// Never negative.
	DisplayValue(r Rating) float64

	// PredictWin returns the probability that the radiant roster beats
	// the dire roster.
	PredictWin(radiant, dire []Rating) float64
}
