package domain

import (
	"math/rand/v2"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultCaptainProximityFactor controls how sharply the second
// captain's selection odds fall off as the value gap to the first
// captain grows.
const DefaultCaptainProximityFactor = 100.0

// proximityWeight is the second-captain selection weight for a
// candidate whose value differs from the first captain's by diff.
// Equal values weigh 1; a gap equal to factor halves the weight.
func proximityWeight(diff, factor float64) float64 {
	if diff < 0 {
		diff = -diff
	}
	return 1 / (1 + diff/factor)
}

// SelectCaptains picks two captains from the pool. Explicitly named
// captains are seated in the order given and must be eligible pool
// members; any open slot is filled from the pool's remaining
// captain-eligible players. The first auto-filled
// captain is drawn uniformly; the second is drawn with probability
// proportional to proximityWeight so that near-equal captains, and
// therefore near-equal drafted teams, are favored without being
// guaranteed. A non-positive factor falls back to
// DefaultCaptainProximityFactor.
func SelectCaptains(rng *rand.Rand, pool []Player, explicit []snowflake.ID, factor float64) ([2]Player, error) {
	var captains [2]Player
	if len(explicit) > 2 {
		return captains, ErrInvalidCaptain
	}
	if factor <= 0 {
		factor = DefaultCaptainProximityFactor
	}

	filled := 0
	for _, id := range explicit {
		if filled == 1 && captains[0].ID == id {
			return captains, ErrInvalidCaptain
		}
		idx := indexOfID(pool, id)
		if idx < 0 || !pool[idx].CaptainEligible {
			return captains, ErrInvalidCaptain
		}
		captains[filled] = pool[idx]
		filled++
	}

	for filled < 2 {
		candidates := make([]Player, 0, len(pool))
		for _, p := range pool {
			if !p.CaptainEligible {
				continue
			}
			if filled == 1 && p.ID == captains[0].ID {
				continue
			}
			candidates = append(candidates, p)
		}
		if len(candidates) == 0 {
			return captains, ErrInsufficientCaptains
		}

		if filled == 0 {
			captains[0] = candidates[rng.IntN(len(candidates))]
			filled++
			continue
		}

		total := 0.0
		for _, c := range candidates {
			total += proximityWeight(c.Value-captains[0].Value, factor)
		}
		pick := rng.Float64() * total
		chosen := candidates[len(candidates)-1]
		for _, c := range candidates {
			w := proximityWeight(c.Value-captains[0].Value, factor)
			if pick < w {
				chosen = c
				break
			}
			pick -= w
		}
		captains[1] = chosen
		filled++
	}

	return captains, nil
}

func indexOfID(players []Player, id snowflake.ID) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
