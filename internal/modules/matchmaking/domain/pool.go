package domain

import (
	"math/rand/v2"

	"github.com/disgoorg/snowflake/v2"
)

// ExclusionPolicy computes a player's next exclusion count after a pool
// selection, given whether they made the pool this time.
type ExclusionPolicy func(count int, selected bool) int

// DefaultExclusionPolicy halves the count for selected players and adds
// four for everyone left out, so repeatedly benched players accumulate
// weight quickly and burn it off over a couple of selections once they
// get in.
func DefaultExclusionPolicy(count int, selected bool) int {
	if selected {
		return count / 2
	}
	return count + 4
}

// SelectPool draws size players from candidates without replacement,
// weighting each candidate by 1 + ExclusionCount so that players passed
// over in earlier selections become progressively more likely to make
// the next pool. Players named in mustInclude are seated first and do
// not consume a draw. Both returned slices are in canonical ID order;
// excluded holds the candidates that did not make the pool.
func SelectPool(rng *rand.Rand, candidates []Player, size int, mustInclude []snowflake.ID) (selected, excluded []Player, err error) {
	if size <= 0 {
		return nil, nil, ErrInvalidPoolSize
	}
	if len(candidates) < size || len(mustInclude) > size {
		return nil, nil, ErrInsufficientCandidates
	}

	seen := make(map[snowflake.ID]struct{}, len(candidates))
	for _, p := range candidates {
		if _, dup := seen[p.ID]; dup {
			return nil, nil, ErrInvalidPoolSize
		}
		seen[p.ID] = struct{}{}
	}

	forced := make(map[snowflake.ID]struct{}, len(mustInclude))
	for _, id := range mustInclude {
		if _, ok := seen[id]; !ok {
			return nil, nil, ErrInsufficientCandidates
		}
		forced[id] = struct{}{}
	}

	selected = make([]Player, 0, size)
	remaining := make([]Player, 0, len(candidates))
	for _, p := range candidates {
		if _, ok := forced[p.ID]; ok {
			selected = append(selected, p)
		} else {
			remaining = append(remaining, p)
		}
	}

	for len(selected) < size {
		if len(remaining) == size-len(selected) {
			selected = append(selected, remaining...)
			remaining = remaining[:0]
			break
		}

		total := 0
		for _, p := range remaining {
			total += 1 + p.ExclusionCount
		}
		pick := rng.IntN(total)
		idx := 0
		for i, p := range remaining {
			w := 1 + p.ExclusionCount
			if pick < w {
				idx = i
				break
			}
			pick -= w
		}

		selected = append(selected, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return sortedByID(selected), sortedByID(remaining), nil
}
