package domain

import (
	"math"

	"github.com/disgoorg/snowflake/v2"
)

// Balancer splits a ten-player pool into two five-player teams so that
// the difference between the teams' role-adjusted values is minimal.
// The first player in canonical ID order is anchored to the Radiant
// side, which halves the search space to the 126 distinct splits and
// pins mirror-image partitions to a single representative.
type Balancer struct {
	assigner *Assigner
}

// NewBalancer creates a Balancer on top of the given role assigner.
func NewBalancer(assigner *Assigner) *Balancer {
	return &Balancer{assigner: assigner}
}

// BestPartition returns a shuffle-provenance match plan for the most
// balanced Radiant/Dire split of the given ten players. Each candidate
// team is valued via the assigner's optimal role assignment. Ties on
// value gap prefer fewer combined off-role placements, then the
// earliest split in enumeration order over the ID-sorted pool, so
// identical pools always produce identical partitions.
func (b *Balancer) BestPartition(guildID snowflake.ID, players []Player) (*MatchPlan, error) {
	if len(players) != PoolSize {
		return nil, ErrInvalidPoolSize
	}

	sorted := sortedByID(players)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return nil, ErrInvalidPoolSize
		}
	}

	anchor := sorted[0]
	rest := sorted[1:]

	var radiant, dire Team
	bestGap := math.Inf(1)
	bestOff := 0
	found := false

	n := len(rest)
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					sideA := []Player{anchor, rest[i], rest[j], rest[k], rest[l]}
					sideB := make([]Player, 0, TeamSize)
					for m, p := range rest {
						if m == i || m == j || m == k || m == l {
							continue
						}
						sideB = append(sideB, p)
					}

					teamA, err := b.assigner.Best(sideA)
					if err != nil {
						return nil, err
					}
					teamB, err := b.assigner.Best(sideB)
					if err != nil {
						return nil, err
					}

					gap := math.Abs(teamA.Value - teamB.Value)
					off := teamA.OffRole + teamB.OffRole
					if !found || gap < bestGap || (gap == bestGap && off < bestOff) {
						bestGap = gap
						bestOff = off
						radiant = teamA
						dire = teamB
						found = true
					}
				}
			}
		}
	}

	return newMatchPlan(guildID, ProvenanceShuffle, radiant, dire, SideNone), nil
}
