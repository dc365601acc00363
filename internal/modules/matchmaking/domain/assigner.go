package domain

import (
	"math"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Default off-role penalty constants, matching the league's tuned values.
const (
	DefaultOffRoleMultiplier  = 0.95
	DefaultOffRoleFlatPenalty = 350.0
)

// DefaultAssignmentCacheSize bounds the role-assignment cache when no
// explicit size is configured.
const DefaultAssignmentCacheSize = 512

// PenaltyConfig controls how much of a player's value is lost when they
// are assigned a role outside their stated preferences.
type PenaltyConfig struct {
	// OffRoleMultiplier scales the raw value of an off-role player.
	// Expected in (0, 1]; 0.95 means 95% effectiveness off-role.
	OffRoleMultiplier float64

	// OffRoleFlatPenalty is subtracted from the scaled value of an
	// off-role player. The adjusted contribution never drops below zero.
	OffRoleFlatPenalty float64
}

// DefaultPenaltyConfig returns the standard penalty constants.
func DefaultPenaltyConfig() PenaltyConfig {
	return PenaltyConfig{
		OffRoleMultiplier:  DefaultOffRoleMultiplier,
		OffRoleFlatPenalty: DefaultOffRoleFlatPenalty,
	}
}

// adjusted returns an off-role player's contribution for the given raw value.
func (c PenaltyConfig) adjusted(value float64) float64 {
	return math.Max(0, value*c.OffRoleMultiplier-c.OffRoleFlatPenalty)
}

// fingerprint distinguishes cache entries produced under different
// penalty constants so assigners sharing nothing never cross-pollinate
// through copied cache keys.
func (c PenaltyConfig) fingerprint() string {
	return strconv.FormatUint(math.Float64bits(c.OffRoleMultiplier), 16) +
		":" + strconv.FormatUint(math.Float64bits(c.OffRoleFlatPenalty), 16)
}

// assignment is a cached optimal role assignment for one canonical
// (ID-sorted) five-player set.
type assignment struct {
	roles   [TeamSize]Role
	cost    float64
	offRole int
}

// Assigner finds the minimum-cost mapping of five players onto the five
// roles. It exhaustively evaluates all 120 permutations; the search
// space is small and fixed, so no pruning is needed. Results are
// memoized in a bounded LRU keyed by the unordered player set and the
// penalty configuration, because the same five-player subset recurs
// across many splits during partition search.
//
// An Assigner is safe for concurrent use; the cache is internally
// synchronized and everything else is immutable after construction.
type Assigner struct {
	penalties PenaltyConfig
	cache     *lru.Cache[string, assignment]
}

// NewAssigner creates an Assigner with the given penalty configuration
// and cache capacity. A non-positive cacheSize falls back to
// DefaultAssignmentCacheSize.
func NewAssigner(penalties PenaltyConfig, cacheSize int) (*Assigner, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultAssignmentCacheSize
	}
	cache, err := lru.New[string, assignment](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Assigner{penalties: penalties, cache: cache}, nil
}

// Penalties returns the penalty configuration the assigner was built with.
func (a *Assigner) Penalties() PenaltyConfig {
	return a.penalties
}

// Best returns the team with the minimum-cost role assignment for the
// given five players. Cost is the total value lost to off-role
// placement, so the returned team's Value is the raw sum minus cost.
// Ties between permutations are broken by lexicographic role order over
// the ID-sorted players, making the result reproducible for any input
// ordering of the same set.
func (a *Assigner) Best(players []Player) (Team, error) {
	if len(players) != TeamSize {
		return Team{}, ErrInvalidTeamSize
	}

	sorted := sortedByID(players)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return Team{}, ErrInvalidTeamSize
		}
	}

	key := a.cacheKey(sorted)
	best, ok := a.cache.Get(key)
	if !ok {
		best = a.search(sorted)
		a.cache.Add(key, best)
	}

	raw := 0.0
	for _, p := range sorted {
		raw += p.Value
	}

	return Team{
		Players: sorted,
		Roles:   best.roles[:],
		Value:   raw - best.cost,
		OffRole: best.offRole,
	}, nil
}

// search evaluates every role permutation over the canonical player
// order and keeps the first minimum encountered.
func (a *Assigner) search(sorted []Player) assignment {
	best := assignment{cost: math.Inf(1)}
	for _, perm := range rolePermutations {
		cost := 0.0
		off := 0
		for i, p := range sorted {
			if p.HasRole(perm[i]) {
				continue
			}
			cost += p.Value - a.penalties.adjusted(p.Value)
			off++
		}
		if cost < best.cost {
			best = assignment{roles: perm, cost: cost, offRole: off}
		}
	}
	return best
}

// cacheKey builds a canonical fingerprint of the player set: sorted IDs
// with value bits and role masks, plus the penalty fingerprint.
func (a *Assigner) cacheKey(sorted []Player) string {
	var b strings.Builder
	b.Grow(len(sorted)*40 + 40)
	for _, p := range sorted {
		b.WriteString(strconv.FormatUint(uint64(p.ID), 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(math.Float64bits(p.Value), 16))
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(roleMask(p.Roles)), 16))
		b.WriteByte('|')
	}
	b.WriteString(a.penalties.fingerprint())
	return b.String()
}

// rolePermutations holds all 120 orderings of the five roles in
// lexicographic order, computed once at startup.
var rolePermutations = buildRolePermutations()

func buildRolePermutations() [][TeamSize]Role {
	roles := AllRoles()
	perms := make([][TeamSize]Role, 0, 120)

	var current [TeamSize]Role
	var used [TeamSize]bool
	var walk func(depth int)
	walk = func(depth int) {
		if depth == TeamSize {
			perms = append(perms, current)
			return
		}
		for i := 0; i < TeamSize; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current[depth] = roles[i]
			walk(depth + 1)
			used[i] = false
		}
	}
	walk(0)
	return perms
}
