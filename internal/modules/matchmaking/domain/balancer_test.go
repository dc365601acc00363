package domain

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/disgoorg/snowflake/v2"
)

// sortedAlternatingGap values the naive baseline split: players sorted
// by value descending, dealt alternately to the two sides, each side
// valued with its optimal role assignment.
func sortedAlternatingGap(t *testing.T, assigner *Assigner, pool []Player) float64 {
	t.Helper()

	byValue := slices.Clone(pool)
	slices.SortFunc(byValue, func(a, b Player) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})

	var sideA, sideB []Player
	for i, p := range byValue {
		if i%2 == 0 {
			sideA = append(sideA, p)
		} else {
			sideB = append(sideB, p)
		}
	}

	teamA, err := assigner.Best(sideA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	teamB, err := assigner.Best(sideB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return math.Abs(teamA.Value - teamB.Value)
}

func TestBalancer_BestPartitionShape(t *testing.T) {
	assigner := defaultAssigner(t)
	balancer := NewBalancer(assigner)
	guildID := snowflake.ID(42)

	plan, err := balancer.BestPartition(guildID, fullPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.GuildID != guildID {
		t.Errorf("expected guild %d, got %d", guildID, plan.GuildID)
	}
	if plan.Provenance != ProvenanceShuffle {
		t.Errorf("expected shuffle provenance, got %q", plan.Provenance)
	}
	if plan.FirstPick != SideNone {
		t.Errorf("expected no first pick on a shuffled plan, got %v", plan.FirstPick)
	}
	if len(plan.Radiant.Players) != TeamSize || len(plan.Dire.Players) != TeamSize {
		t.Fatalf(
			"expected %d players per team, got %d and %d",
			TeamSize, len(plan.Radiant.Players), len(plan.Dire.Players),
		)
	}
	if plan.Radiant.Roles == nil || plan.Dire.Roles == nil {
		t.Error("expected role assignments on both shuffled teams")
	}

	// Every pool player lands on exactly one team.
	seen := make(map[snowflake.ID]int)
	for _, p := range plan.Players() {
		seen[p.ID]++
	}
	for _, p := range fullPool() {
		if seen[p.ID] != 1 {
			t.Errorf("expected player %d on exactly one team, got %d", p.ID, seen[p.ID])
		}
	}
}

func TestBalancer_NeverWorseThanSortedAlternating(t *testing.T) {
	tests := []struct {
		name string
		pool []Player
	}{
		{name: "mixed preferences", pool: fullPool()},
		{
			name: "steep value curve",
			pool: []Player{
				testPlayer(1, 3000, RoleCarry),
				testPlayer(2, 2500, RoleMid),
				testPlayer(3, 2100, RoleCarry, RoleMid),
				testPlayer(4, 1800, RoleOfflane),
				testPlayer(5, 1500, RoleSoftSupport),
				testPlayer(6, 1200, RoleHardSupport),
				testPlayer(7, 900, RoleSoftSupport, RoleHardSupport),
				testPlayer(8, 600, RoleOfflane),
				testPlayer(9, 300),
				testPlayer(10, 100),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assigner := defaultAssigner(t)
			balancer := NewBalancer(assigner)

			plan, err := balancer.BestPartition(1, tt.pool)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			baseline := sortedAlternatingGap(t, assigner, tt.pool)
			if plan.ValueGap() > baseline+1e-9 {
				t.Errorf("expected gap <= baseline %v, got %v", baseline, plan.ValueGap())
			}
		})
	}
}

func TestBalancer_AnchorsLowestIDToRadiant(t *testing.T) {
	balancer := NewBalancer(defaultAssigner(t))

	plan, err := balancer.BestPartition(1, fullPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Radiant.Has(1) {
		t.Error("expected the lowest-ID player on Radiant")
	}
}

func TestBalancer_DeterministicAcrossInputOrders(t *testing.T) {
	balancer := NewBalancer(defaultAssigner(t))

	want, err := balancer.BestPartition(1, fullPool())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := testRNG(11)
	for trial := 0; trial < 10; trial++ {
		shuffled := fullPool()
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, err := balancer.BestPartition(1, shuffled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(playerIDs(got.Radiant.Players), playerIDs(want.Radiant.Players)) {
			t.Fatal("expected identical Radiant roster")
		}
		if !slices.Equal(playerIDs(got.Dire.Players), playerIDs(want.Dire.Players)) {
			t.Fatal("expected identical Dire roster")
		}
		if !slices.Equal(got.Radiant.Roles, want.Radiant.Roles) ||
			!slices.Equal(got.Dire.Roles, want.Dire.Roles) {
			t.Fatal("expected identical role assignments")
		}
		if got.ValueGap() != want.ValueGap() {
			t.Fatalf("expected gap %v, got %v", want.ValueGap(), got.ValueGap())
		}
	}
}

func TestBalancer_BestPartitionRejectsBadPools(t *testing.T) {
	balancer := NewBalancer(defaultAssigner(t))

	_, err := balancer.BestPartition(1, fullPool()[:9])
	if !errors.Is(err, ErrInvalidPoolSize) {
		t.Errorf("expected ErrInvalidPoolSize, got %v", err)
	}

	dup := fullPool()
	dup[9] = dup[0]
	_, err = balancer.BestPartition(1, dup)
	if !errors.Is(err, ErrInvalidPoolSize) {
		t.Errorf("expected ErrInvalidPoolSize for duplicate IDs, got %v", err)
	}
}
