package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

func newShuffleFixture(t *testing.T, memberIDs ...snowflake.ID) (*ShuffleService, *mockProfileRepo, *mockLobby, *mockRecorder) {
	t.Helper()
	repo := newMockProfileRepo()
	lobby := newMockLobby()
	recorder := &mockRecorder{}
	seedLobby(t, repo, lobby, memberIDs...)
	service := NewShuffleService(repo, lobby, testBalancer(t), recorder, mockScale{}, nil, testRNG(1))
	return service, repo, lobby, recorder
}

func TestShuffleService_Shuffle(t *testing.T) {
	ids := []snowflake.ID{201, 202, 203, 204, 205, 206, 207, 208, 209, 210}
	service, repo, lobby, recorder := newShuffleFixture(t, ids...)

	output, err := service.Shuffle(context.Background(), ShuffleInput{GuildID: testGuildID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := output.Plan
	if plan == nil {
		t.Fatal("expected a match plan")
	}
	if plan.Provenance != domain.ProvenanceShuffle {
		t.Errorf("Provenance = %v, want %v", plan.Provenance, domain.ProvenanceShuffle)
	}
	if len(plan.Radiant.Players) != domain.TeamSize || len(plan.Dire.Players) != domain.TeamSize {
		t.Fatalf("team sizes = %d/%d, want %d/%d",
			len(plan.Radiant.Players), len(plan.Dire.Players), domain.TeamSize, domain.TeamSize)
	}
	seen := make(map[snowflake.ID]bool)
	for _, p := range plan.Players() {
		seen[p.ID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("player %d missing from the plan", id)
		}
	}
	if len(output.Excluded) != 0 {
		t.Errorf("Excluded = %v, want empty for an exact-fit lobby", output.Excluded)
	}
	if output.RadiantWinProbability <= 0 || output.RadiantWinProbability >= 1 {
		t.Errorf("RadiantWinProbability = %v, want within (0, 1)", output.RadiantWinProbability)
	}

	if len(recorder.plans) != 1 || recorder.plans[0] != plan {
		t.Errorf("recorded plans = %v, want the returned plan", recorder.plans)
	}
	if recorder.probs[0] != output.RadiantWinProbability {
		t.Errorf("recorded probability = %v, want %v", recorder.probs[0], output.RadiantWinProbability)
	}

	// The lobby survives a shuffle so the guild can reroll.
	members, err := lobby.Members(context.Background(), testGuildID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != len(ids) {
		t.Errorf("lobby size after shuffle = %d, want %d", len(members), len(ids))
	}
	if len(lobby.cleared) != 0 {
		t.Errorf("lobby was cleared: %v", lobby.cleared)
	}

	if len(repo.exclusions) != 1 {
		t.Fatalf("ApplyExclusions calls = %d, want 1", len(repo.exclusions))
	}
}

func TestShuffleService_Shuffle_ExclusionLedger(t *testing.T) {
	ids := []snowflake.ID{201, 202, 203, 204, 205, 206, 207, 208, 209, 210, 211, 212}
	service, repo, _, _ := newShuffleFixture(t, ids...)
	for _, id := range []snowflake.ID{201, 211} {
		p := repo.profiles[id]
		p.ExclusionCount = 6
		repo.profiles[id] = p
	}

	output, err := service.Shuffle(context.Background(), ShuffleInput{GuildID: testGuildID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Excluded) != 2 {
		t.Fatalf("len(Excluded) = %d, want 2", len(output.Excluded))
	}

	counts := repo.exclusions[0]
	if len(counts) != len(ids) {
		t.Fatalf("ledger entries = %d, want %d", len(counts), len(ids))
	}
	for _, p := range output.Excluded {
		if got, want := counts[p.ID], p.ExclusionCount+4; got != want {
			t.Errorf("excluded player %d count = %d, want %d", p.ID, got, want)
		}
	}
	for _, p := range output.Plan.Players() {
		if got, want := counts[p.ID], p.ExclusionCount/2; got != want {
			t.Errorf("selected player %d count = %d, want %d", p.ID, got, want)
		}
	}
}

func TestShuffleService_Shuffle_InsufficientCandidates(t *testing.T) {
	service, repo, _, recorder := newShuffleFixture(t, 201, 202, 203, 204, 205, 206, 207, 208, 209)

	_, err := service.Shuffle(context.Background(), ShuffleInput{GuildID: testGuildID})
	if !errors.Is(err, domain.ErrInsufficientCandidates) {
		t.Fatalf("Shuffle() error = %v, want %v", err, domain.ErrInsufficientCandidates)
	}
	if len(recorder.plans) != 0 {
		t.Errorf("recorded plans = %v, want none", recorder.plans)
	}
	if len(repo.exclusions) != 0 {
		t.Errorf("ApplyExclusions calls = %d, want 0", len(repo.exclusions))
	}
}

func TestShuffleService_Shuffle_RecorderError(t *testing.T) {
	service, repo, _, recorder := newShuffleFixture(t,
		201, 202, 203, 204, 205, 206, 207, 208, 209, 210)
	recorder.recordErr = errors.New("db closed")

	_, err := service.Shuffle(context.Background(), ShuffleInput{GuildID: testGuildID})
	if err == nil {
		t.Fatal("expected an error")
	}
	// A failed recording must not advance the exclusion ledger.
	if len(repo.exclusions) != 0 {
		t.Errorf("ApplyExclusions calls = %d, want 0", len(repo.exclusions))
	}
}
