package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"dropfour/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "arena.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListMatches(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := domain.MatchResult{
		ID:           "match-1",
		PlayedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		PersonalityA: "enhanced-smart",
		PersonalityB: "easy",
		Winner:       "enhanced-smart",
		Moves:        19,
		Duration:     42 * time.Millisecond,
	}
	second := domain.MatchResult{
		ID:           "match-2",
		PlayedAt:     time.Date(2026, 8, 1, 10, 5, 0, 0, time.UTC),
		PersonalityA: "easy",
		PersonalityB: "enhanced-smart",
		Moves:        42,
		Duration:     61 * time.Millisecond,
	}

	if err := store.SaveMatch(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.SaveMatch(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	matches, err := store.ListMatches(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	got := matches[0]
	if got.ID != first.ID || got.PersonalityA != first.PersonalityA ||
		got.PersonalityB != first.PersonalityB || got.Winner != first.Winner {
		t.Fatalf("first match mangled: %+v", got)
	}
	if got.Moves != first.Moves || got.Duration != first.Duration {
		t.Fatalf("numeric fields mangled: %+v", got)
	}
	if got.PlayedAt.Unix() != first.PlayedAt.Unix() {
		t.Fatalf("timestamp mangled: got %v want %v", got.PlayedAt, first.PlayedAt)
	}
	if matches[1].Winner != "" {
		t.Fatalf("draw should have empty winner, got %q", matches[1].Winner)
	}
}

func TestSaveMatchRejectsDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	match := domain.MatchResult{ID: "dup", PlayedAt: time.Now(), Moves: 10}
	if err := store.SaveMatch(ctx, match); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveMatch(ctx, match); err == nil {
		t.Fatal("expected primary key violation")
	}
}

func TestWinCountsSkipDraws(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	results := []domain.MatchResult{
		{ID: "m1", PlayedAt: time.Now(), Winner: "easy", Moves: 20},
		{ID: "m2", PlayedAt: time.Now(), Winner: "easy", Moves: 25},
		{ID: "m3", PlayedAt: time.Now(), Winner: "smart-random", Moves: 17},
		{ID: "m4", PlayedAt: time.Now(), Winner: "", Moves: 42},
	}
	for _, r := range results {
		if err := store.SaveMatch(ctx, r); err != nil {
			t.Fatalf("save %s: %v", r.ID, err)
		}
	}

	counts, err := store.WinCounts(ctx)
	if err != nil {
		t.Fatalf("win counts: %v", err)
	}
	if counts["easy"] != 2 || counts["smart-random"] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Fatal("draws must not be counted")
	}
}
