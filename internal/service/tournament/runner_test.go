package tournament

import (
	"context"
	"testing"

	"dropfour/internal/domain"
	"dropfour/internal/service/bot"
)

type memStore struct {
	saved []domain.MatchResult
}

func (m *memStore) SaveMatch(_ context.Context, match domain.MatchResult) error {
	m.saved = append(m.saved, match)
	return nil
}

func TestRunPlaysEveryPairing(t *testing.T) {
	store := &memStore{}
	runner := NewRunner(Options{
		Personalities:   []bot.Personality{bot.SmartRandom, bot.EnhancedSmart},
		GamesPerPairing: 4,
		Seed:            42,
	}, store)

	standings, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(store.saved) != 4 {
		t.Fatalf("expected 4 saved matches, got %d", len(store.saved))
	}
	for _, m := range store.saved {
		if m.ID == "" {
			t.Fatal("match needs an id")
		}
		if m.Moves < 7 {
			t.Fatalf("a game cannot end in %d moves", m.Moves)
		}
		if m.PersonalityA == m.PersonalityB {
			t.Fatalf("pairing against itself: %+v", m)
		}
	}

	if len(standings) != 2 {
		t.Fatalf("expected 2 standings rows, got %v", standings)
	}
	for _, s := range standings {
		if s.Games != 4 {
			t.Fatalf("%s: expected 4 games, got %d", s.Personality, s.Games)
		}
		if s.Wins+s.Losses+s.Draws != s.Games {
			t.Fatalf("%s: results do not add up: %+v", s.Personality, s)
		}
	}
	if standings[0].Elo < standings[1].Elo {
		t.Fatal("standings must be sorted by rating")
	}
}

func TestRunAlternatesFirstMover(t *testing.T) {
	store := &memStore{}
	runner := NewRunner(Options{
		Personalities:   []bot.Personality{bot.Easy, bot.DefensiveMixed},
		GamesPerPairing: 2,
		Seed:            7,
	}, store)

	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(store.saved))
	}
	if store.saved[0].PersonalityA != bot.Easy.String() {
		t.Fatalf("game 1 should seat Easy first, got %s", store.saved[0].PersonalityA)
	}
	if store.saved[1].PersonalityA != bot.DefensiveMixed.String() {
		t.Fatalf("game 2 should swap seats, got %s", store.saved[1].PersonalityA)
	}
}

func TestRunFullRoundRobin(t *testing.T) {
	store := &memStore{}
	runner := NewRunner(Options{GamesPerPairing: 1, Seed: 3}, store)

	standings, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// five personalities, C(5,2) pairings, one game each
	if len(store.saved) != 10 {
		t.Fatalf("expected 10 matches, got %d", len(store.saved))
	}
	if len(standings) != 5 {
		t.Fatalf("expected 5 standings rows, got %d", len(standings))
	}
	for _, s := range standings {
		if s.Games != 4 {
			t.Fatalf("%s: each personality meets four others, got %d games", s.Personality, s.Games)
		}
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &memStore{}
	runner := NewRunner(Options{GamesPerPairing: 5, Seed: 1}, store)

	if _, err := runner.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
	if len(store.saved) != 0 {
		t.Fatalf("no games should be saved after early cancellation, got %d", len(store.saved))
	}
}

func TestEveryGameTerminates(t *testing.T) {
	store := &memStore{}
	runner := NewRunner(Options{
		Personalities:   []bot.Personality{bot.Easy, bot.Easy},
		GamesPerPairing: 1,
		Seed:            99,
	}, store)

	// Easy against Easy is the worst case for game length; it must still
	// finish by filling the board
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, m := range store.saved {
		if m.Moves > 42 {
			t.Fatalf("game exceeded the board: %+v", m)
		}
	}
}
