// Package tournament drives bulk self-play between bot personalities and
// keeps Elo standings. It is the stress harness for the engine: a full
// round-robin at default settings plays every pairing in both seats and
// thousands of games reuse nothing between them.
package tournament

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dropfour/internal/domain"
	"dropfour/internal/service/bot"
	"dropfour/pkg/uid"
)

const startingElo = 1200

// MatchStore receives one record per finished game.
type MatchStore interface {
	SaveMatch(ctx context.Context, match domain.MatchResult) error
}

// Options configures a run. Zero dimensions fall back to the 6x7x4 board.
type Options struct {
	Personalities   []bot.Personality
	GamesPerPairing int
	Rows            int
	Cols            int
	WinLength       int
	Seed            int64
}

// Standing is one personality's tournament line.
type Standing struct {
	Personality string
	Games       int
	Wins        int
	Losses      int
	Draws       int
	Elo         int
}

type Runner struct {
	opts  Options
	store MatchStore
}

func NewRunner(opts Options, store MatchStore) *Runner {
	if opts.GamesPerPairing <= 0 {
		opts.GamesPerPairing = 1
	}
	if len(opts.Personalities) == 0 {
		opts.Personalities = bot.AllPersonalities()
	}
	return &Runner{opts: opts, store: store}
}

// Run plays the full round-robin and returns standings sorted by Elo. The
// context is checked between games so a long run can be interrupted; games
// already saved stay saved.
func (r *Runner) Run(ctx context.Context) ([]Standing, error) {
	table := map[string]*Standing{}
	for _, p := range r.opts.Personalities {
		name := p.String()
		table[name] = &Standing{Personality: name, Elo: startingElo}
	}

	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := 0
	for i := 0; i < len(r.opts.Personalities); i++ {
		for j := i + 1; j < len(r.opts.Personalities); j++ {
			for n := 0; n < r.opts.GamesPerPairing; n++ {
				first, second := r.opts.Personalities[i], r.opts.Personalities[j]
				if n%2 == 1 {
					first, second = second, first
				}

				if err := ctx.Err(); err != nil {
					return standings(table), err
				}

				game++
				result, err := r.playGame(ctx, first, second, seed+int64(game))
				if err != nil {
					return standings(table), err
				}
				applyResult(table, result)
			}
		}
	}

	return standings(table), nil
}

// playGame runs one game to completion and persists the result.
func (r *Runner) playGame(ctx context.Context, first, second bot.Personality, seed int64) (domain.MatchResult, error) {
	g := domain.NewGame(r.opts.Rows, r.opts.Cols, r.opts.WinLength)
	engines := map[domain.Cell]*bot.Engine{
		domain.PlayerA: bot.NewEngineSeeded(seed),
		domain.PlayerB: bot.NewEngineSeeded(seed + 1),
	}
	seats := map[domain.Cell]bot.Personality{
		domain.PlayerA: first,
		domain.PlayerB: second,
	}

	start := time.Now()
	for !g.IsTerminal() {
		mover := g.CurrentPlayer()
		col, ok := engines[mover].BestMove(g, seats[mover])
		if !ok {
			return domain.MatchResult{}, fmt.Errorf("engine gave no move for %s in a live position", seats[mover])
		}
		if _, err := g.Commit(col); err != nil {
			return domain.MatchResult{}, fmt.Errorf("commit column %d for %s: %w", col, seats[mover], err)
		}
	}

	result := domain.MatchResult{
		ID:           uid.NewMatchID(),
		PlayedAt:     start,
		PersonalityA: first.String(),
		PersonalityB: second.String(),
		Moves:        g.MoveCount(),
		Duration:     time.Since(start),
	}
	if winner, ok := g.Winner(); ok {
		result.Winner = seats[winner].String()
	}

	if r.store != nil {
		if err := r.store.SaveMatch(ctx, result); err != nil {
			return domain.MatchResult{}, fmt.Errorf("save match %s: %w", result.ID, err)
		}
	}
	return result, nil
}

func applyResult(table map[string]*Standing, result domain.MatchResult) {
	a := table[result.PersonalityA]
	b := table[result.PersonalityB]
	a.Games++
	b.Games++

	scoreA := 0.5
	switch result.Winner {
	case result.PersonalityA:
		scoreA = 1.0
		a.Wins++
		b.Losses++
	case result.PersonalityB:
		scoreA = 0.0
		b.Wins++
		a.Losses++
	default:
		a.Draws++
		b.Draws++
	}

	newA := domain.CalculateElo(a.Elo, b.Elo, scoreA)
	newB := domain.CalculateElo(b.Elo, a.Elo, 1.0-scoreA)
	a.Elo, b.Elo = newA, newB
}

func standings(table map[string]*Standing) []Standing {
	rows := make([]Standing, 0, len(table))
	for _, s := range table {
		rows = append(rows, *s)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Elo != rows[j].Elo {
			return rows[i].Elo > rows[j].Elo
		}
		return rows[i].Personality < rows[j].Personality
	})
	return rows
}
