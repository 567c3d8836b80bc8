package bot

import (
	"math/rand"
	"time"

	"dropfour/internal/domain"
	"dropfour/internal/service/analysis"
)

// Engine picks moves for the bot personalities. It keeps no state between
// decisions besides its random source, so one engine can serve any number of
// games; every call re-derives everything from the game snapshot it is given.
type Engine struct {
	rng *rand.Rand
}

func NewEngine() *Engine {
	return NewEngineSeeded(time.Now().UnixNano())
}

// NewEngineSeeded fixes the random source, which only the Easy personality
// consumes. Tournaments use this for reproducible runs.
func NewEngineSeeded(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// BestMove runs the four-stage decision procedure for the game's current
// player and returns the chosen column. ok is false when the game is over or
// the board is full; callers should check the game state before asking.
//
//  1. take an immediate win
//  2. block any column the opponent would win by occupying
//  3. drop columns that hand the opponent an immediate winning reply
//  4. personality tie-break over what is left
func (e *Engine) BestMove(g *domain.Game, personality Personality) (int, bool) {
	if g.IsTerminal() {
		return 0, false
	}

	board := g.BoardSnapshot()
	me := g.CurrentPlayer()
	opponent := domain.Opponent(me)

	valid := board.ValidMoves()
	if len(valid) == 0 {
		return 0, false
	}

	// stage 1: immediate win, lowest column first
	for _, col := range valid {
		if analysis.WouldWinAt(board, col, me) {
			return col, true
		}
	}

	// stage 2: any square the opponent would win by occupying gets taken,
	// which also closes single-move fork setups
	for _, col := range valid {
		if analysis.WouldWinAt(board, col, opponent) {
			return col, true
		}
	}

	candidates := safeOrAll(board, valid, me)

	switch personality {
	case Easy:
		return candidates[e.rng.Intn(len(candidates))], true
	case SmartRandom:
		return pickCenterOut(board, candidates), true
	case OffensiveMixed:
		return pickScored(candidates, func(col int) float64 {
			return 2*offensivePotential(board, col, me) + 0.1*centerScore(board, col)
		}), true
	case DefensiveMixed:
		return pickScored(candidates, func(col int) float64 {
			return 2*defensivePotential(board, col, me) + 0.1*centerScore(board, col)
		}), true
	case EnhancedSmart:
		return pickEnhanced(board, candidates, me), true
	default:
		return pickCenterOut(board, candidates), true
	}
}

// safeOrAll filters out columns where the opponent wins immediately after.
// When everything is unsafe the full set comes back: the engine always
// answers a live position with a move, even a losing one.
func safeOrAll(board domain.Board, valid []int, me domain.Cell) []int {
	safe := make([]int, 0, len(valid))
	for _, col := range valid {
		if !analysis.IsMoveUnsafe(board, col, me) {
			safe = append(safe, col)
		}
	}
	if len(safe) == 0 {
		return valid
	}
	return safe
}
