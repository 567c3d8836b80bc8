// Package analysis holds the read-only threat evaluation used by the bot
// engine and by human-facing hints. Every function works on a private copy
// of the board it is handed and never writes back to the caller's state.
package analysis

import (
	"fmt"
	"sort"

	"dropfour/internal/domain"
)

// the four slopes a connection can run along
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// assertColumn guards against programmer error. Analysis has no error
// returns by contract, so a bad column index is a bug in the caller.
func assertColumn(b domain.Board, col int) {
	if col < 0 || col >= b.Cols() {
		panic(fmt.Sprintf("analysis: column %d out of range [0,%d)", col, b.Cols()))
	}
}

// WouldWinAt reports whether dropping player's disc in col wins on the spot.
// Works symmetrically for "would I win" and "would the opponent win".
// Returns false when the column is full.
func WouldWinAt(b domain.Board, col int, player domain.Cell) bool {
	assertColumn(b, col)
	row, ok := b.DropRow(col)
	if !ok {
		return false
	}
	return b.IsWinningPlacement(row, col, player)
}

// CountThreats simulates dropping player's disc in col and counts the live
// threat windows through the landing cell: win-length segments that hold no
// opposing disc. Returns 0 when the column is full.
func CountThreats(b domain.Board, col int, player domain.Cell) int {
	assertColumn(b, col)
	sim := b.Clone()
	row, err := sim.Drop(col, player)
	if err != nil {
		return 0
	}
	return countWindowsThrough(sim, row, col, player)
}

// countWindowsThrough counts viable windows containing (row, col) for
// player: segments of win length with zero opposing cells.
func countWindowsThrough(b domain.Board, row, col int, player domain.Cell) int {
	opponent := domain.Opponent(player)
	winLen := b.WinLength()
	count := 0

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for offset := -(winLen - 1); offset <= 0; offset++ {
			viable := true
			for i := 0; i < winLen; i++ {
				r := row + (offset+i)*dRow
				c := col + (offset+i)*dCol
				if r < 0 || r >= b.Rows() || c < 0 || c >= b.Cols() || b.At(r, c) == opponent {
					viable = false
					break
				}
			}
			if viable {
				count++
			}
		}
	}
	return count
}

// EvaluateThreatAt scores the square (row, col) for player by summing over
// the viable windows through it, weighted by how many of player's discs each
// window already holds. The square itself is counted as player's, so the
// score reflects the position after a hypothetical placement there.
func EvaluateThreatAt(b domain.Board, row, col int, player domain.Cell) int {
	if row < 0 || row >= b.Rows() {
		panic(fmt.Sprintf("analysis: row %d out of range [0,%d)", row, b.Rows()))
	}
	assertColumn(b, col)

	opponent := domain.Opponent(player)
	winLen := b.WinLength()
	score := 0

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for offset := -(winLen - 1); offset <= 0; offset++ {
			owned := 0
			viable := true
			for i := 0; i < winLen; i++ {
				r := row + (offset+i)*dRow
				c := col + (offset+i)*dCol
				if r < 0 || r >= b.Rows() || c < 0 || c >= b.Cols() || b.At(r, c) == opponent {
					viable = false
					break
				}
				if b.At(r, c) == player || (r == row && c == col) {
					owned++
				}
			}
			if viable {
				score += windowWeight(owned, winLen)
			}
		}
	}
	return score
}

// windowWeight grades a viable window by its filled count. One short of a
// win dominates everything below it.
func windowWeight(owned, winLen int) int {
	switch {
	case owned >= winLen:
		return 1000
	case owned == winLen-1:
		return 50
	case owned == winLen-2:
		return 10
	default:
		return 1
	}
}

// IsMoveUnsafe reports whether dropping player's disc in col hands the
// opponent an immediate winning reply. A move that wins on the spot is never
// unsafe. Full columns are reported unsafe so callers skip them.
func IsMoveUnsafe(b domain.Board, col int, player domain.Cell) bool {
	assertColumn(b, col)
	sim := b.Clone()
	row, err := sim.Drop(col, player)
	if err != nil {
		return true
	}
	if sim.IsWinningPlacement(row, col, player) {
		return false
	}

	opponent := domain.Opponent(player)
	for _, reply := range sim.ValidMoves() {
		if WouldWinAt(sim, reply, opponent) {
			return true
		}
	}
	return false
}

// ForkChance is a candidate move and the number of immediate winning squares
// it would leave player with.
type ForkChance struct {
	Column         int
	ThreatsCreated int
}

// ForkOpportunities simulates every valid column for player and counts the
// distinct winning replies each leaves open. Entries with at least one
// threat are returned, best first; two or more threats is a fork the
// opponent cannot fully block. Moves that win immediately are excluded —
// they belong to win detection, not fork planning.
func ForkOpportunities(b domain.Board, player domain.Cell) []ForkChance {
	chances := []ForkChance{}

	for _, col := range b.ValidMoves() {
		sim := b.Clone()
		row, err := sim.Drop(col, player)
		if err != nil {
			continue
		}
		if sim.IsWinningPlacement(row, col, player) {
			continue
		}

		threats := 0
		for _, next := range sim.ValidMoves() {
			if WouldWinAt(sim, next, player) {
				threats++
			}
		}
		if threats > 0 {
			chances = append(chances, ForkChance{Column: col, ThreatsCreated: threats})
		}
	}

	// best first; ascending column breaks ties deterministically
	sort.Slice(chances, func(i, j int) bool {
		if chances[i].ThreatsCreated != chances[j].ThreatsCreated {
			return chances[i].ThreatsCreated > chances[j].ThreatsCreated
		}
		return chances[i].Column < chances[j].Column
	})
	return chances
}
