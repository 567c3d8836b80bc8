package analysis

import (
	"sort"

	"dropfour/internal/domain"
)

// ParityReport classifies a player's threat squares by the parity of the row
// needed to fill them, counting from the bottom starting at 1. Under
// alternating play the first mover eventually collects odd squares and the
// second mover even squares, so a lasting threat on the right parity decides
// drawn-looking endgames.
type ParityReport struct {
	Player          domain.Cell
	OddThreats      []domain.Coord
	EvenThreats     []domain.Coord
	AffectedColumns []int
	Favorable       bool
}

// AnalyzeEvenOddThreats finds every empty square that would complete a win
// for player and buckets it by row parity. PlayerA is the first mover, so
// odd threats favor PlayerA and even threats favor PlayerB.
func AnalyzeEvenOddThreats(b domain.Board, player domain.Cell) ParityReport {
	report := ParityReport{Player: player}
	seen := map[int]bool{}

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.At(row, col) != domain.Empty {
				continue
			}
			if !b.IsWinningPlacement(row, col, player) {
				continue
			}

			square := domain.Coord{Row: row, Col: col}
			rowFromBottom := b.Rows() - row // 1-indexed from the gravity edge
			if rowFromBottom%2 == 1 {
				report.OddThreats = append(report.OddThreats, square)
			} else {
				report.EvenThreats = append(report.EvenThreats, square)
			}
			if !seen[col] {
				seen[col] = true
				report.AffectedColumns = append(report.AffectedColumns, col)
			}
		}
	}

	sort.Ints(report.AffectedColumns)

	if player == domain.PlayerA {
		report.Favorable = len(report.OddThreats) > 0
	} else {
		report.Favorable = len(report.EvenThreats) > 0
	}
	return report
}

// DetectZugzwang returns the columns player should avoid because the drop
// square sits directly below an opponent threat square: filling it lifts the
// opponent onto a winning placement. Ascending order.
func DetectZugzwang(b domain.Board, player domain.Cell) []int {
	opponent := domain.Opponent(player)
	columns := []int{}

	for _, col := range b.ValidMoves() {
		row, ok := b.DropRow(col)
		if !ok || row == 0 {
			continue
		}
		if b.IsWinningPlacement(row-1, col, opponent) {
			columns = append(columns, col)
		}
	}
	return columns
}
