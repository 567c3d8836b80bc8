package game

import (
	"dropfour/internal/domain"
	"dropfour/internal/service/analysis"
)

// Hint describes one candidate column for the current player. The UI sorts
// or highlights these however it likes; the engine only ranks.
type Hint struct {
	Column     int
	Score      int
	WinsNow    bool  // playing here wins immediately
	BlocksLoss bool  // the opponent wins here if left open
	Unsafe     bool  // playing here gives the opponent an immediate win
	Threats    int   // live windows a disc here would join
}

// Hints evaluates every valid column for the player to move. Read-only: the
// session is untouched no matter how often this is called.
func (s *Session) Hints() []Hint {
	if s.game.IsTerminal() {
		return []Hint{}
	}

	board := s.game.BoardSnapshot()
	me := s.game.CurrentPlayer()
	opponent := domain.Opponent(me)

	hints := []Hint{}
	for _, col := range board.ValidMoves() {
		row, _ := board.DropRow(col)
		hints = append(hints, Hint{
			Column:     col,
			Score:      analysis.EvaluateThreatAt(board, row, col, me),
			WinsNow:    analysis.WouldWinAt(board, col, me),
			BlocksLoss: analysis.WouldWinAt(board, col, opponent),
			Unsafe:     analysis.IsMoveUnsafe(board, col, me),
			Threats:    analysis.CountThreats(board, col, me),
		})
	}
	return hints
}

// ForkChances exposes fork detection for the assistance layer.
func (s *Session) ForkChances() []analysis.ForkChance {
	return analysis.ForkOpportunities(s.game.BoardSnapshot(), s.game.CurrentPlayer())
}

// ParityOutlook exposes the even/odd threat classification for the player to
// move.
func (s *Session) ParityOutlook() analysis.ParityReport {
	return analysis.AnalyzeEvenOddThreats(s.game.BoardSnapshot(), s.game.CurrentPlayer())
}
