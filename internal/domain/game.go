package domain

// Game is the single source of truth for one match. The board is only ever
// mutated through Commit and Undo; analysis code works on snapshots.
type Game struct {
	board   Board
	current Cell
	status  GameStatus
	winner  Cell
	winLine []Coord
	history []MoveRecord
}

// NewGame starts a fresh game. Non-positive dimensions fall back to the
// 6x7x4 reference geometry. PlayerA always moves first.
func NewGame(rows, cols, winLen int) *Game {
	return &Game{
		board:   NewBoard(rows, cols, winLen),
		current: PlayerA,
		status:  StatusActive,
	}
}

func NewDefaultGame() *Game {
	return NewGame(DefaultRows, DefaultColumns, DefaultWinLength)
}

// Commit drops the current player's disc in col. On a win it records the
// winner and winning line; on a full board with no win it records a draw.
func (g *Game) Commit(col int) (MoveOutcome, error) {
	if g.status != StatusActive {
		return MoveOutcome{}, ErrGameOver
	}

	row, err := g.board.Drop(col, g.current)
	if err != nil {
		return MoveOutcome{}, err
	}

	player := g.current
	g.history = append(g.history, MoveRecord{Col: col, Row: row, Player: player})

	switch {
	case g.board.IsWinningPlacement(row, col, player):
		g.status = StatusWon
		g.winner = player
		g.winLine = g.board.WinningLine(row, col, player)
	case g.board.IsFull():
		g.status = StatusDraw
	default:
		g.current = Opponent(player)
	}

	return MoveOutcome{
		Row:         row,
		Col:         col,
		Player:      player,
		Status:      g.status,
		WinningLine: g.WinningLine(),
	}, nil
}

// Undo reverts the last committed move, including a terminal one.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return ErrNoMovesToUndo
	}

	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board.set(last.Row, last.Col, Empty)
	g.current = last.Player
	g.status = StatusActive
	g.winner = Empty
	g.winLine = nil
	return nil
}

func (g *Game) ValidMoves() []int {
	if g.status != StatusActive {
		return []int{}
	}
	return g.board.ValidMoves()
}

// BoardSnapshot returns a copy the caller may freely mutate.
func (g *Game) BoardSnapshot() Board {
	return g.board.Clone()
}

func (g *Game) CurrentPlayer() Cell {
	return g.current
}

func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) IsTerminal() bool {
	return g.status != StatusActive
}

// Winner reports the winning player, ok=false on an active game or a draw.
func (g *Game) Winner() (Cell, bool) {
	if g.status != StatusWon {
		return Empty, false
	}
	return g.winner, true
}

func (g *Game) WinningLine() []Coord {
	if g.winLine == nil {
		return nil
	}
	line := make([]Coord, len(g.winLine))
	copy(line, g.winLine)
	return line
}

func (g *Game) MoveCount() int {
	return len(g.history)
}

func (g *Game) History() []MoveRecord {
	history := make([]MoveRecord, len(g.history))
	copy(history, g.history)
	return history
}
