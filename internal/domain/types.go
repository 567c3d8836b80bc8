package domain

// Cell is the content of one board square.
type Cell uint8

const (
	Empty   Cell = 0
	PlayerA Cell = 1
	PlayerB Cell = 2
)

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "."
	}
}

// Opponent returns the other player. Empty maps to Empty.
func Opponent(p Cell) Cell {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Default board geometry for the reference game.
const (
	DefaultRows      = 6
	DefaultColumns   = 7
	DefaultWinLength = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Coord addresses a single square; row 0 is the top of the board.
type Coord struct {
	Row int
	Col int
}

// MoveRecord is one committed move, kept for undo.
type MoveRecord struct {
	Col    int
	Row    int
	Player Cell
}

// MoveOutcome is what a committed move produced. Callers inspect Status
// instead of receiving callbacks.
type MoveOutcome struct {
	Row         int
	Col         int
	Player      Cell
	Status      GameStatus
	WinningLine []Coord
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrNoMovesToUndo Error = "no moves to undo"
)
