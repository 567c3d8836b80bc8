package domain

import (
	"fmt"
	"strings"
)

// Board is a value type: the cell slice is never shared between two Boards.
// Row 0 is the top row, row rows-1 is the bottom (the gravity edge).
type Board struct {
	rows   int
	cols   int
	winLen int
	cells  []Cell
}

func NewBoard(rows, cols, winLen int) Board {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultColumns
	}
	if winLen <= 1 {
		winLen = DefaultWinLength
	}
	return Board{
		rows:   rows,
		cols:   cols,
		winLen: winLen,
		cells:  make([]Cell, rows*cols),
	}
}

func (b Board) Rows() int      { return b.rows }
func (b Board) Cols() int      { return b.cols }
func (b Board) WinLength() int { return b.winLen }

func (b Board) At(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.cols+col] = c
}

// Clone returns a deep copy. Cheap enough to do once per simulated move.
func (b Board) Clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, winLen: b.winLen, cells: cells}
}

func (b Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// DropRow returns the row a disc dropped in col would land on,
// or ok=false if the column is full.
func (b Board) DropRow(col int) (int, bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.At(row, col) == Empty {
			return row, true
		}
	}
	return -1, false
}

// Drop places a disc for player in col respecting gravity and returns the
// landing row. This is the only mutation a caller can perform on a Board.
func (b *Board) Drop(col int, player Cell) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, ErrInvalidColumn
	}
	row, ok := b.DropRow(col)
	if !ok {
		return -1, ErrColumnFull
	}
	b.set(row, col, player)
	return row, nil
}

func (b Board) IsFull() bool {
	for col := 0; col < b.cols; col++ {
		if b.At(0, col) == Empty {
			return false
		}
	}
	return true
}

func (b Board) EmptyCount() int {
	n := 0
	for _, c := range b.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// ValidMoves lists the columns that still have room, ascending.
func (b Board) ValidMoves() []int {
	moves := []int{}
	for col := 0; col < b.cols; col++ {
		if b.At(0, col) == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// ScanLine counts consecutive player cells extending from (row, col) in both
// directions along the given slope. The origin cell itself is not counted.
func (b Board) ScanLine(row, col, dRow, dCol int, player Cell) int {
	count := 0
	for _, sign := range [2]int{1, -1} {
		r, c := row+dRow*sign, col+dCol*sign
		for b.inBounds(r, c) && b.At(r, c) == player {
			count++
			r += dRow * sign
			c += dCol * sign
		}
	}
	return count
}

// the four slopes a connection can run along
var lineDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// IsWinningPlacement reports whether (row, col) holding a disc of player
// completes a run of at least the win length along any slope. The cell's
// actual content is ignored, which lets callers test hypothetical drops.
func (b Board) IsWinningPlacement(row, col int, player Cell) bool {
	for _, dir := range lineDirections {
		if 1+b.ScanLine(row, col, dir[0], dir[1], player) >= b.winLen {
			return true
		}
	}
	return false
}

// ParseBoard builds a Board from one string per row, top row first, using
// 'A', 'B' and '.' cells. It rejects floating discs so every parsed board is
// reachable by gravity drops.
func ParseBoard(winLen int, rows ...string) (Board, error) {
	if len(rows) == 0 {
		return Board{}, fmt.Errorf("parse board: no rows")
	}
	cols := len(rows[0])
	b := NewBoard(len(rows), cols, winLen)
	for r, line := range rows {
		if len(line) != cols {
			return Board{}, fmt.Errorf("parse board: row %d has %d cells, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '.':
			case 'A':
				b.set(r, c, PlayerA)
			case 'B':
				b.set(r, c, PlayerB)
			default:
				return Board{}, fmt.Errorf("parse board: bad cell %q at row %d col %d", line[c], r, c)
			}
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < len(rows)-1; r++ {
			if b.At(r, c) != Empty && b.At(r+1, c) == Empty {
				return Board{}, fmt.Errorf("parse board: floating disc at row %d col %d", r, c)
			}
		}
	}
	return b, nil
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			sb.WriteString(b.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
