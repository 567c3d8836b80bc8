package domain

// WinningLine returns the full run of player's cells through (row, col) along
// the first slope whose run reaches the win length, ordered from the
// top-left-most end. Returns nil when no slope completes a win. The origin
// cell is treated as held by player, matching IsWinningPlacement.
func (b Board) WinningLine(row, col int, player Cell) []Coord {
	for _, dir := range lineDirections {
		dRow, dCol := dir[0], dir[1]
		if 1+b.ScanLine(row, col, dRow, dCol, player) < b.winLen {
			continue
		}

		// walk back to the start of the run
		r, c := row, col
		for b.inBounds(r-dRow, c-dCol) && b.At(r-dRow, c-dCol) == player {
			r -= dRow
			c -= dCol
		}

		line := []Coord{}
		for b.inBounds(r, c) && (b.At(r, c) == player || (r == row && c == col)) {
			line = append(line, Coord{Row: r, Col: c})
			r += dRow
			c += dCol
		}
		return line
	}
	return nil
}
