package domain

// Direction is a (column, row) step along one of the four line families.
type Direction struct {
	DC, DR int
}

var Directions = [4]Direction{
	{DC: 0, DR: 1},  // vertical
	{DC: 1, DR: 0},  // horizontal
	{DC: 1, DR: 1},  // diagonal /
	{DC: 1, DR: -1}, // diagonal \
}

// HasFourInRow reports whether player owns ToWin consecutive cells along any
// column, row or diagonal. Every line of the board is walked from its first
// cell with a running count that resets on any cell the player does not own.
// Empty is not a player and never has a line.
func HasFourInRow(b *Board, player PlayerID) bool {
	if !player.IsPlayer() {
		return false
	}
	for _, d := range Directions {
		for c := 0; c < b.columns; c++ {
			for r := 0; r < b.rows; r++ {
				// only start at the first cell of each line
				if b.InBounds(c-d.DC, r-d.DR) {
					continue
				}
				if scanLine(b, c, r, d, player) {
					return true
				}
			}
		}
	}
	return false
}

func scanLine(b *Board, c, r int, d Direction, player PlayerID) bool {
	count := 0
	for ; b.InBounds(c, r); c, r = c+d.DC, r+d.DR {
		if b.cells[c][r] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}
	return false
}
