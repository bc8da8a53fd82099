package bot

import (
	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

// Evaluate scores the board for reference as the number of four-cell windows
// still open to reference minus the number still open to its opponent. A
// window is open to a player while it holds no disc of the other player, so
// an empty window counts for both sides.
func Evaluate(board *domain.Board, reference domain.PlayerID) int {
	opponent := reference.Opponent()
	openForReference := 0
	openForOpponent := 0

	for _, d := range domain.Directions {
		for c := 0; c < board.Columns(); c++ {
			for r := 0; r < board.Rows(); r++ {
				// window must fit on the board
				endC := c + d.DC*(domain.ToWin-1)
				endR := r + d.DR*(domain.ToWin-1)
				if !board.InBounds(endC, endR) {
					continue
				}

				hasReference, hasOpponent := scanWindow(board, c, r, d, reference, opponent)
				if !hasOpponent {
					openForReference++
				}
				if !hasReference {
					openForOpponent++
				}
			}
		}
	}

	return openForReference - openForOpponent
}

func scanWindow(board *domain.Board, c, r int, d domain.Direction, reference, opponent domain.PlayerID) (bool, bool) {
	hasReference, hasOpponent := false, false
	for i := 0; i < domain.ToWin; i++ {
		switch board.GetDisc(c+d.DC*i, r+d.DR*i) {
		case reference:
			hasReference = true
		case opponent:
			hasOpponent = true
		}
	}
	return hasReference, hasOpponent
}

// WindowCount is the number of four-cell windows on a board of the given
// size, an upper bound on the magnitude of Evaluate.
func WindowCount(columns, rows int) int {
	n := 0
	for _, d := range domain.Directions {
		spanC := columns - abs(d.DC)*(domain.ToWin-1)
		spanR := rows - abs(d.DR)*(domain.ToWin-1)
		if spanC > 0 && spanR > 0 {
			n += spanC * spanR
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
