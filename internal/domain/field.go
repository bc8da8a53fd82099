package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseField decodes the judge's text form: rows separated by ';' with the
// top row first, cells separated by ','. Dimensions are taken from the text.
func ParseField(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty field", ErrMalformedField)
	}

	lines := strings.Split(s, ";")
	grid := make([][]PlayerID, len(lines))
	for i, line := range lines {
		values := strings.Split(line, ",")
		grid[i] = make([]PlayerID, len(values))
		for j, v := range values {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d cell %d: %q", ErrMalformedField, i, j, v)
			}
			grid[i][j] = PlayerID(n)
		}
	}

	return NewBoardFromRows(grid)
}

// String encodes the board in the same form ParseField reads.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.columns * b.rows * 2)
	for r := b.rows - 1; r >= 0; r-- {
		if r != b.rows-1 {
			sb.WriteByte(';')
		}
		for c := 0; c < b.columns; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(b.cells[c][r])))
		}
	}
	return sb.String()
}
