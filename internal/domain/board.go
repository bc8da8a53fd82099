package domain

import "fmt"

// Board is a gravity grid indexed as cells[column][row] with row 0 at the
// bottom. Discs in a column always form a contiguous run starting at row 0.
type Board struct {
	columns int
	rows    int
	cells   [][]PlayerID
	heights []int
}

func NewBoard(columns, rows int) (*Board, error) {
	if columns < ToWin || rows < ToWin || columns > MaxDimension || rows > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, columns, rows)
	}

	cells := make([][]PlayerID, columns)
	for c := range cells {
		cells[c] = make([]PlayerID, rows)
	}

	return &Board{
		columns: columns,
		rows:    rows,
		cells:   cells,
		heights: make([]int, columns),
	}, nil
}

// NewDefaultBoard returns an empty 7x6 board.
func NewDefaultBoard() *Board {
	b, _ := NewBoard(DefaultColumns, DefaultRows)
	return b
}

// NewBoardFromRows builds a board from a grid whose first row is the top of
// the board, the orientation used by the judge and the web clients.
func NewBoardFromRows(grid [][]PlayerID) (*Board, error) {
	rows := len(grid)
	if rows == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedField)
	}
	columns := len(grid[0])

	b, err := NewBoard(columns, rows)
	if err != nil {
		return nil, err
	}

	for i, line := range grid {
		if len(line) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedField, i, len(line), columns)
		}
		r := rows - 1 - i
		for c, cell := range line {
			if cell != Empty && !cell.IsPlayer() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidPlayer, c, r, cell)
			}
			b.cells[c][r] = cell
		}
	}

	// heights double as the gravity check: every cell under the top disc
	// must be occupied
	for c := 0; c < columns; c++ {
		h := 0
		for r := 0; r < rows; r++ {
			if b.cells[c][r] == Empty {
				continue
			}
			if r != h {
				return nil, fmt.Errorf("%w: column %d row %d", ErrGravityViolation, c, r)
			}
			h++
		}
		b.heights[c] = h
	}

	return b, nil
}

func (b *Board) Columns() int {
	return b.columns
}

func (b *Board) Rows() int {
	return b.rows
}

// IsColumnFull reports whether no disc can be dropped into column c.
// Columns outside the board are never playable and report full.
func (b *Board) IsColumnFull(c int) bool {
	if c < 0 || c >= b.columns {
		return true
	}
	return b.heights[c] >= b.rows
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.columns; c++ {
		if b.heights[c] < b.rows {
			return false
		}
	}
	return true
}

// AddDisc drops the player's disc into the lowest empty cell of column c
// and returns the row it landed on.
func (b *Board) AddDisc(c int, player PlayerID) (int, error) {
	if c < 0 || c >= b.columns {
		return -1, fmt.Errorf("%w: %d", ErrColumnOutOfRange, c)
	}
	if !player.IsPlayer() {
		return -1, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	if b.heights[c] >= b.rows {
		return -1, fmt.Errorf("%w: %d", ErrColumnFull, c)
	}

	row := b.heights[c]
	b.cells[c][row] = player
	b.heights[c]++
	return row, nil
}

// GetDisc returns the occupant of (c, r); cells off the board read as Empty.
func (b *Board) GetDisc(c, r int) PlayerID {
	if !b.InBounds(c, r) {
		return Empty
	}
	return b.cells[c][r]
}

func (b *Board) InBounds(c, r int) bool {
	return c >= 0 && c < b.columns && r >= 0 && r < b.rows
}

// Height is the number of discs already in column c, 0 off the board.
func (b *Board) Height(c int) int {
	if c < 0 || c >= b.columns {
		return 0
	}
	return b.heights[c]
}

func (b *Board) DiscCount() int {
	n := 0
	for _, h := range b.heights {
		n += h
	}
	return n
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]PlayerID, b.columns)
	for c := range b.cells {
		cells[c] = make([]PlayerID, b.rows)
		copy(cells[c], b.cells[c])
	}
	heights := make([]int, b.columns)
	copy(heights, b.heights)

	return &Board{
		columns: b.columns,
		rows:    b.rows,
		cells:   cells,
		heights: heights,
	}
}

// ToRows returns the grid top row first, the inverse of NewBoardFromRows.
func (b *Board) ToRows() [][]PlayerID {
	grid := make([][]PlayerID, b.rows)
	for i := range grid {
		r := b.rows - 1 - i
		grid[i] = make([]PlayerID, b.columns)
		for c := 0; c < b.columns; c++ {
			grid[i][c] = b.cells[c][r]
		}
	}
	return grid
}

// ValidMoves lists the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, b.columns)
	for c := 0; c < b.columns; c++ {
		if b.Height(c) < b.rows {
			moves = append(moves, c)
		}
	}
	return moves
}
