package domain

import (
	"errors"
	"testing"
)

func TestNewBoardDimensions(t *testing.T) {
	tt := []struct {
		name    string
		columns int
		rows    int
		wantErr bool
	}{
		{name: "standard", columns: 7, rows: 6},
		{name: "square minimum", columns: 4, rows: 4},
		{name: "too narrow", columns: 3, rows: 6, wantErr: true},
		{name: "too short", columns: 7, rows: 3, wantErr: true},
		{name: "too wide", columns: MaxDimension + 1, rows: 6, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBoard(tc.columns, tc.rows)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Fatalf("Expected ErrInvalidDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if b.Columns() != tc.columns || b.Rows() != tc.rows {
				t.Errorf("Expected %dx%d, got %dx%d", tc.columns, tc.rows, b.Columns(), b.Rows())
			}
			if b.DiscCount() != 0 {
				t.Errorf("Expected empty board, got %d discs", b.DiscCount())
			}
		})
	}
}

func TestAddDiscStacksFromBottom(t *testing.T) {
	b := NewDefaultBoard()

	for want := 0; want < DefaultRows; want++ {
		row, err := b.AddDisc(2, Player1)
		if err != nil {
			t.Fatalf("Unexpected error on disc %d: %v", want, err)
		}
		if row != want {
			t.Errorf("Expected disc to land on row %d, got %d", want, row)
		}
	}

	if !b.IsColumnFull(2) {
		t.Error("Expected column 2 to be full")
	}
	if _, err := b.AddDisc(2, Player2); !errors.Is(err, ErrColumnFull) {
		t.Errorf("Expected ErrColumnFull, got %v", err)
	}
	if b.Height(2) != DefaultRows {
		t.Errorf("Expected height %d after rejected drop, got %d", DefaultRows, b.Height(2))
	}
}

func TestAddDiscRejectsBadInput(t *testing.T) {
	b := NewDefaultBoard()

	if _, err := b.AddDisc(-1, Player1); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("Expected ErrColumnOutOfRange for -1, got %v", err)
	}
	if _, err := b.AddDisc(DefaultColumns, Player1); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("Expected ErrColumnOutOfRange for %d, got %v", DefaultColumns, err)
	}
	if _, err := b.AddDisc(0, Empty); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("Expected ErrInvalidPlayer, got %v", err)
	}
	if b.DiscCount() != 0 {
		t.Errorf("Expected rejected drops to leave the board empty, got %d discs", b.DiscCount())
	}
}

func TestHeightOutOfRange(t *testing.T) {
	b := NewDefaultBoard()
	if _, err := b.AddDisc(0, Player1); err != nil {
		t.Fatalf("AddDisc: %v", err)
	}
	for _, c := range []int{-1, DefaultColumns, 100} {
		if h := b.Height(c); h != 0 {
			t.Errorf("Height(%d): expected 0, got %d", c, h)
		}
	}
	if b.Height(0) != 1 {
		t.Errorf("Expected height 1 in column 0, got %d", b.Height(0))
	}
}

func TestIsColumnFullOutOfRange(t *testing.T) {
	b := NewDefaultBoard()
	if !b.IsColumnFull(-1) || !b.IsColumnFull(DefaultColumns) {
		t.Error("Expected columns off the board to report full")
	}
	if b.IsColumnFull(0) {
		t.Error("Expected empty column to be playable")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewDefaultBoard()
	b.AddDisc(3, Player1)
	b.AddDisc(3, Player2)

	clone := b.Clone()
	clone.AddDisc(3, Player1)
	clone.AddDisc(0, Player2)

	if b.GetDisc(3, 2) != Empty || b.GetDisc(0, 0) != Empty {
		t.Error("Mutating the clone changed the source board")
	}
	if b.Height(3) != 2 || b.DiscCount() != 2 {
		t.Errorf("Expected source to keep 2 discs, got height %d count %d", b.Height(3), b.DiscCount())
	}

	b.AddDisc(6, Player1)
	if clone.GetDisc(6, 0) != Empty {
		t.Error("Mutating the source changed the clone")
	}
	if clone.GetDisc(3, 0) != Player1 || clone.GetDisc(3, 1) != Player2 {
		t.Error("Expected clone to keep the copied discs")
	}
}

func TestIsFullAndValidMoves(t *testing.T) {
	b, _ := NewBoard(4, 4)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if c == 1 && r == 3 {
				continue
			}
			b.AddDisc(c, PlayerID(1+(c+r)%2))
		}
	}

	if b.IsFull() {
		t.Fatal("Expected board with one empty cell not to be full")
	}
	moves := b.ValidMoves()
	if len(moves) != 1 || moves[0] != 1 {
		t.Fatalf("Expected only column 1 to be playable, got %v", moves)
	}

	b.AddDisc(1, Player1)
	if !b.IsFull() {
		t.Error("Expected board to be full")
	}
	if len(b.ValidMoves()) != 0 {
		t.Errorf("Expected no valid moves, got %v", b.ValidMoves())
	}
}

func TestNewBoardFromRowsGravity(t *testing.T) {
	floating := [][]PlayerID{
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	}
	if _, err := NewBoardFromRows(floating); !errors.Is(err, ErrGravityViolation) {
		t.Errorf("Expected ErrGravityViolation, got %v", err)
	}

	ragged := [][]PlayerID{
		{0, 0, 0, 0},
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if _, err := NewBoardFromRows(ragged); !errors.Is(err, ErrMalformedField) {
		t.Errorf("Expected ErrMalformedField, got %v", err)
	}

	badCell := [][]PlayerID{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 3, 0, 0},
	}
	if _, err := NewBoardFromRows(badCell); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("Expected ErrInvalidPlayer, got %v", err)
	}

	stacked := [][]PlayerID{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{1, 1, 0, 0},
	}
	b, err := NewBoardFromRows(stacked)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b.GetDisc(1, 1) != Player2 || b.GetDisc(1, 0) != Player1 || b.GetDisc(0, 0) != Player1 {
		t.Error("Expected bottom grid row to map to board row 0")
	}
	if b.Height(0) != 1 || b.Height(1) != 2 || b.Height(2) != 0 {
		t.Errorf("Unexpected heights %d %d %d", b.Height(0), b.Height(1), b.Height(2))
	}

	back := b.ToRows()
	for i := range stacked {
		for j := range stacked[i] {
			if back[i][j] != stacked[i][j] {
				t.Fatalf("ToRows mismatch at (%d,%d): expected %d, got %d", i, j, stacked[i][j], back[i][j])
			}
		}
	}
}
