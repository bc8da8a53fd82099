package bot

import (
	"testing"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	b := domain.NewDefaultBoard()
	if got := Evaluate(b, domain.Player1); got != 0 {
		t.Errorf("Expected 0 for player 1, got %d", got)
	}
	if got := Evaluate(b, domain.Player2); got != 0 {
		t.Errorf("Expected 0 for player 2, got %d", got)
	}
}

func TestEvaluateCountsOpenWindows(t *testing.T) {
	tt := []struct {
		name      string
		discs     map[int][]domain.PlayerID
		reference domain.PlayerID
		want      int
	}{
		// the bottom center cell sits in 4 row, 1 column and 2 diagonal windows
		{name: "center disc", discs: map[int][]domain.PlayerID{3: {1}}, reference: domain.Player1, want: 7},
		{name: "center disc from the other side", discs: map[int][]domain.PlayerID{3: {1}}, reference: domain.Player2, want: -7},
		{name: "corner disc", discs: map[int][]domain.PlayerID{0: {1}}, reference: domain.Player1, want: 3},
		{name: "opponent on top", discs: map[int][]domain.PlayerID{3: {1, 2}}, reference: domain.Player1, want: -3},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromColumns(t, tc.discs)
			if got := Evaluate(b, tc.reference); got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	b := boardFromColumns(t, map[int][]domain.PlayerID{
		1: {2, 1}, 2: {1}, 3: {1, 2, 2}, 5: {2},
	})
	if p1, p2 := Evaluate(b, domain.Player1), Evaluate(b, domain.Player2); p1 != -p2 {
		t.Errorf("Expected scores to mirror, got %d and %d", p1, p2)
	}
}

func TestWindowCount(t *testing.T) {
	if got := WindowCount(7, 6); got != 69 {
		t.Errorf("Expected 69 windows on 7x6, got %d", got)
	}
	if got := WindowCount(4, 4); got != 10 {
		t.Errorf("Expected 10 windows on 4x4, got %d", got)
	}
	if WindowCount(domain.MaxDimension, domain.MaxDimension) >= MINIMAX_WIN {
		t.Error("Win score must dominate every heuristic value")
	}
}
