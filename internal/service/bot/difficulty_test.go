package bot

import (
	"errors"
	"testing"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

func TestParseDifficulty(t *testing.T) {
	tt := []struct {
		in        string
		want      Difficulty
		wantDepth int
		wantErr   bool
	}{
		{in: "easy", want: DifficultyEasy, wantDepth: 2},
		{in: " Medium ", want: DifficultyMedium, wantDepth: 3},
		{in: "HARD", want: DifficultyHard, wantDepth: DEFAULT_DEPTH},
		{in: "impossible", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDifficulty(tc.in)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidDifficulty) {
					t.Fatalf("Expected ErrInvalidDifficulty, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d != tc.want || d.Depth() != tc.wantDepth {
				t.Errorf("Expected %s at depth %d, got %s at depth %d", tc.want, tc.wantDepth, d, d.Depth())
			}
		})
	}
}
