package bot

import (
	"fmt"
	"strings"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var difficultyDepth = map[Difficulty]int{
	DifficultyEasy:   2,
	DifficultyMedium: 3,
	DifficultyHard:   DEFAULT_DEPTH,
}

// ParseDifficulty validates a difficulty name; unknown names are rejected.
func ParseDifficulty(difficulty string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(difficulty)))
	if _, ok := difficultyDepth[d]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficulty)
	}
	return d, nil
}

// Depth is the number of plies searched after the root move.
func (d Difficulty) Depth() int {
	if depth, ok := difficultyDepth[d]; ok {
		return depth
	}
	return DEFAULT_DEPTH
}
