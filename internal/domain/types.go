package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other participant; players are numbered 1 and 2.
func (p PlayerID) Opponent() PlayerID {
	return 3 - p
}

func (p PlayerID) IsPlayer() bool {
	return p == Player1 || p == Player2
}

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ToWin          = 4

	// keeps the number of four-cell windows well below the search win score
	MaxDimension = 64
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrColumnOutOfRange  Error = "column out of range"
	ErrInvalidPlayer     Error = "invalid player"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrMalformedField    Error = "malformed field"
	ErrGravityViolation  Error = "disc floating above an empty cell"
	ErrDimensionMismatch Error = "field dimensions do not match settings"
	ErrGameOver          Error = "game is already over"
	ErrNoValidMove       Error = "no valid move available"
	ErrInvalidDifficulty Error = "invalid difficulty"
)
