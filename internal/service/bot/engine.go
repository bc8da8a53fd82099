package bot

import (
	"context"
	"fmt"
	"math"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
)

const (
	DEFAULT_DEPTH = 4
	MAX_DEPTH     = 8
	MINIMAX_WIN   = 1000000
	MINIMAX_LOSS  = -1000000
	MINIMAX_DRAW  = 0

	// nodes between two looks at the context
	CANCEL_CHECK_INTERVAL = 1024
)

// Engine picks moves for a fixed player with an exhaustive fixed-depth
// minimax. Scores are always relative to the engine's own player: the
// maximizing levels are its moves, the minimizing levels the opponent's.
// An Engine holds no mutable state and may be shared between goroutines.
type Engine struct {
	self  domain.PlayerID
	depth int
}

func NewEngine(self domain.PlayerID, depth int) (*Engine, error) {
	if !self.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPlayer, self)
	}
	if depth < 0 || depth > MAX_DEPTH {
		return nil, fmt.Errorf("search depth %d outside 0..%d", depth, MAX_DEPTH)
	}
	return &Engine{self: self, depth: depth}, nil
}

func (e *Engine) Self() domain.PlayerID {
	return e.self
}

func (e *Engine) Depth() int {
	return e.depth
}

// ChooseMove returns the column to play on board.
func (e *Engine) ChooseMove(board *domain.Board) (int, error) {
	decision, err := e.Analyze(board)
	if err != nil {
		return -1, err
	}
	return decision.Column, nil
}

// Analyze runs the search to completion.
func (e *Engine) Analyze(board *domain.Board) (*domain.MoveDecision, error) {
	return e.AnalyzeContext(context.Background(), board)
}

// AnalyzeContext runs the root of the search. Candidates are tried in
// preference order; a move that wins on the spot is taken at once, otherwise
// the column with the strictly greatest score wins, so ties go to the earlier
// column. When ctx ends mid-search the partial result is dropped and ctx's
// error returned.
func (e *Engine) AnalyzeContext(ctx context.Context, board *domain.Board) (*domain.MoveDecision, error) {
	if MINIMAX_WIN <= WindowCount(board.Columns(), board.Rows()) {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, board.Columns(), board.Rows())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &searcher{ctx: ctx, self: e.self, order: PreferenceOrder(board.Columns())}
	opponent := e.self.Opponent()
	decision := &domain.MoveDecision{
		Column: -1,
		Score:  math.MinInt,
		Depth:  e.depth,
	}

	for _, col := range s.order {
		if board.IsColumnFull(col) {
			continue
		}

		child := board.Clone()
		if _, err := child.AddDisc(col, e.self); err != nil {
			return nil, err
		}
		s.nodes++

		// If this move wins immediately, take it
		if domain.HasFourInRow(child, e.self) {
			decision.Column = col
			decision.Score = MINIMAX_WIN
			decision.ImmediateWin = true
			decision.Candidates = append(decision.Candidates, domain.CandidateScore{Column: col, Score: MINIMAX_WIN})
			break
		}

		score := s.search(child, opponent, e.depth)
		if s.err != nil {
			return nil, s.err
		}
		decision.Candidates = append(decision.Candidates, domain.CandidateScore{Column: col, Score: score})
		if score > decision.Score {
			decision.Score = score
			decision.Column = col
		}
	}

	decision.Nodes = s.nodes
	if decision.Column < 0 {
		return nil, domain.ErrNoValidMove
	}
	return decision, nil
}

// searcher carries the per-run state so the Engine stays immutable.
type searcher struct {
	ctx   context.Context
	self  domain.PlayerID
	order []int
	nodes int
	err   error
}

// stopped records the context error once it shows up; a stopped search
// unwinds returning meaningless scores.
func (s *searcher) stopped() bool {
	if s.err == nil && s.ctx != nil && s.nodes%CANCEL_CHECK_INTERVAL == 0 {
		s.err = s.ctx.Err()
	}
	return s.err != nil
}

// search scores the position where mover is about to play with depth plies
// left to explore.
func (s *searcher) search(board *domain.Board, mover domain.PlayerID, depth int) int {
	if s.stopped() {
		return MINIMAX_DRAW
	}

	// the move that produced this node may already have ended the game
	last := mover.Opponent()
	if domain.HasFourInRow(board, last) {
		if last == s.self {
			return MINIMAX_WIN
		}
		return MINIMAX_LOSS
	}

	if board.IsFull() {
		return MINIMAX_DRAW
	}

	if depth == 0 {
		return Evaluate(board, s.self)
	}

	maximizing := mover == s.self
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, col := range s.order {
		if board.IsColumnFull(col) {
			continue
		}

		child := board.Clone()
		if _, err := child.AddDisc(col, mover); err != nil {
			continue
		}
		s.nodes++

		eval := s.search(child, last, depth-1)
		if maximizing {
			best = max(best, eval)
		} else {
			best = min(best, eval)
		}
	}

	return best
}

// PreferenceOrder lists columns from the center outwards, left before right:
// [3 2 4 1 5 0 6] on the standard board.
func PreferenceOrder(columns int) []int {
	if columns <= 0 {
		return nil
	}
	order := make([]int, 0, columns)
	center := (columns - 1) / 2
	order = append(order, center)
	for d := 1; len(order) < columns; d++ {
		if center-d >= 0 {
			order = append(order, center-d)
		}
		if center+d < columns {
			order = append(order, center+d)
		}
	}
	return order
}
