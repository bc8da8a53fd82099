package move

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/iamasit07/four-in-a-row-bot/internal/service/bot"
)

const cacheKeyPrefix = "move:"

const ErrDecisionLogDisabled domain.Error = "decision log disabled"

const (
	SourceStdio     = "stdio"
	SourceHTTP      = "http"
	SourceWebSocket = "ws"
)

type MoveCache interface {
	Lookup(ctx context.Context, key string) (*domain.MoveDecision, bool, error)
	Store(ctx context.Context, key string, decision *domain.MoveDecision, ttl time.Duration) error
}

type DecisionStore interface {
	SaveDecision(ctx context.Context, rec *domain.DecisionRecord) error
	RecentDecisions(ctx context.Context, limit int) ([]domain.DecisionRecord, error)
}

// Request carries a board either as judge text (Field) or as a grid with
// the top row first (Grid). Field wins when both are set.
type Request struct {
	Field      string              `json:"field"`
	Grid       [][]domain.PlayerID `json:"grid"`
	BotID      domain.PlayerID     `json:"botId"`
	Difficulty string              `json:"difficulty"`
	Source     string              `json:"-"`
}

type Result struct {
	domain.MoveDecision
	Field  string `json:"field"`
	Cached bool   `json:"cached"`
}

// Service answers move requests. It is safe for concurrent use; cache and
// store are optional and may be nil.
type Service struct {
	defaultDepth int
	cache        MoveCache
	cacheTTL     time.Duration
	store        DecisionStore

	// zero means unrestricted
	columns     int
	rows        int
	moveTimeout time.Duration
}

func NewService(defaultDepth int, cache MoveCache, cacheTTL time.Duration, store DecisionStore) (*Service, error) {
	if _, err := bot.NewEngine(domain.Player1, defaultDepth); err != nil {
		return nil, err
	}
	return &Service{
		defaultDepth: defaultDepth,
		cache:        cache,
		cacheTTL:     cacheTTL,
		store:        store,
	}, nil
}

func (s *Service) DefaultDepth() int {
	return s.defaultDepth
}

// SetBoardSize makes DecideMove reject boards of any other size. Search cost
// grows with the width to the power of the depth, so open APIs should pin it.
func (s *Service) SetBoardSize(columns, rows int) {
	s.columns = columns
	s.rows = rows
}

// SetMoveTimeout bounds every engine run; zero leaves only the caller's ctx.
func (s *Service) SetMoveTimeout(timeout time.Duration) {
	s.moveTimeout = timeout
}

// DecideMove validates the request, consults the cache and otherwise runs
// the engine. Cache and log failures are logged, never returned.
func (s *Service) DecideMove(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	board, err := DecodeBoard(req.Field, req.Grid)
	if err != nil {
		return nil, err
	}
	if (s.columns > 0 && board.Columns() != s.columns) || (s.rows > 0 && board.Rows() != s.rows) {
		return nil, fmt.Errorf("%w: got %dx%d, expected %dx%d",
			domain.ErrDimensionMismatch, board.Columns(), board.Rows(), s.columns, s.rows)
	}
	if !req.BotID.IsPlayer() {
		return nil, fmt.Errorf("%w: bot id %d", domain.ErrInvalidPlayer, req.BotID)
	}
	if domain.HasFourInRow(board, domain.Player1) || domain.HasFourInRow(board, domain.Player2) {
		return nil, domain.ErrGameOver
	}
	if len(board.ValidMoves()) == 0 {
		return nil, domain.ErrNoValidMove
	}

	depth, err := s.resolveDepth(req.Difficulty)
	if err != nil {
		return nil, err
	}

	field := board.String()
	key := CacheKey(depth, req.BotID, field)

	if s.cache != nil {
		cached, ok, err := s.cache.Lookup(ctx, key)
		if err != nil {
			log.Printf("[MOVE] Cache lookup failed for %s: %v", key, err)
		} else if ok {
			log.Printf("[MOVE] Cache hit: bot %d depth %d -> column %d", req.BotID, depth, cached.Column)
			return &Result{MoveDecision: *cached, Field: field, Cached: true}, nil
		}
	}

	engine, err := bot.NewEngine(req.BotID, depth)
	if err != nil {
		return nil, err
	}

	searchCtx := ctx
	if s.moveTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.moveTimeout)
		defer cancel()
	}

	decision, err := engine.AnalyzeContext(searchCtx, board)
	if err != nil {
		if searchCtx.Err() != nil {
			log.Printf("[MOVE] Search aborted for bot %d depth %d after %v: %v", req.BotID, depth, time.Since(start), err)
		}
		return nil, err
	}

	elapsed := time.Since(start)
	log.Printf("[MOVE] Bot %d depth %d disc %d -> column %d (score %d, %d nodes, %v)",
		req.BotID, depth, board.DiscCount()+1, decision.Column, decision.Score, decision.Nodes, elapsed)

	if s.cache != nil {
		if err := s.cache.Store(ctx, key, decision, s.cacheTTL); err != nil {
			log.Printf("[MOVE] Cache store failed for %s: %v", key, err)
		}
	}

	if s.store != nil {
		rec := &domain.DecisionRecord{
			Field:    field,
			BotID:    req.BotID,
			Source:   req.Source,
			Decision: *decision,
			Duration: elapsed,
		}
		if err := s.store.SaveDecision(ctx, rec); err != nil {
			log.Printf("[MOVE] Failed to log decision: %v", err)
		}
	}

	return &Result{MoveDecision: *decision, Field: field}, nil
}

func (s *Service) RecentDecisions(ctx context.Context, limit int) ([]domain.DecisionRecord, error) {
	if s.store == nil {
		return nil, ErrDecisionLogDisabled
	}
	return s.store.RecentDecisions(ctx, limit)
}

func (s *Service) resolveDepth(difficulty string) (int, error) {
	if difficulty == "" {
		return s.defaultDepth, nil
	}
	d, err := bot.ParseDifficulty(difficulty)
	if err != nil {
		return 0, err
	}
	return d.Depth(), nil
}

// DecodeBoard builds a board from the judge text form or, when that is
// empty, from a top-row-first grid.
func DecodeBoard(field string, grid [][]domain.PlayerID) (*domain.Board, error) {
	if field != "" {
		return domain.ParseField(field)
	}
	if len(grid) > 0 {
		return domain.NewBoardFromRows(grid)
	}
	return nil, fmt.Errorf("%w: no field or grid given", domain.ErrMalformedField)
}

func CacheKey(depth int, botID domain.PlayerID, field string) string {
	return fmt.Sprintf("%s%d:%d:%s", cacheKeyPrefix, depth, botID, field)
}
