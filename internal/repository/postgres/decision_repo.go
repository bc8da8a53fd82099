package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iamasit07/four-in-a-row-bot/internal/domain"
	"github.com/lib/pq"
)

type DecisionRepo struct {
	DB *sql.DB
}

func NewDecisionRepo(db *sql.DB) *DecisionRepo {
	return &DecisionRepo{DB: db}
}

// SaveDecision appends a decision to the log and fills in its ID and
// creation time.
func (r *DecisionRepo) SaveDecision(ctx context.Context, rec *domain.DecisionRecord) error {
	columns, scores := splitCandidates(rec.Decision.Candidates)

	query := `
	INSERT INTO move_decision (field, bot_id, depth, column_index, score, immediate_win, nodes, candidate_columns, candidate_scores, source, duration_ms)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		rec.Field,
		int(rec.BotID),
		rec.Decision.Depth,
		rec.Decision.Column,
		rec.Decision.Score,
		rec.Decision.ImmediateWin,
		rec.Decision.Nodes,
		pq.Array(columns),
		pq.Array(scores),
		rec.Source,
		rec.Duration.Milliseconds(),
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert decision: %v", err)
	}
	return nil
}

// RecentDecisions returns up to limit decisions, newest first.
func (r *DecisionRepo) RecentDecisions(ctx context.Context, limit int) ([]domain.DecisionRecord, error) {
	query := `
	SELECT id, field, bot_id, depth, column_index, score, immediate_win, nodes, candidate_columns, candidate_scores, source, duration_ms, created_at
	FROM move_decision
	ORDER BY created_at DESC, id DESC
	LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %v", err)
	}
	defer rows.Close()

	records := []domain.DecisionRecord{}
	for rows.Next() {
		var rec domain.DecisionRecord
		var botID int
		var durationMs int64
		var columns, scores []int64

		if err := rows.Scan(
			&rec.ID,
			&rec.Field,
			&botID,
			&rec.Decision.Depth,
			&rec.Decision.Column,
			&rec.Decision.Score,
			&rec.Decision.ImmediateWin,
			&rec.Decision.Nodes,
			pq.Array(&columns),
			pq.Array(&scores),
			&rec.Source,
			&durationMs,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %v", err)
		}

		rec.BotID = domain.PlayerID(botID)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.Decision.Candidates = joinCandidates(columns, scores)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func splitCandidates(candidates []domain.CandidateScore) ([]int64, []int64) {
	columns := make([]int64, len(candidates))
	scores := make([]int64, len(candidates))
	for i, c := range candidates {
		columns[i] = int64(c.Column)
		scores[i] = int64(c.Score)
	}
	return columns, scores
}

func joinCandidates(columns, scores []int64) []domain.CandidateScore {
	n := min(len(columns), len(scores))
	candidates := make([]domain.CandidateScore, n)
	for i := 0; i < n; i++ {
		candidates[i] = domain.CandidateScore{Column: int(columns[i]), Score: int(scores[i])}
	}
	return candidates
}

// CleanupOldDecisions deletes logged decisions older than the given number of days
func (r *DecisionRepo) CleanupOldDecisions(ctx context.Context, olderThanDays int) (int64, error) {
	query := `
	DELETE FROM move_decision
	WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	result, err := r.DB.ExecContext(ctx, query, olderThanDays)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old decisions: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %v", err)
	}

	return rowsAffected, nil
}
