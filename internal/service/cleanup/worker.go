package cleanup

import (
	"context"
	"log"
	"time"
)

const DEFAULT_INTERVAL = 1 * time.Hour

type DecisionPruner interface {
	CleanupOldDecisions(ctx context.Context, olderThanDays int) (int64, error)
}

// Worker trims the decision log on a fixed interval.
type Worker struct {
	Pruner        DecisionPruner
	RetentionDays int
	Interval      time.Duration
}

func NewWorker(pruner DecisionPruner, retentionDays int) *Worker {
	return &Worker{Pruner: pruner, RetentionDays: retentionDays, Interval: DEFAULT_INTERVAL}
}

// Start runs one pass right away and then one per interval until ctx is
// done. A non-positive retention keeps everything.
func (w *Worker) Start(ctx context.Context) {
	if w.RetentionDays <= 0 {
		log.Println("[CLEANUP] Decision retention disabled")
		return
	}

	go func() {
		w.RunOnce(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
	log.Printf("[CLEANUP] Background worker started (keeping %d days)", w.RetentionDays)
}

// RunOnce deletes decisions past the retention window and returns how many
// were removed.
func (w *Worker) RunOnce(ctx context.Context) int64 {
	deletedCount, err := w.Pruner.CleanupOldDecisions(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up decisions: %v", err)
		return 0
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d expired decisions from database", deletedCount)
	}
	return deletedCount
}
