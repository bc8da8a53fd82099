package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakePruner struct {
	mu    sync.Mutex
	calls []int
	n     int64
	err   error
}

func (f *fakePruner) CleanupOldDecisions(ctx context.Context, olderThanDays int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, olderThanDays)
	return f.n, f.err
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestRunOnce(t *testing.T) {
	p := &fakePruner{n: 3}
	w := NewWorker(p, 30)

	if got := w.RunOnce(context.Background()); got != 3 {
		t.Errorf("Expected 3 deleted, got %d", got)
	}
	if p.calls[0] != 30 {
		t.Errorf("Expected retention 30, got %d", p.calls[0])
	}

	p.err = errors.New("database unavailable")
	if got := w.RunOnce(context.Background()); got != 0 {
		t.Errorf("Expected 0 on error, got %d", got)
	}
}

func TestStartRunsUntilCancelled(t *testing.T) {
	p := &fakePruner{}
	w := NewWorker(p, 7)
	w.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for p.callCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	if p.callCount() < 2 {
		t.Errorf("Expected at least 2 passes, got %d", p.callCount())
	}
}

func TestStartDisabled(t *testing.T) {
	p := &fakePruner{}
	w := NewWorker(p, 0)
	w.Start(context.Background())

	time.Sleep(10 * time.Millisecond)
	if p.callCount() != 0 {
		t.Errorf("Expected no passes with retention disabled, got %d", p.callCount())
	}
}
