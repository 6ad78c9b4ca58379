package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/pipeline"
)

// CountingCycle counts runs and cancels after limit of them when cancel is set.
type CountingCycle struct {
	calls  atomic.Int32
	limit  int32
	cancel context.CancelFunc
	err    error
}

func (c *CountingCycle) Run(_ context.Context) (pipeline.Summary, error) {
	n := c.calls.Add(1)
	if c.cancel != nil && n >= c.limit {
		c.cancel()
	}
	return pipeline.Summary{}, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ImmediateCycleThenInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cycle := &CountingCycle{limit: 3, cancel: cancel}

	s := NewScheduler(cycle, 10*time.Millisecond, discardLogger())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v, want nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	if n := cycle.calls.Load(); n != 3 {
		t.Errorf("expected 3 cycles, got %d", n)
	}
}

func TestRun_FirstCycleIsImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cycle := &CountingCycle{}

	s := NewScheduler(cycle, time.Hour, discardLogger())
	go s.Run(ctx)

	deadline := time.Now().Add(time.Second)
	for cycle.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if cycle.calls.Load() != 1 {
		t.Fatalf("expected the first cycle right away, got %d", cycle.calls.Load())
	}
}

func TestRun_StoreErrorStops(t *testing.T) {
	cycle := &CountingCycle{err: errors.New("disk I/O error")}
	s := NewScheduler(cycle, time.Millisecond, discardLogger())

	err := s.Run(context.Background())
	if err == nil {
		t.Fatal("expected cycle error to stop the scheduler")
	}
	if n := cycle.calls.Load(); n != 1 {
		t.Errorf("expected 1 cycle before stopping, got %d", n)
	}
}
