// Package scheduler repeats fetch cycles on an interval.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/bankradar/internal/pipeline"
)

// CycleRunner runs one full cycle.
type CycleRunner interface {
	Run(ctx context.Context) (pipeline.Summary, error)
}

// Scheduler owns the daemon loop: one immediate cycle, then one per interval.
type Scheduler struct {
	cycle    CycleRunner
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler that runs cycle at the given interval.
func NewScheduler(cycle CycleRunner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cycle:    cycle,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the loop. It returns nil when ctx is cancelled (graceful
// shutdown) and the cycle's error when a cycle fails on the store, since
// every later cycle would fail the same way. The interval is measured from the
// end of one cycle to the start of the next, so cycles never overlap.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting scheduler", "interval", s.interval.String())

	for n := 1; ; n++ {
		sum, err := s.cycle.Run(ctx)
		if ctx.Err() != nil {
			s.logger.Info("shutting down scheduler")
			return nil
		}
		if err != nil {
			return fmt.Errorf("cycle %d: %w", n, err)
		}
		s.logger.Debug("cycle finished", "cycle", n, "new", sum.New, "next_in", s.interval.String())

		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("shutting down scheduler")
			return nil
		case <-timer.C:
		}
	}
}
