// Package orchestrator fans fetch tasks out to a bounded pool of runners and
// collects every outcome, successful or not, as a value.
package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amishk599/bankradar/internal/model"
)

// Runner executes a single task.
type Runner interface {
	Run(ctx context.Context, t Task) ([]model.RawPosting, error)
}

// Orchestrator runs a batch of tasks with at most workers in flight.
type Orchestrator struct {
	runner  Runner
	workers int
	logger  *slog.Logger
}

// New creates an orchestrator. workers below 1 means 1.
func New(runner Runner, workers int, logger *slog.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{runner: runner, workers: workers, logger: logger}
}

// RunCycle runs every task and returns one result per task in completion
// order. A failing task never stops the others.
func (o *Orchestrator) RunCycle(ctx context.Context, tasks []Task) []TaskResult {
	start := time.Now()
	var (
		mu      sync.Mutex
		results = make([]TaskResult, 0, len(tasks))
	)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, t := range tasks {
		g.Go(func() error {
			r := o.runOne(ctx, t)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	o.logger.Info("fetch cycle complete",
		"tasks", len(tasks),
		"failed", len(Failures(results)),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return results
}

func (o *Orchestrator) runOne(ctx context.Context, t Task) TaskResult {
	records, err := o.runner.Run(ctx, t)
	if err != nil {
		o.logger.Warn("fetch task failed",
			"source", t.Source,
			"keyword", t.Keyword,
			"error", err,
		)
		return Failure{Task: t, Message: err.Error()}
	}
	o.logger.Debug("fetch task done",
		"source", t.Source,
		"keyword", t.Keyword,
		"records", len(records),
	)
	return Success{Task: t, Records: records}
}
