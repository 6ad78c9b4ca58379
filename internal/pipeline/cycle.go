package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/orchestrator"
)

// DefaultRetention is how long a posting stays stored, by posted date.
const DefaultRetention = 30 * 24 * time.Hour

// CycleConfig selects what one cycle fetches.
type CycleConfig struct {
	Sources   []string
	Keywords  []string // empty means one unfiltered task per source
	Hours     int
	Limit     int
	Retention time.Duration // zero means DefaultRetention
}

// Summary reports one cycle.
type Summary struct {
	IngestStats
	Tasks    int
	Fetched  int
	Evicted  int64
	Failures []orchestrator.Failure
	Duration time.Duration
}

// Cycle runs fetch, ingest and eviction once.
type Cycle struct {
	orch     *orchestrator.Orchestrator
	ingester *Ingester
	store    model.Store
	cfg      CycleConfig
	logger   *slog.Logger
}

// NewCycle creates a Cycle.
func NewCycle(orch *orchestrator.Orchestrator, ingester *Ingester, store model.Store, cfg CycleConfig, logger *slog.Logger) *Cycle {
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}
	return &Cycle{
		orch:     orch,
		ingester: ingester,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run fans the fetch tasks out, ingests whatever came back and evicts expired
// postings. Failed tasks are reported in the summary; only store errors are
// returned.
func (c *Cycle) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	tasks := orchestrator.BuildTasks(c.cfg.Sources, c.cfg.Keywords, c.cfg.Hours, c.cfg.Limit)
	results := c.orch.RunCycle(ctx, tasks)
	candidates := orchestrator.Flatten(results)

	sum := Summary{
		Tasks:    len(tasks),
		Fetched:  len(candidates),
		Failures: orchestrator.Failures(results),
	}

	stats, err := c.ingester.Ingest(ctx, candidates)
	sum.IngestStats = stats
	if err != nil {
		sum.Duration = time.Since(start)
		return sum, fmt.Errorf("ingesting: %w", err)
	}

	evicted, err := c.store.EvictOlderThan(ctx, c.cfg.Retention)
	sum.Evicted = evicted
	sum.Duration = time.Since(start)
	if err != nil {
		return sum, fmt.Errorf("evicting: %w", err)
	}

	c.logger.Info("cycle complete",
		"tasks", sum.Tasks,
		"fetched", sum.Fetched,
		"new", sum.New,
		"duplicates", sum.Duplicates,
		"rejected", sum.Rejected,
		"filtered", sum.Filtered,
		"evicted", sum.Evicted,
		"failed_tasks", len(sum.Failures),
		"duration", sum.Duration.Round(time.Millisecond),
	)
	for _, f := range sum.Failures {
		c.logger.Warn("task failed", "source", f.Task.Source, "keyword", f.Task.Keyword, "error", f.Message)
	}
	return sum, nil
}
