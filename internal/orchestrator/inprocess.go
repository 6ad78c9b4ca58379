package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

// InProcessRunner runs tasks on goroutines against a registry of fetchers.
type InProcessRunner struct {
	fetchers map[string]model.Fetcher
	timeout  time.Duration
}

// NewInProcessRunner creates a runner over fetchers keyed by source name. A
// zero timeout disables the per-task deadline.
func NewInProcessRunner(fetchers map[string]model.Fetcher, timeout time.Duration) *InProcessRunner {
	return &InProcessRunner{fetchers: fetchers, timeout: timeout}
}

type fetchOutcome struct {
	records []model.RawPosting
	err     error
}

// Run fetches t. A fetcher that panics or overruns the timeout yields an
// error. A fetcher that ignores its context keeps its goroutine until it
// returns, but Run does not wait for it.
func (r *InProcessRunner) Run(ctx context.Context, t Task) ([]model.RawPosting, error) {
	f, ok := r.fetchers[t.Source]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", t.Source)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	done := make(chan fetchOutcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- fetchOutcome{err: fmt.Errorf("fetcher panicked: %v", p)}
			}
		}()
		records, err := f.Fetch(ctx, t.Keyword, t.Hours, t.Limit)
		done <- fetchOutcome{records: records, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("fetching %s: %w", t, out.err)
		}
		return out.records, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("fetching %s: %w", t, ctx.Err())
	}
}
