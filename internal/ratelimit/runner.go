package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/orchestrator"
)

// Limiters hands out one ATSRateLimiter per backend key, each with the delay
// delayFor returns for that key.
type Limiters struct {
	mu       sync.Mutex
	byKey    map[string]*ATSRateLimiter
	delayFor func(key string) time.Duration
}

// NewLimiters creates an empty set of limiters.
func NewLimiters(delayFor func(key string) time.Duration) *Limiters {
	return &Limiters{
		byKey:    make(map[string]*ATSRateLimiter),
		delayFor: delayFor,
	}
}

// For returns the limiter for key, creating it on first use.
func (l *Limiters) For(key string) *ATSRateLimiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.byKey[key]
	if !ok {
		lim = NewATSRateLimiter(l.delayFor(key))
		l.byKey[key] = lim
	}
	return lim
}

// RateLimitedRunner spaces out task starts per backend. Child processes do not
// share their fetcher limiters, so process isolation relies on this one.
type RateLimitedRunner struct {
	inner    orchestrator.Runner
	limiters *Limiters
	keyOf    map[string]string // source name -> backend key
}

// NewRateLimitedRunner wraps inner. Sources missing from keyOf are limited
// under their own name.
func NewRateLimitedRunner(inner orchestrator.Runner, limiters *Limiters, keyOf map[string]string) *RateLimitedRunner {
	return &RateLimitedRunner{inner: inner, limiters: limiters, keyOf: keyOf}
}

// Run waits for the task's backend slot, then delegates.
func (r *RateLimitedRunner) Run(ctx context.Context, t orchestrator.Task) ([]model.RawPosting, error) {
	key, ok := r.keyOf[t.Source]
	if !ok {
		key = t.Source
	}
	if err := r.limiters.For(key).Wait(ctx, key); err != nil {
		return nil, err
	}
	return r.inner.Run(ctx, t)
}
