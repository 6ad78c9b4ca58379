// Package ratelimit spaces out requests that share a backend.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

// ATSRateLimiter enforces a minimum delay between requests to the same
// backend (an ATS type or a single career site). Concurrent callers queue up:
// each reserves the next free slot before sleeping.
type ATSRateLimiter struct {
	mu       sync.Mutex
	next     map[string]time.Time // key: backend name, value: earliest next start
	minDelay time.Duration
	now      func() time.Time
}

// NewATSRateLimiter creates a rate limiter that enforces minDelay between
// consecutive requests to the same backend.
func NewATSRateLimiter(minDelay time.Duration) *ATSRateLimiter {
	return &ATSRateLimiter{
		next:     make(map[string]time.Time),
		minDelay: minDelay,
		now:      time.Now,
	}
}

// Wait blocks until the caller's slot for key arrives. A cancelled context
// returns an error; the reserved slot is not handed back.
func (r *ATSRateLimiter) Wait(ctx context.Context, key string) error {
	r.mu.Lock()
	now := r.now()
	slot := now
	if next, ok := r.next[key]; ok && next.After(now) {
		slot = next
	}
	r.next[key] = slot.Add(r.minDelay)
	r.mu.Unlock()

	remaining := slot.Sub(now)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", key, ctx.Err())
	case <-timer.C:
		return nil
	}
}

// RateLimitedFetcher is a decorator that enforces backend-level rate limiting
// before delegating to the wrapped Fetcher.
type RateLimitedFetcher struct {
	inner   model.Fetcher
	limiter *ATSRateLimiter
	key     string
}

// NewRateLimitedFetcher wraps a Fetcher with rate limiting under key.
// All fetchers hitting the same backend should share one limiter and key.
func NewRateLimitedFetcher(inner model.Fetcher, limiter *ATSRateLimiter, key string) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		inner:   inner,
		limiter: limiter,
		key:     key,
	}
}

// Fetch waits for the rate limiter to allow a request, then delegates to the
// wrapped fetcher.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, keyword string, hours, limit int) ([]model.RawPosting, error) {
	if err := f.limiter.Wait(ctx, f.key); err != nil {
		return nil, err
	}
	return f.inner.Fetch(ctx, keyword, hours, limit)
}
