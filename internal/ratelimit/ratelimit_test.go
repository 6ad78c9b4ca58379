package ratelimit

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

func TestWait_SameKey_EnforcesMinDelay(t *testing.T) {
	limiter := NewATSRateLimiter(100 * time.Millisecond)
	ctx := context.Background()

	// First call should return immediately.
	if err := limiter.Wait(ctx, "workday"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "workday"); err != nil {
		t.Fatalf("second wait: %v", err)
	}
	elapsed := time.Since(start)

	// Should have waited at least ~100ms (allow 80ms for timer jitter).
	if elapsed < 80*time.Millisecond {
		t.Errorf("expected >= 80ms wait, got %v", elapsed)
	}
}

func TestWait_DifferentKeys_NoCrossBlocking(t *testing.T) {
	limiter := NewATSRateLimiter(200 * time.Millisecond)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "greenhouse"); err != nil {
		t.Fatalf("greenhouse wait: %v", err)
	}

	start := time.Now()
	if err := limiter.Wait(ctx, "lever"); err != nil {
		t.Fatalf("lever wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("expected lever wait to be near-instant, got %v", elapsed)
	}
}

func TestWait_ConcurrentCallersAreSpaced(t *testing.T) {
	limiter := NewATSRateLimiter(50 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()

	var mu sync.Mutex
	var offsets []time.Duration
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := limiter.Wait(ctx, "workday"); err != nil {
				t.Errorf("wait: %v", err)
				return
			}
			mu.Lock()
			offsets = append(offsets, time.Since(start))
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	// Four callers need three gaps of 50ms; allow timer slack.
	if last := offsets[len(offsets)-1]; last < 120*time.Millisecond {
		t.Errorf("last caller started after %v, want >= 120ms", last)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	limiter := NewATSRateLimiter(5 * time.Second)

	if err := limiter.Wait(context.Background(), "workday"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx, "workday"); err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

type recordingFetcher struct {
	calls atomic.Int32
}

func (f *recordingFetcher) Fetch(_ context.Context, _ string, _, _ int) ([]model.RawPosting, error) {
	f.calls.Add(1)
	return nil, nil
}

func TestRateLimitedFetcher_WaitsBeforeDelegating(t *testing.T) {
	limiter := NewATSRateLimiter(100 * time.Millisecond)
	inner := &recordingFetcher{}
	fetcher := NewRateLimitedFetcher(inner, limiter, "workday")
	ctx := context.Background()

	if _, err := fetcher.Fetch(ctx, "risk", 24, 0); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	start := time.Now()
	if _, err := fetcher.Fetch(ctx, "audit", 24, 0); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	elapsed := time.Since(start)

	if n := inner.calls.Load(); n != 2 {
		t.Fatalf("expected 2 inner calls, got %d", n)
	}
	if elapsed < 80*time.Millisecond {
		t.Errorf("expected >= 80ms wait on second fetch, got %v", elapsed)
	}
}
