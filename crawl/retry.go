package crawl

import (
	"context"
	"time"

	"github.com/hostwalk/hostwalk"
)

// Compile-time interface verification.
var _ hostwalk.Fetcher = (*RetryFetcher)(nil)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher decorates a Fetcher with backoff retries. The engine
// itself never retries; callers wanting resilience wrap their fetcher
// in one of these and keep the retry policy outside the core.
type RetryFetcher struct {
	Fetcher hostwalk.Fetcher

	// Delays between attempts; nil means DefaultRetryDelays.
	Delays []time.Duration

	// Log, if set, is called for each retry attempt.
	Log LogFunc
}

// Fetch attempts the fetch up to len(Delays)+1 times, sleeping between
// attempts. Returns the last error if every attempt fails.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	delays := r.Delays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := r.Fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if r.Log != nil {
			r.Log("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
