package fetch

import (
	"context"

	"github.com/fwojciec/somnolent"
	"golang.org/x/time/rate"
)

// Ensure LimitedFetcher implements somnolent.Fetcher at compile time.
var _ somnolent.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher spaces out requests to the story site using a token
// bucket with a burst of 1.
type LimitedFetcher struct {
	next    somnolent.Fetcher
	limiter *rate.Limiter
}

// NewLimitedFetcher wraps next so that it receives at most rps requests
// per second.
func NewLimitedFetcher(next somnolent.Fetcher, rps float64) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Fetch waits for the limiter and delegates to the wrapped fetcher.
func (f *LimitedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", somnolent.Errorf(somnolent.EFETCH, "rate limit wait for %s: %v", url, err)
	}
	return f.next.Fetch(ctx, url)
}

// Close closes the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
