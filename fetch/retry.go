// Package fetch decorates a somnolent.Fetcher with politeness and retry
// behavior for talking to the story site.
package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/somnolent"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements somnolent.Fetcher at compile time.
var _ somnolent.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with backoff before giving up with
// the last error.
type RetryFetcher struct {
	next   somnolent.Fetcher
	logger *slog.Logger
	delays []time.Duration
}

// NewRetryFetcher wraps next. It makes one attempt plus one retry per
// delay. A nil delays slice uses DefaultRetryDelays.
func NewRetryFetcher(next somnolent.Fetcher, logger *slog.Logger, delays []time.Duration) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryFetcher{next: next, logger: logger, delays: delays}
}

// Fetch delegates to the wrapped fetcher, retrying on failure. ENOTFOUND
// is returned without retrying. A canceled or expired context ends the
// loop with EFETCH.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if somnolent.ErrorCode(err) == somnolent.ENOTFOUND {
			return "", err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", somnolent.Errorf(somnolent.EFETCH, "fetch %s: %v", url, ctxErr)
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		f.logger.Warn("fetch retry", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", somnolent.Errorf(somnolent.EFETCH, "fetch %s: %v", url, ctx.Err())
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
