package scan

import (
	"context"
	"time"
)

// FetchFunc fetches the HTML of a single URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultBackoff returns the delays applied between fetch attempts.
// Three retries after the initial attempt: 1s, 2s, 4s.
func DefaultBackoff() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithBackoff fetches a URL, retrying once per entry in delays
// after waiting out that entry. Transient network failures on contact
// pages are common enough that a scan should not give up on the first
// error. Returns the last fetch error if every attempt fails, or the
// context error if it is canceled mid-backoff.
func FetchWithBackoff(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	if err == nil {
		return html, nil
	}

	for _, delay := range delays {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		if html, err = fetch(ctx, url); err == nil {
			return html, nil
		}
	}

	return "", err
}
