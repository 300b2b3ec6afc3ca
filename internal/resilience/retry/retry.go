// Package retry re-attempts idempotent upstream reads with exponential backoff.
//
// Only the content store is read through this package. A failure is retried when
// the upstream never answered (TransportError) or answered with a transient
// status (StatusError 408, 429 or 5xx). Everything else, including
// entity.ErrNotFound and a malformed body, ends the loop at once.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
)

// Config holds the backoff schedule.
type Config struct {
	// MaxAttempts is the total number of calls, including the first
	MaxAttempts int

	// InitialDelay is the wait before the second attempt
	InitialDelay time.Duration

	// MaxDelay caps the wait between attempts
	MaxDelay time.Duration

	// Multiplier grows the delay after each retry
	Multiplier float64

	// JitterFraction adds up to this fraction of the delay at random (0.0 to 1.0)
	JitterFraction float64

	// OnRetry, when set, is called before each wait with the attempt that failed
	OnRetry func(attempt int, err error)
}

// ContentStoreConfig returns the schedule for content store lookups.
// Lookups sit on the request path, so the whole schedule stays under two seconds.
func ContentStoreConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   100 * time.Millisecond,
		MaxDelay:       1 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// TransportError is a request that got no HTTP response at all:
// DNS failure, refused or reset connection, or the per-attempt client timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "execute http request: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is an upstream answer with an unexpected status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Transient reports whether the status is worth asking for again.
func (e *StatusError) Transient() bool {
	switch {
	case e.StatusCode >= 500:
		return true
	case e.StatusCode == http.StatusTooManyRequests, e.StatusCode == http.StatusRequestTimeout:
		return true
	}
	return false
}

// IsRetryable classifies err from a single attempt.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, entity.ErrNotFound) || errors.Is(err, context.Canceled) {
		return false
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return true
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.Transient()
	}
	return false
}

// Do calls fn until it succeeds, fails terminally, ctx ends, or cfg.MaxAttempts
// is used up. It returns the number of calls made alongside the final error.
// When ctx ends the caller's context error is returned, not the attempt's.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) (int, error) {
	maxAttempts := max(cfg.MaxAttempts, 1)
	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				slog.InfoContext(ctx, "upstream read succeeded after retry", slog.Int("attempt", attempt))
			}
			return attempt, nil
		}
		if ctx.Err() != nil {
			return attempt, fmt.Errorf("retry aborted: %w", context.Cause(ctx))
		}
		if !IsRetryable(err) {
			return attempt, err
		}
		if attempt == maxAttempts {
			return attempt, fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}

		wait := withJitter(delay, cfg.JitterFraction)
		slog.WarnContext(ctx, "upstream read failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
			slog.Duration("delay", wait),
			slog.Any("error", err))
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return attempt, fmt.Errorf("retry aborted: %w", context.Cause(ctx))
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 {
			delay = min(delay, cfg.MaxDelay)
		}
	}
}

func withJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = min(fraction, 1.0)
	// #nosec G404 -- backoff jitter needs no cryptographic randomness
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}
