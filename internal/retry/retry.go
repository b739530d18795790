// Package retry implements bounded exponential backoff with jitter.
//
// All retry behavior in the collector goes through this package: platform
// fetch attempts, alternate-query fallbacks and API calls share one policy
// rather than scattering ad hoc retry branches through adapter code.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/logger"
)

// Options controls a retry loop.
type Options struct {
	// MaxAttempts is the total attempt budget, including the first try.
	MaxAttempts int

	// BaseDelay seeds the backoff: attempt n waits BaseDelay * 2^n plus
	// jitter before the next try.
	BaseDelay time.Duration

	// Label tags errors and log lines for diagnostics.
	Label string

	// Sleep overrides the wait between attempts. Tests inject a recorder
	// here; the default waits for the computed duration or until the
	// context is canceled.
	Sleep func(context.Context, time.Duration) error
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
	if o.Label == "" {
		o.Label = "operation"
	}
	if o.Sleep == nil {
		o.Sleep = sleepCtx
	}
	return o
}

// Do runs op until it succeeds or the attempt budget is exhausted. Every
// error is considered retryable. On final failure the last error is
// returned, wrapped with the label.
func Do[T any](ctx context.Context, op func() (T, error), opts Options) (T, error) {
	return DoIf(ctx, op, opts, func(error) bool { return true })
}

// DoIf is the conditional variant: shouldRetry inspects each failure, and a
// non-retryable error is surfaced immediately without consuming the
// remaining attempt budget.
func DoIf[T any](ctx context.Context, op func() (T, error), opts Options, shouldRetry func(error) bool) (T, error) {
	opts = opts.withDefaults()

	var zero T
	var lastErr error

	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op()
		if err == nil {
			if attempt > 0 {
				logger.Info("operation succeeded after retries", "context", opts.Label, "attempt", attempt+1)
			}
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return zero, fmt.Errorf("%s: %w", opts.Label, err)
		}

		if attempt == opts.MaxAttempts-1 {
			break
		}

		wait := Backoff(attempt, opts.BaseDelay)
		logger.Warn("operation failed, retrying",
			"context", opts.Label,
			"attempt", attempt+1,
			"max_attempts", opts.MaxAttempts,
			"wait", wait.Round(time.Millisecond),
			"error", err)

		if err := opts.Sleep(ctx, wait); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%s failed after %d attempts: %w", opts.Label, opts.MaxAttempts, lastErr)
}

// Backoff computes the wait before retrying a failed attempt (0-indexed):
// base * 2^attempt plus up to one second of random jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	wait := base * (1 << attempt)
	jitter := time.Duration(rand.Int63n(int64(time.Second)))
	return wait + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
