// Package retry runs an action a bounded number of times with a pluggable
// backoff and sleep, so the schedule can be driven by a fake clock in tests.
package retry

import (
	"context"
	"errors"
	"time"
)

// PermanentError marks an error that must not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so Do returns it without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// BackoffFunc returns the delay to wait before the given attempt (0-based).
type BackoffFunc func(attempt int) time.Duration

// Linear waits attempt*step before each attempt: 0, step, 2*step, ...
func Linear(step time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Policy configures Do.
type Policy struct {
	MaxAttempts int
	Backoff     BackoffFunc
	Sleep       SleepFunc
	// OnRetry is called before waiting for attempt (1-based retries only).
	OnRetry func(attempt int, delay time.Duration, lastErr error)
}

// Do calls fn until it succeeds, returns a permanent error, or the attempt
// budget is spent. The last observed error is returned on exhaustion.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	backoff := p.Backoff
	if backoff == nil {
		backoff = func(int) time.Duration { return 0 }
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var last error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoff(attempt)
			if p.OnRetry != nil {
				p.OnRetry(attempt, delay, last)
			}
			if err := sleep(ctx, delay); err != nil {
				return zero, err
			}
		}

		out, err := fn(ctx, attempt)
		if err == nil {
			return out, nil
		}
		var perm *PermanentError
		if errors.As(err, &perm) {
			return zero, perm.Err
		}
		last = err
	}
	return zero, last
}
