// Package clock provides helpers for waiting and periodic work bound to a context.
package clock

import (
	"context"
	"fmt"
	"time"
)

// SleepWithContext waits for d or returns ctx.Err() once ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry calls fn until it succeeds or attempts run out, sleeping delay between
// calls, and returns ctx.Err() once ctx is done. onFailure, if set, is told
// about every failed attempt that will be retried. The last error of fn is
// wrapped in the returned error.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error, onFailure func(attempt int, err error)) error {
	attempts = max(attempts, 1)
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= attempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}
		if onFailure != nil {
			onFailure(attempt, err)
		}
		if err := SleepWithContext(ctx, delay); err != nil {
			return err
		}
	}
}
