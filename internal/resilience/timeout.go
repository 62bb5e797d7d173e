package resilience

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError reports that a single attempt against an upstream exceeded its
// configured deadline. It is retryable like any other failure; the retry loop
// is an outer concern.
type TimeoutError struct {
	Op    string
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Op, e.Limit)
}

// BoundCall runs fn under its own deadline. The deadline bounds exactly one
// attempt. fn receives a context that is cancelled when the deadline fires,
// so a well-behaved upstream call gets to abort early.
//
// If fn has already settled when the deadline fires, the real result wins.
// Cancellation of the parent context is propagated as the parent's error,
// not converted into a TimeoutError.
func BoundCall(ctx context.Context, name string, limit time.Duration, fn func(ctx context.Context) error) error {
	if limit <= 0 {
		limit = DefaultTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(callCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-callCtx.Done():
		// The attempt may have settled in the same instant the deadline
		// fired; a settled result always beats the deadline.
		select {
		case err := <-done:
			return err
		default:
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return &TimeoutError{Op: name, Limit: limit}
	}
}
