package resilience

import (
	"context"
	"fmt"
	"time"
)

// Retry runs fn up to maxAttempts times. Before attempt k+1 it sleeps
// baseDelay * 2^(k-1). After the final attempt fails, the last underlying
// error is returned as-is; there is no "retries exhausted" wrapper, so
// callers can still inspect the real failure.
//
// A TimeoutError from the bounded call is retryable like any other failure.
func Retry(ctx context.Context, label string, maxAttempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		mon := StartMonitor(fmt.Sprintf("%s attempt %d/%d", label, attempt, maxAttempts))
		err := fn(ctx)
		if err == nil {
			mon.Done()
			return nil
		}
		mon.Fail(err)
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		delay := baseDelay * (1 << (attempt - 1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return lastErr
		}
	}
	return lastErr
}
