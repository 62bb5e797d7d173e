package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsWithoutRetrying(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), "happy", 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), "flaky", 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryReturnsLastErrorUnwrapped(t *testing.T) {
	errFirst := errors.New("attempt one")
	errSecond := errors.New("attempt two")
	errThird := errors.New("attempt three")
	sequence := []error{errFirst, errSecond, errThird}

	calls := 0
	err := Retry(context.Background(), "doomed", 3, time.Millisecond, func(ctx context.Context) error {
		err := sequence[calls]
		calls++
		return err
	})

	assert.Equal(t, 3, calls)
	// the exact last error, no exhaustion wrapper around it
	require.Equal(t, errThird, err)
}

func TestRetryDelayDoublesBetweenAttempts(t *testing.T) {
	base := 20 * time.Millisecond
	var stamps []time.Time

	_ = Retry(context.Background(), "backoff", 3, base, func(ctx context.Context) error {
		stamps = append(stamps, time.Now())
		return errors.New("always fails")
	})

	require.Len(t, stamps, 3)
	firstGap := stamps[1].Sub(stamps[0])
	secondGap := stamps[2].Sub(stamps[1])

	assert.GreaterOrEqual(t, firstGap, base)
	assert.GreaterOrEqual(t, secondGap, 2*base)
	assert.Less(t, secondGap, 10*base)
}

func TestRetryStopsBackoffOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	errAttempt := errors.New("attempt failed")

	calls := 0
	err := Retry(ctx, "cancelled", 5, time.Second, func(ctx context.Context) error {
		calls++
		cancel()
		return errAttempt
	})

	assert.Equal(t, 1, calls, "no further attempts after cancellation")
	assert.Equal(t, errAttempt, err)
}

func TestRetryClampsAttemptsToOne(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), "clamped", 0, time.Millisecond, func(ctx context.Context) error {
		calls++
		return errors.New("nope")
	})
	assert.Equal(t, 1, calls)
}
