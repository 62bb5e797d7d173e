package resilience

import "time"

// Per-upstream call budgets. These are deliberately compile-time constants,
// not runtime configuration.
const (
	DefaultTimeout   = 15 * time.Second
	AICallTimeout    = 30 * time.Second
	ImageCallTimeout = 10 * time.Second

	AIMaxAttempts = 3
	AIBaseDelay   = 1 * time.Second

	ImageMaxAttempts = 3
	ImageBaseDelay   = 500 * time.Millisecond

	BreakerFailureThreshold = 5
	BreakerResetTimeout     = 30 * time.Second
)

// Operation describes a single outbound call site: how long one attempt may
// take and how the attempt loop behaves. Constructed per call site, never mutated.
type Operation struct {
	Name        string
	Deadline    time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
}

func (op Operation) withDefaults() Operation {
	if op.Deadline <= 0 {
		op.Deadline = DefaultTimeout
	}
	if op.MaxAttempts < 1 {
		op.MaxAttempts = 1
	}
	return op
}
