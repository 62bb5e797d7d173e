package resilience

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig holds the configuration for one upstream's circuit breaker.
type BreakerConfig struct {
	Name             string
	FailureThreshold uint32
	ResetTimeout     time.Duration
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		FailureThreshold: BreakerFailureThreshold,
		ResetTimeout:     BreakerResetTimeout,
	}
}

// Breaker wraps gobreaker.CircuitBreaker for a single upstream service.
// Only consecutive failures since the last success count toward tripping;
// a success in the closed state resets the counter. The half-open state
// admits exactly one trial request.
type Breaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("circuit %s: %s -> %s", name, from, to)
		},
	}
	return &Breaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the breaker. While the circuit is open it returns
// gobreaker.ErrOpenState without invoking fn at all.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

func (b *Breaker) Name() string { return b.name }

func (b *Breaker) State() gobreaker.State { return b.breaker.State() }

func (b *Breaker) IsOpen() bool { return b.breaker.State() == gobreaker.StateOpen }

// IsBreakerOpen reports whether err is a fail-fast rejection, meaning no
// network attempt was made and no retry or deadline budget was consumed.
func IsBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Registry owns one breaker per upstream service name for the life of the
// process. It is constructed once at the composition root and handed to every
// call site, so the fail-fast policy is process-wide without package globals.
type Registry struct {
	mu       sync.Mutex
	breakers map[string]*Breaker
}

func NewRegistry() *Registry {
	return &Registry{breakers: make(map[string]*Breaker)}
}

// Breaker returns the shared breaker for the named upstream, creating it with
// default thresholds on first use.
func (r *Registry) Breaker(name string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.breakers[name]; ok {
		return b
	}
	b := NewBreaker(DefaultBreakerConfig(name))
	r.breakers[name] = b
	return b
}

// Execute performs a resilient call against the upstream named by op:
//
//	breaker( retry( timeout-bounded attempt ) )
//
// The breaker sees the retried operation's final outcome, so it opens on
// sustained failure rather than on one slow attempt absorbed by retry. The
// deadline bounds a single attempt, so N attempts cost at most N deadlines.
// When the breaker is open, fn is never invoked.
func (r *Registry) Execute(ctx context.Context, op Operation, fn func(ctx context.Context) error) error {
	op = op.withDefaults()
	return r.Breaker(op.Name).Execute(func() error {
		return Retry(ctx, op.Name, op.MaxAttempts, op.BaseDelay, func(ctx context.Context) error {
			return BoundCall(ctx, op.Name, op.Deadline, fn)
		})
	})
}
