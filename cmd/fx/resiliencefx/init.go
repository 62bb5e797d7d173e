package resiliencefx

import (
	"go.uber.org/fx"

	"tripforge/internal/resilience"
)

// The registry is the composition root for circuit-breaker state: one breaker
// per upstream for the life of the process, shared by every call site.
var Module = fx.Provide(
	provideRegistry)

func provideRegistry() *resilience.Registry {
	return resilience.NewRegistry()
}
