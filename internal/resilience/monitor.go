package resilience

import (
	"log"
	"time"
)

// Monitor is scoped start/stop/error instrumentation around a named operation.
type Monitor struct {
	op    string
	start time.Time
}

func StartMonitor(op string) *Monitor {
	return &Monitor{op: op, start: time.Now()}
}

func (m *Monitor) Elapsed() time.Duration {
	return time.Since(m.start)
}

func (m *Monitor) Done() {
	log.Printf("%s completed in %s", m.op, m.Elapsed())
}

func (m *Monitor) Fail(err error) {
	log.Printf("%s failed after %s: %v", m.op, m.Elapsed(), err)
}
