// Package heatmap keeps the latest congestion field current for a host that
// renders it.
package heatmap

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"citypulse/internal/heatfield"
	"citypulse/internal/schedule"
)

// DefaultInterval is the regeneration period used by the dashboard.
const DefaultInterval = 5 * time.Second

// ErrInvalidInterval reports a non-positive regeneration interval.
var ErrInvalidInterval = errors.New("refresh interval must be positive")

// Generator produces a brand-new field on every call.
type Generator interface {
	Generate() *heatfield.Field
}

// Monitor regenerates a field on a fixed interval while active. Readers
// always get a complete field: each generation is built off to the side and
// published with a single pointer swap.
type Monitor struct {
	gen      Generator
	sched    schedule.Scheduler
	interval time.Duration

	current    atomic.Pointer[heatfield.Field]
	generation atomic.Uint64

	mu   sync.Mutex
	task schedule.Task

	// genMu serialises generation. A cancelled ticker callback may still be
	// finishing while Activate runs the next refresh.
	genMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func(*heatfield.Field)
}

// NewMonitor wires a generator to a scheduler.
func NewMonitor(gen Generator, sched schedule.Scheduler, interval time.Duration) (*Monitor, error) {
	if gen == nil {
		return nil, errors.New("new monitor: generator is required")
	}
	if sched == nil {
		return nil, errors.New("new monitor: scheduler is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("new monitor: interval %v: %w", interval, ErrInvalidInterval)
	}
	return &Monitor{gen: gen, sched: sched, interval: interval}, nil
}

// Interval returns the regeneration period.
func (m *Monitor) Interval() time.Duration { return m.interval }

// OnUpdate registers fn to be called with each newly published field.
func (m *Monitor) OnUpdate(fn func(*heatfield.Field)) {
	if fn == nil {
		return
	}
	m.listenersMu.Lock()
	m.listeners = append(m.listeners, fn)
	m.listenersMu.Unlock()
}

// Activate publishes a field immediately and then once per interval. Calling
// Activate on an active monitor does nothing.
func (m *Monitor) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.task != nil {
		return
	}
	m.refresh()
	m.task = m.sched.Every(m.interval, m.refresh)
}

// Deactivate cancels the recurring regeneration. No field is generated after
// it returns. The last published field stays readable.
func (m *Monitor) Deactivate() {
	m.mu.Lock()
	task := m.task
	m.task = nil
	m.mu.Unlock()
	if task != nil {
		task.Cancel()
	}
}

// Active reports whether the monitor is regenerating.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.task != nil
}

// Latest returns the most recently published field, or nil before the first
// activation.
func (m *Monitor) Latest() *heatfield.Field { return m.current.Load() }

// Generation reports how many fields have been published.
func (m *Monitor) Generation() uint64 { return m.generation.Load() }

// refresh publishes a new field and notifies listeners. Listeners run outside
// genMu so they may block on the host's event loop.
func (m *Monitor) refresh() {
	m.genMu.Lock()
	f := m.gen.Generate()
	m.current.Store(f)
	m.generation.Add(1)
	m.genMu.Unlock()

	m.listenersMu.RLock()
	listeners := slices.Clone(m.listeners)
	m.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(f)
	}
}
