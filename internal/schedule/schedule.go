// Package schedule runs recurring work behind a cancellable handle.
package schedule

import "time"

// MinInterval is the shortest period a task can be scheduled with; shorter
// or non-positive intervals are raised to it.
const MinInterval = time.Millisecond

// Task is the handle for a recurring unit of work. Once Cancel returns the
// work is never invoked again. Cancel is idempotent.
type Task interface {
	Cancel()
}

// Scheduler registers delayed and recurring work.
type Scheduler interface {
	// Every runs fn each interval until cancelled. The first invocation
	// happens one interval after registration.
	Every(interval time.Duration, fn func()) Task
	// After runs fn once, d from now, unless cancelled first.
	After(d time.Duration, fn func()) Task
}

func normalize(interval time.Duration) time.Duration {
	if interval < MinInterval {
		return MinInterval
	}
	return interval
}
