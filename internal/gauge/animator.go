// Package gauge animates a gauge readout counting up to its value.
package gauge

import (
	"sync"
	"time"

	"citypulse/internal/schedule"
)

// Defaults match the dashboard gauges: 60 frames over one second.
const (
	DefaultDuration = time.Second
	DefaultSteps    = 60
)

// Animator counts a displayed value from zero up to a target on a
// scheduler, in equal increments. The last frame always shows the exact
// target. Each frame is a one-shot task that schedules the next, so the
// animation ends on its own once the target is reached.
type Animator struct {
	sched   schedule.Scheduler
	frame   time.Duration
	steps   int
	onFrame func(float64)

	mu        sync.Mutex
	epoch     uint64
	target    float64
	current   float64
	increment float64
	shown     float64
	task      schedule.Task
}

// NewAnimator returns an idle animator. Non-positive duration or steps fall
// back to the defaults. onFrame, if set, receives every displayed value.
func NewAnimator(sched schedule.Scheduler, duration time.Duration, steps int, onFrame func(float64)) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	return &Animator{
		sched:   sched,
		frame:   duration / time.Duration(steps),
		steps:   steps,
		onFrame: onFrame,
	}
}

// SetTarget restarts the count-up from zero towards target.
func (a *Animator) SetTarget(target float64) {
	a.Stop()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.target = target
	a.current = 0
	a.increment = target / float64(a.steps)
	a.shown = 0
	a.scheduleLocked()
}

// Value returns the currently displayed value.
func (a *Animator) Value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shown
}

// Target returns the value being counted towards.
func (a *Animator) Target() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.target
}

// Running reports whether the count-up is still in progress.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task != nil
}

// Stop cancels the count-up and leaves the displayed value where it is.
func (a *Animator) Stop() {
	a.mu.Lock()
	a.epoch++
	task := a.task
	a.task = nil
	a.mu.Unlock()
	if task != nil {
		task.Cancel()
	}
}

func (a *Animator) scheduleLocked() {
	epoch := a.epoch
	a.task = a.sched.After(a.frame, func() { a.tick(epoch) })
}

func (a *Animator) tick(epoch uint64) {
	a.mu.Lock()
	if epoch != a.epoch {
		a.mu.Unlock()
		return
	}
	a.current += a.increment
	if a.current >= a.target {
		a.shown = a.target
		a.task = nil
	} else {
		a.shown = a.current
		a.scheduleLocked()
	}
	shown := a.shown
	a.mu.Unlock()

	if a.onFrame != nil {
		a.onFrame(shown)
	}
}
