package schedule

import (
	"sync"
	"time"
)

// Ticker schedules work on wall-clock time. Each task runs on its own
// goroutine; invocations of a single task never overlap.
type Ticker struct {
	wg sync.WaitGroup
}

// NewTicker returns a wall-clock scheduler.
func NewTicker() *Ticker { return &Ticker{} }

type tickerTask struct {
	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
	once    sync.Once
}

// Every starts a goroutine that calls fn each interval until the task is
// cancelled.
func (tk *Ticker) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{stop: make(chan struct{})}
	ticker := time.NewTicker(normalize(interval))
	tk.wg.Add(1)
	go func() {
		defer tk.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				t.mu.Lock()
				if !t.stopped {
					fn()
				}
				t.mu.Unlock()
			}
		}
	}()
	return t
}

// After starts a goroutine that calls fn once after d unless the task is
// cancelled first.
func (tk *Ticker) After(d time.Duration, fn func()) Task {
	t := &tickerTask{stop: make(chan struct{})}
	timer := time.NewTimer(normalize(d))
	tk.wg.Add(1)
	go func() {
		defer tk.wg.Done()
		defer timer.Stop()
		select {
		case <-t.stop:
		case <-timer.C:
			t.mu.Lock()
			if !t.stopped {
				t.stopped = true
				fn()
			}
			t.mu.Unlock()
		}
	}()
	return t
}

// Wait blocks until every task goroutine has exited.
func (tk *Ticker) Wait() { tk.wg.Wait() }

// Cancel stops the task. It waits for an in-flight invocation to finish, so
// a recurring task must not cancel itself from its own callback; chain After
// calls instead.
func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}
