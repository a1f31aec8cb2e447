package schedule

import "time"

// Loop is a single-threaded scheduler driven by explicit time advances. The
// GUI host advances it once per frame and tests advance it by hand. Loop is
// not safe for concurrent use.
type Loop struct {
	now   time.Duration
	seq   uint64
	tasks []*loopTask
}

type loopTask struct {
	loop      *Loop
	seq       uint64
	interval  time.Duration
	next      time.Duration
	fn        func()
	once      bool
	cancelled bool
}

// NewLoop returns a Loop at time zero.
func NewLoop() *Loop { return &Loop{} }

// Now reports the simulated time elapsed since the Loop was created.
func (l *Loop) Now() time.Duration { return l.now }

// Pending reports the number of live tasks.
func (l *Loop) Pending() int { return len(l.tasks) }

// Every schedules fn to run each interval of simulated time.
func (l *Loop) Every(interval time.Duration, fn func()) Task {
	return l.add(normalize(interval), fn, false)
}

// After schedules fn to run once, d of simulated time from now.
func (l *Loop) After(d time.Duration, fn func()) Task {
	return l.add(normalize(d), fn, true)
}

func (l *Loop) add(interval time.Duration, fn func(), once bool) *loopTask {
	l.seq++
	t := &loopTask{
		loop:     l,
		seq:      l.seq,
		interval: interval,
		next:     l.now + interval,
		fn:       fn,
		once:     once,
	}
	l.tasks = append(l.tasks, t)
	return t
}

// Advance moves simulated time forward by d, firing every task that comes due
// in deadline order. Ties fire in registration order. It returns the number
// of invocations.
func (l *Loop) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := l.now + d
	fired := 0
	for {
		t := l.due(target)
		if t == nil {
			break
		}
		l.now = t.next
		t.next += t.interval
		if t.once {
			t.Cancel()
		}
		t.fn()
		fired++
	}
	l.now = target
	return fired
}

func (l *Loop) due(target time.Duration) *loopTask {
	var best *loopTask
	for _, t := range l.tasks {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Cancel removes the task from its loop.
func (t *loopTask) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	tasks := t.loop.tasks
	for i, other := range tasks {
		if other == t {
			t.loop.tasks = append(tasks[:i], tasks[i+1:]...)
			break
		}
	}
}
