package schedule

import (
	"slices"
	"testing"
	"time"
)

func TestLoopFiresEachInterval(t *testing.T) {
	loop := NewLoop()
	calls := 0
	loop.Every(5*time.Second, func() { calls++ })

	if n := loop.Advance(4999 * time.Millisecond); n != 0 || calls != 0 {
		t.Fatalf("expected no calls before the first interval, got %d", calls)
	}
	loop.Advance(time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected 1 call at 5s, got %d", calls)
	}
	if n := loop.Advance(20 * time.Second); n != 4 {
		t.Fatalf("expected 4 calls over the next 20s, got %d", n)
	}
	if loop.Now() != 25*time.Second {
		t.Fatalf("expected now=25s, got %v", loop.Now())
	}
}

func TestLoopCancelStopsFurtherCalls(t *testing.T) {
	loop := NewLoop()
	calls := 0
	task := loop.Every(time.Second, func() { calls++ })

	loop.Advance(3 * time.Second)
	task.Cancel()
	task.Cancel()
	loop.Advance(time.Minute)

	if calls != 3 {
		t.Fatalf("expected 3 calls before cancel, got %d", calls)
	}
	if loop.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", loop.Pending())
	}
}

func TestLoopCancelFromCallback(t *testing.T) {
	loop := NewLoop()
	calls := 0
	var task Task
	task = loop.Every(time.Second, func() {
		calls++
		if calls == 2 {
			task.Cancel()
		}
	})
	loop.Advance(10 * time.Second)
	if calls != 2 {
		t.Fatalf("expected self-cancel after 2 calls, got %d", calls)
	}
}

func TestLoopCancelOtherTaskMidAdvance(t *testing.T) {
	loop := NewLoop()
	var order []string
	var victim Task
	loop.Every(time.Second, func() {
		order = append(order, "a")
		victim.Cancel()
	})
	victim = loop.Every(time.Second, func() { order = append(order, "b") })

	loop.Advance(3 * time.Second)
	if !slices.Equal(order, []string{"a", "a", "a"}) {
		t.Fatalf("cancelled task must not fire after cancel, got %v", order)
	}
}

func TestLoopOrdersByDeadlineThenRegistration(t *testing.T) {
	loop := NewLoop()
	var order []string
	loop.Every(2*time.Second, func() { order = append(order, "slow") })
	loop.Every(time.Second, func() { order = append(order, "fast") })

	loop.Advance(2 * time.Second)
	want := []string{"fast", "slow", "fast"}
	if !slices.Equal(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestLoopNormalizesInterval(t *testing.T) {
	loop := NewLoop()
	calls := 0
	loop.Every(0, func() { calls++ })
	loop.Advance(5 * time.Millisecond)
	if calls != 5 {
		t.Fatalf("expected 5 calls at the minimum interval, got %d", calls)
	}
}

func TestLoopNegativeAdvance(t *testing.T) {
	loop := NewLoop()
	loop.Advance(time.Second)
	loop.Advance(-time.Hour)
	if loop.Now() != time.Second {
		t.Fatalf("negative advance must not rewind, got %v", loop.Now())
	}
}

func TestLoopAfterFiresOnce(t *testing.T) {
	loop := NewLoop()
	calls := 0
	loop.After(time.Second, func() { calls++ })
	loop.Advance(10 * time.Second)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	if loop.Pending() != 0 {
		t.Fatalf("expected one-shot task to be removed, got %d pending", loop.Pending())
	}
}

func TestLoopAfterChain(t *testing.T) {
	loop := NewLoop()
	var at []time.Duration
	var step func()
	step = func() {
		at = append(at, loop.Now())
		if len(at) < 3 {
			loop.After(time.Second, step)
		}
	}
	loop.After(time.Second, step)
	loop.Advance(10 * time.Second)
	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}
	if !slices.Equal(at, want) {
		t.Fatalf("expected %v, got %v", want, at)
	}
}

func TestLoopAfterCancelled(t *testing.T) {
	loop := NewLoop()
	called := false
	task := loop.After(time.Second, func() { called = true })
	task.Cancel()
	loop.Advance(time.Minute)
	if called {
		t.Fatal("cancelled one-shot must not fire")
	}
}
