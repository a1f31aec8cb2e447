package gauge

import (
	"math"
	"testing"
	"time"

	"citypulse/internal/schedule"
)

func TestAnimatorCountsUpToTarget(t *testing.T) {
	loop := schedule.NewLoop()
	var frames []float64
	a := NewAnimator(loop, time.Second, 4, func(v float64) { frames = append(frames, v) })

	a.SetTarget(42)
	if !a.Running() {
		t.Fatal("expected animator to run after SetTarget")
	}
	loop.Advance(250 * time.Millisecond)
	if got := a.Value(); math.Abs(got-10.5) > 1e-9 {
		t.Fatalf("expected first frame 10.5, got %f", got)
	}

	loop.Advance(2 * time.Second)
	if got := a.Value(); got != 42 {
		t.Fatalf("expected final value 42, got %f", got)
	}
	if a.Running() || loop.Pending() != 0 {
		t.Fatal("expected the animation task to be cancelled at the target")
	}
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d: %v", len(frames), frames)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i] < frames[i-1] {
			t.Fatalf("frames must not decrease: %v", frames)
		}
	}
}

func TestAnimatorZeroTargetFinishesOnFirstFrame(t *testing.T) {
	loop := schedule.NewLoop()
	a := NewAnimator(loop, 0, 0, nil)
	a.SetTarget(0)
	loop.Advance(DefaultDuration / DefaultSteps)
	if a.Running() {
		t.Fatal("expected zero target to finish immediately")
	}
	if a.Value() != 0 {
		t.Fatalf("expected 0, got %f", a.Value())
	}
}

func TestAnimatorRetargetRestartsFromZero(t *testing.T) {
	loop := schedule.NewLoop()
	a := NewAnimator(loop, time.Second, 10, nil)

	a.SetTarget(100)
	loop.Advance(500 * time.Millisecond)
	if got := a.Value(); math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected 50 halfway, got %f", got)
	}

	a.SetTarget(20)
	if a.Value() != 0 {
		t.Fatalf("expected retarget to reset the display, got %f", a.Value())
	}
	if loop.Pending() != 1 {
		t.Fatalf("expected exactly one live task, got %d", loop.Pending())
	}
	loop.Advance(time.Second)
	if a.Value() != 20 || a.Target() != 20 {
		t.Fatalf("expected to settle on 20, got %f", a.Value())
	}
}

func TestAnimatorStop(t *testing.T) {
	loop := schedule.NewLoop()
	a := NewAnimator(loop, time.Second, 10, nil)
	a.SetTarget(100)
	loop.Advance(300 * time.Millisecond)
	a.Stop()
	held := a.Value()
	loop.Advance(time.Second)
	if a.Value() != held {
		t.Fatalf("value changed after stop: %f -> %f", held, a.Value())
	}
}

func TestAnimatorWithTicker(t *testing.T) {
	tk := schedule.NewTicker()
	done := make(chan struct{})
	a := NewAnimator(tk, 20*time.Millisecond, 5, func(v float64) {
		if v == 7 {
			close(done)
		}
	})
	a.SetTarget(7)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("animation did not finish, value %f", a.Value())
	}
	tk.Wait()
	if a.Running() {
		t.Fatal("expected animation to end on its own")
	}
}
