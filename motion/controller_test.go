package motion

import (
	"math"
	"testing"
)

func TestTickAdvancesPlayingRoot(t *testing.T) {
	c := NewController(nil)
	newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 2.0, TweenOptions{})

	c.Tick(0.5)
	if ct, _ := c.CurrentTime(h); ct != 0 {
		t.Errorf("idle unit advanced to %g", ct)
	}

	c.Play(h)
	c.Tick(0.25)
	c.Tick(0.25)
	if ct, _ := c.CurrentTime(h); ct != 0.5 {
		t.Errorf("current time %g, want 0.5", ct)
	}

	c.Pause(h)
	c.Tick(0.25)
	if ct, _ := c.CurrentTime(h); ct != 0.5 {
		t.Errorf("paused unit advanced to %g", ct)
	}
}

func TestClockTimeScaleMultiplies(t *testing.T) {
	clock := NewClock()
	clock.TimeScale = 2.0
	c := NewController(clock)
	newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 2.0, TweenOptions{})
	c.Play(h)
	c.Tick(0.25)
	if ct, _ := c.CurrentTime(h); ct != 0.5 {
		t.Errorf("current time %g, want 0.5 under 2x clock", ct)
	}
}

func TestSetTimeScalePerUnit(t *testing.T) {
	c := NewController(nil)
	newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 2.0, TweenOptions{})
	c.SetTimeScale(h, 4.0)
	c.Play(h)
	c.Tick(0.1)
	if ct, _ := c.CurrentTime(h); math.Abs(ct-0.4) > 1e-12 {
		t.Errorf("current time %g, want 0.4 under 4x unit scale", ct)
	}
}

func TestCompletionIsIdempotent(t *testing.T) {
	c := NewController(nil)
	r := newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 0.5, TweenOptions{})
	c.Play(h)
	c.Tick(0.3)
	c.Tick(0.3)

	if st, _ := c.State(h); st != Completed {
		t.Fatalf("state %v, want completed", st)
	}
	if v := r.scalar(t, "el.x"); v != 10 {
		t.Errorf("final value %g, want 10", v)
	}

	applies := r.count
	c.Tick(0.3)
	c.Tick(0.3)
	if r.count != applies {
		t.Error("completed unit kept receiving ticks")
	}
}

func TestReversePlaysBackwards(t *testing.T) {
	c := NewController(nil)
	r := newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 1.0, TweenOptions{})
	c.Play(h)
	c.Tick(0.4)
	c.Reverse(h)
	if st, _ := c.State(h); st != Playing {
		t.Fatalf("reverse changed state to %v", st)
	}
	c.Tick(0.2)
	if v := r.scalar(t, "el.x"); math.Abs(v-2) > 1e-12 {
		t.Errorf("value after reverse %g, want 2", v)
	}

	// Reaching zero backwards completes the unit.
	c.Tick(0.5)
	if st, _ := c.State(h); st != Completed {
		t.Errorf("state %v, want completed at t=0", st)
	}
	if ct, _ := c.CurrentTime(h); ct != 0 {
		t.Errorf("current time %g, want clamped 0", ct)
	}
}

func TestRestart(t *testing.T) {
	c := NewController(nil)
	c.Clock().LagThreshold = 0
	newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 0.5, TweenOptions{})
	c.Play(h)
	c.Tick(0.6)
	if st, _ := c.State(h); st != Completed {
		t.Fatalf("state %v, want completed", st)
	}

	c.Restart(h)
	if ct, _ := c.CurrentTime(h); ct != 0 {
		t.Errorf("restart left current time at %g", ct)
	}
	if st, _ := c.State(h); st != Playing {
		t.Errorf("restart left state %v", st)
	}
}

func TestSeekClampsFiniteAndWrapsInfinite(t *testing.T) {
	c := NewController(nil)
	newRecorder(c)

	finite, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 2.0, TweenOptions{})
	c.Seek(finite, 99)
	if ct, _ := c.CurrentTime(finite); ct != 2.0 {
		t.Errorf("finite seek clamped to %g, want 2.0", ct)
	}

	infinite, _ := c.NewTween("el", map[string]Property{"y": Scalar(0, 10)}, 1.0,
		TweenOptions{Repeat: -1})
	c.Seek(infinite, 5.25)
	if ct, _ := c.CurrentTime(infinite); math.Abs(ct-0.25) > 1e-9 {
		t.Errorf("infinite seek wrapped to %g, want 0.25", ct)
	}
}

func TestKillInvalidatesHandle(t *testing.T) {
	c := NewController(nil)
	newRecorder(c)

	h, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 1.0, TweenOptions{})
	if err := c.Kill(h); err != nil {
		t.Fatal(err)
	}

	if err := c.Play(h); err == nil {
		t.Error("expected DeadHandleError from Play")
	}
	if _, ok := c.Seek(h, 0.5).(*DeadHandleError); !ok {
		t.Error("expected DeadHandleError from Seek")
	}
	if err := c.Kill(h); err == nil {
		t.Error("expected DeadHandleError from second Kill")
	}
}

func TestSlotReuseGetsFreshGeneration(t *testing.T) {
	c := NewController(nil)
	newRecorder(c)

	old, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 1)}, 1.0, TweenOptions{})
	c.Kill(old)
	c.Tick(0) // sweep

	fresh, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 1)}, 1.0, TweenOptions{})
	if fresh.index != old.index {
		t.Fatalf("expected slot reuse, got %d then %d", old.index, fresh.index)
	}
	if err := c.Play(old); err == nil {
		t.Error("stale handle must not reach the reused slot")
	}
	if err := c.Play(fresh); err != nil {
		t.Errorf("fresh handle rejected: %v", err)
	}
}

func TestSeekLabel(t *testing.T) {
	c := NewController(nil)
	r := newRecorder(c)

	seq := c.NewSequence(SequenceOptions{})
	tw, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 2.0, TweenOptions{})
	c.Add(seq, tw, At(0))
	c.AddLabel(seq, "half", At(1))

	if err := c.SeekLabel(seq, "half"); err != nil {
		t.Fatal(err)
	}
	if v := r.scalar(t, "el.x"); v != 5 {
		t.Errorf("seek to label applied %g, want 5", v)
	}

	err := c.SeekLabel(seq, "missing")
	if _, ok := err.(*UnknownLabelError); !ok {
		t.Errorf("expected UnknownLabelError, got %v", err)
	}
}

func TestChildLeavesRootSet(t *testing.T) {
	c := NewController(nil)
	r := newRecorder(c)

	seq := c.NewSequence(SequenceOptions{})
	tw, _ := c.NewTween("el", map[string]Property{"x": Scalar(0, 10)}, 1.0, TweenOptions{})
	c.Add(seq, tw, At(0))

	// Playing the child directly must not double-advance it; only the
	// parent drives adopted units.
	c.Play(tw)
	c.Play(seq)
	c.Tick(0.5)
	if v := r.scalar(t, "el.x"); v != 5 {
		t.Errorf("adopted child advanced to %g, want 5", v)
	}
}
