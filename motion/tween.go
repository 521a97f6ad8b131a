package motion

import (
	"fmt"
	"math"
)

// TweenOptions configures a tween at construction time.
type TweenOptions struct {
	Ease            Ease
	Delay           float64
	Repeat          int // -1 repeats forever
	RepeatDelay     float64
	Yoyo            bool
	ImmediateRender bool
	Overwrite       Overwrite
}

// A track animates one property of the tween's target. Tracks can die
// individually when an overlapping tween claims the property.
type track struct {
	property string
	from     Value
	to       Value
	lerp     Lerp
	dead     bool
}

// A Tween is the atomic animated unit: one target, one duration, one ease
// and any number of property tracks interpolated in lockstep.
type Tween struct {
	node
	ctrl   *Controller
	target interface{}
	tracks []track

	duration    float64
	delay       float64
	ease        Ease
	repeat      int
	repeatDelay float64
	yoyo        bool
	instant     bool
	overwrite   Overwrite

	started bool
	killed  bool
	failed  bool
}

func newTween(c *Controller, target interface{}, properties map[string]Property, duration float64, opts TweenOptions) *Tween {
	t := new(Tween)
	t.ctrl = c
	t.target = target
	t.duration = duration
	t.delay = opts.Delay
	t.ease = opts.Ease
	t.repeat = opts.Repeat
	t.repeatDelay = opts.RepeatDelay
	t.yoyo = opts.Yoyo
	t.overwrite = opts.Overwrite
	if t.ease == nil {
		t.ease = Linear
	}

	t.tracks = make([]track, 0, len(properties))
	for property, p := range properties {
		t.tracks = append(t.tracks, track{
			property: property,
			from:     p.Lerp.Clone(p.From),
			to:       p.Lerp.Clone(p.To),
			lerp:     p.Lerp,
		})
	}
	return t
}

// Target reports what the tween writes to.
func (t *Tween) Target() interface{} {
	return t.target
}

func (t *Tween) alive() bool {
	return !t.killed
}

func (t *Tween) kill() {
	if t.killed {
		return
	}
	t.killed = true
	t.ctrl.owners.Release(t)
	t.ctrl.releaseSlot(t.slot())
}

// dropProperty kills a single track; the tween itself dies when no live
// tracks remain.
func (t *Tween) dropProperty(property string) {
	live := 0
	for i := range t.tracks {
		if t.tracks[i].property == property {
			t.tracks[i].dead = true
		}
		if !t.tracks[i].dead {
			live++
		}
	}
	if live == 0 {
		t.kill()
	}
}

func (t *Tween) window() float64 {
	if t.instant {
		return t.delay
	}
	if t.repeat < 0 {
		return math.Inf(1)
	}
	return t.delay + float64(t.repeat+1)*t.duration + float64(t.repeat)*t.repeatDelay
}

func (t *Tween) wrap(at float64) float64 {
	if at < 0 {
		at = 0
	}
	w := t.window()
	if !math.IsInf(w, 1) {
		if at > w {
			at = w
		}
		return at
	}
	if at > t.delay {
		at = t.delay + math.Mod(at-t.delay, t.duration+t.repeatDelay)
	}
	return at
}

func (t *Tween) advance(localTime float64) {
	if t.killed {
		return
	}
	tt := localTime - t.delay
	if tt < 0 {
		// Scrubbed back before the delay; land the start state once so a
		// looping parent doesn't leave the stale end value in place. The
		// next entry into the active window claims ownership afresh.
		if t.started {
			t.started = false
			t.applyProgress(0, true)
		}
		return
	}
	if !t.started {
		t.started = true
		t.ctrl.owners.Claim(t)
		if t.killed {
			return
		}
	}
	p, forward := t.progressAt(tt)
	t.applyProgress(p, forward)
}

// progressAt folds repeats and yoyo into a cycle-local progress and an
// effective direction for a post-delay time.
func (t *Tween) progressAt(tt float64) (float64, bool) {
	if t.instant {
		return 1, true
	}

	cycleLen := t.duration + t.repeatDelay
	if t.repeat >= 0 {
		span := float64(t.repeat+1)*t.duration + float64(t.repeat)*t.repeatDelay
		if tt >= span {
			// Clamp to the terminal state of the final cycle.
			forward := !t.yoyo || t.repeat%2 == 0
			return 1, forward
		}
	}

	cycle := int(math.Floor(tt / cycleLen))
	within := tt - float64(cycle)*cycleLen
	p := within / t.duration
	if p > 1 {
		// Holding in the repeat delay between cycles.
		p = 1
	}
	forward := !t.yoyo || cycle%2 == 0
	return p, forward
}

func (t *Tween) applyProgress(p float64, forward bool) {
	raw := p
	if !forward {
		raw = 1 - p
	}
	ep := t.ease(raw)
	for i := range t.tracks {
		tr := &t.tracks[i]
		if tr.dead {
			continue
		}
		v := tr.lerp.Lerp(tr.from, tr.to, ep)
		t.apply(tr.property, v)
		if t.killed {
			return
		}
	}
}

// apply hands one value to the host callback. A panicking callback kills
// this tween and is reported once; siblings keep ticking.
func (t *Tween) apply(property string, v Value) {
	defer func() {
		if r := recover(); r != nil {
			t.fail(r)
		}
	}()
	if t.ctrl.onApply != nil {
		t.ctrl.onApply(t.target, property, v)
	}
}

func (t *Tween) fail(r interface{}) {
	if t.failed {
		return
	}
	t.failed = true
	t.kill()
	if t.ctrl.onError != nil {
		t.ctrl.onError(t.target, fmt.Errorf("motion: apply callback panic: %v", r))
	}
}
