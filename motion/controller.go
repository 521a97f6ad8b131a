package motion

import (
	"errors"
	"math"
)

// State is the playback state of a scheduled unit.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// ApplyFunc receives every computed value; the host applies it to its
// target (DOM node, scene graph, LED strip). It must be fast: a slow
// callback delays the whole tick.
type ApplyFunc func(target interface{}, property string, value Value)

// ErrorFunc receives tick-time failures that killed a unit. Each unit is
// reported at most once.
type ErrorFunc func(target interface{}, err error)

// A Handle identifies a scheduled unit. Handles are cheap values; a
// generation counter detects use after Kill.
type Handle struct {
	index int
	gen   uint32
}

type playhead struct {
	time  float64
	rate  float64
	scale float64
	state State
}

type slot struct {
	gen    uint32
	unit   Animation
	rooted bool
	ph     playhead
}

// A Controller owns a clock, the arena of scheduled units and the
// per-tick fan-out. All methods must be called from the single goroutine
// that drives Tick.
type Controller struct {
	clock   *Clock
	slots   []slot
	free    []int
	roots   []int
	owners  *Ownership
	onApply ApplyFunc
	onError ErrorFunc
}

// NewController creates an instance of a Controller object driven by the
// given clock. A nil clock gets a default one.
func NewController(clock *Clock) *Controller {
	c := new(Controller)
	if clock == nil {
		clock = NewClock()
	}
	c.clock = clock
	c.owners = NewOwnership()
	return c
}

// Clock exposes the controller's clock for host tuning.
func (c *Controller) Clock() *Clock {
	return c.clock
}

// OnApply registers the value-application hook. Register once per host
// integration, before anything plays.
func (c *Controller) OnApply(f ApplyFunc) {
	c.onApply = f
}

// OnError registers the hook for tick-time failures.
func (c *Controller) OnError(f ErrorFunc) {
	c.onError = f
}

func (c *Controller) allocate(u Animation) Handle {
	var i int
	if n := len(c.free); n > 0 {
		i = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		c.slots = append(c.slots, slot{gen: 1})
		i = len(c.slots) - 1
	}
	s := &c.slots[i]
	s.unit = u
	s.rooted = true
	s.ph = playhead{rate: 1, scale: 1, state: Idle}
	u.setSlot(i)
	c.roots = append(c.roots, i)
	return Handle{index: i, gen: s.gen}
}

func (c *Controller) lookup(h Handle) (*slot, error) {
	if h.index < 0 || h.index >= len(c.slots) {
		return nil, &DeadHandleError{}
	}
	s := &c.slots[h.index]
	if s.gen != h.gen || s.unit == nil {
		return nil, &DeadHandleError{}
	}
	return s, nil
}

// releaseSlot invalidates a slot when its unit dies. Rooted slots are
// swept out of the root list on the next tick so a kill during a tick
// cannot disturb the iteration.
func (c *Controller) releaseSlot(i int) {
	s := &c.slots[i]
	if s.unit == nil {
		return
	}
	s.unit = nil
	s.gen++
	if !s.rooted {
		c.free = append(c.free, i)
	}
}

// unroot removes a unit from the root set when it is adopted by a
// sequence; from then on its parent drives it.
func (c *Controller) unroot(u Animation) {
	i := u.slot()
	c.slots[i].rooted = false
	for j, r := range c.roots {
		if r == i {
			c.roots = append(c.roots[:j], c.roots[j+1:]...)
			break
		}
	}
}

// NewTween schedules a tween. A non-positive duration is rejected; use
// NewSet for instantaneous assignments.
func (c *Controller) NewTween(target interface{}, properties map[string]Property, duration float64, opts TweenOptions) (Handle, error) {
	if duration <= 0 {
		return Handle{}, &InvalidDurationError{Duration: duration}
	}
	t := newTween(c, target, properties, duration, opts)
	h := c.allocate(t)
	if opts.ImmediateRender {
		t.applyProgress(0, true)
	}
	return h, nil
}

// NewSet schedules an instantaneous assignment: a zero-duration unit that
// applies its end values the moment it is reached.
func (c *Controller) NewSet(target interface{}, properties map[string]Property, opts TweenOptions) (Handle, error) {
	t := newTween(c, target, properties, 0, opts)
	t.instant = true
	h := c.allocate(t)
	if opts.ImmediateRender {
		t.applyProgress(1, true)
	}
	return h, nil
}

// NewSequence schedules an empty sequence.
func (c *Controller) NewSequence(opts SequenceOptions) Handle {
	return c.allocate(newSequence(c, opts))
}

// Add places a unit in a sequence at the resolved position.
func (c *Controller) Add(seq, unit Handle, pos Position) error {
	ss, err := c.lookup(seq)
	if err != nil {
		return err
	}
	us, err := c.lookup(unit)
	if err != nil {
		return err
	}
	s, ok := ss.unit.(*Sequence)
	if !ok {
		return errors.New("motion: handle is not a sequence")
	}
	return s.add(us.unit, pos)
}

// AddLabel records a named time marker in a sequence.
func (c *Controller) AddLabel(seq Handle, name string, pos Position) error {
	ss, err := c.lookup(seq)
	if err != nil {
		return err
	}
	s, ok := ss.unit.(*Sequence)
	if !ok {
		return errors.New("motion: handle is not a sequence")
	}
	return s.addLabel(name, pos)
}

// Play starts or resumes a unit from its current time.
func (c *Controller) Play(h Handle) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	s.ph.state = Playing
	return nil
}

// Pause stops a playing unit in place.
func (c *Controller) Pause(h Handle) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	if s.ph.state == Playing {
		s.ph.state = Paused
	}
	return nil
}

// Reverse flips the sign of the unit's rate without changing its state.
func (c *Controller) Reverse(h Handle) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	s.ph.rate = -s.ph.rate
	return nil
}

// SetTimeScale sets the unit's local time multiplier.
func (c *Controller) SetTimeScale(h Handle, n float64) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	s.ph.scale = n
	return nil
}

// Seek jumps to a time, valid in any state. Finite units clamp to their
// total duration; infinitely repeating units wrap.
func (c *Controller) Seek(h Handle, t float64) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	c.seekSlot(s, t)
	return nil
}

// SeekLabel jumps a sequence to one of its labels.
func (c *Controller) SeekLabel(h Handle, name string) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	sq, ok := s.unit.(*Sequence)
	if !ok {
		return errors.New("motion: handle is not a sequence")
	}
	at, ok := sq.labels[name]
	if !ok {
		return &UnknownLabelError{Label: name}
	}
	c.seekSlot(s, at/sq.timeScale)
	return nil
}

// Restart rewinds to zero and plays.
func (c *Controller) Restart(h Handle) error {
	if err := c.Seek(h, 0); err != nil {
		return err
	}
	return c.Play(h)
}

// Kill terminates a unit, releases its ownership records and invalidates
// its handle. Terminal.
func (c *Controller) Kill(h Handle) error {
	s, err := c.lookup(h)
	if err != nil {
		return err
	}
	s.unit.kill()
	return nil
}

func (c *Controller) seekSlot(s *slot, t float64) {
	t = s.unit.wrap(t)
	s.ph.time = t
	s.unit.advance(t)
	if s.ph.state == Completed && t < s.unit.window() {
		s.ph.state = Paused
	}
}

// State reports the playback state of a unit.
func (c *Controller) State(h Handle) (State, error) {
	s, err := c.lookup(h)
	if err != nil {
		return Idle, err
	}
	return s.ph.state, nil
}

// CurrentTime reports the unit's local time.
func (c *Controller) CurrentTime(h Handle) (float64, error) {
	s, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.ph.time, nil
}

// Rate reports the unit's signed playback rate.
func (c *Controller) Rate(h Handle) (float64, error) {
	s, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.ph.rate * s.ph.scale, nil
}

// TotalDuration reports the unit's extent including repeats; +Inf when it
// repeats forever.
func (c *Controller) TotalDuration(h Handle) (float64, error) {
	s, err := c.lookup(h)
	if err != nil {
		return 0, err
	}
	return s.unit.window(), nil
}

// Tick is the sole frame entry point. The host calls it once per frame
// with the real elapsed seconds since the previous call; every playing
// root advances by the smoothed delta scaled by its rate.
func (c *Controller) Tick(realDelta float64) {
	d := c.clock.Tick(realDelta)

	for _, i := range c.roots {
		s := &c.slots[i]
		if s.unit == nil || !s.unit.alive() || s.ph.state != Playing {
			continue
		}
		s.ph.time += d * s.ph.rate * s.ph.scale * c.clock.TimeScale

		w := s.unit.window()
		if s.ph.rate >= 0 && !math.IsInf(w, 1) && s.ph.time >= w {
			s.ph.time = w
			s.ph.state = Completed
		} else if s.ph.rate < 0 && s.ph.time <= 0 {
			s.ph.time = 0
			s.ph.state = Completed
		}
		s.unit.advance(s.ph.time)
	}

	c.sweep()
}

// sweep compacts root slots whose units died during the tick.
func (c *Controller) sweep() {
	kept := c.roots[:0]
	for _, i := range c.roots {
		if c.slots[i].unit == nil {
			c.free = append(c.free, i)
			continue
		}
		kept = append(kept, i)
	}
	c.roots = kept
}
