package motion

import (
	"errors"
	"math"
)

// SequenceOptions configures a sequence at construction time.
type SequenceOptions struct {
	Repeat    int // -1 repeats forever
	Yoyo      bool
	TimeScale float64
}

type child struct {
	unit        Animation
	startOffset float64
	started     bool
	finished    bool
}

// A Sequence is an ordered, nestable container that places tweens and
// child sequences at resolved time offsets and fans local time out to
// them.
type Sequence struct {
	node
	ctrl      *Controller
	children  []child
	labels    map[string]float64
	timeScale float64
	repeat    int
	yoyo      bool
	killed    bool
}

func newSequence(c *Controller, opts SequenceOptions) *Sequence {
	s := new(Sequence)
	s.ctrl = c
	s.labels = make(map[string]float64)
	s.repeat = opts.Repeat
	s.yoyo = opts.Yoyo
	s.timeScale = opts.TimeScale
	if s.timeScale <= 0 {
		s.timeScale = 1.0
	}
	return s
}

// duration is the single-cycle extent in sequence-local time, derived on
// demand so it always reflects the current children. Offsets resolved
// before a duration change are deliberately not recomputed.
func (s *Sequence) duration() float64 {
	d := 0.0
	for i := range s.children {
		end := s.children[i].startOffset + s.children[i].unit.window()
		if end > d {
			d = end
		}
	}
	return d
}

func (s *Sequence) window() float64 {
	if s.repeat < 0 {
		return math.Inf(1)
	}
	d := s.duration()
	if math.IsInf(d, 1) {
		return d
	}
	return d * float64(s.repeat+1) / s.timeScale
}

func (s *Sequence) wrap(at float64) float64 {
	if at < 0 {
		at = 0
	}
	w := s.window()
	if !math.IsInf(w, 1) {
		if at > w {
			at = w
		}
		return at
	}
	d := s.duration()
	if s.repeat < 0 && !math.IsInf(d, 1) && d > 0 {
		at = math.Mod(at, d/s.timeScale)
	}
	return at
}

func (s *Sequence) alive() bool {
	return !s.killed
}

func (s *Sequence) kill() {
	if s.killed {
		return
	}
	s.killed = true
	for i := range s.children {
		s.children[i].unit.kill()
	}
	s.ctrl.releaseSlot(s.slot())
}

func (s *Sequence) prevStart() float64 {
	if len(s.children) == 0 {
		return 0
	}
	return s.children[len(s.children)-1].startOffset
}

func (s *Sequence) prevEnd() float64 {
	if len(s.children) == 0 {
		return 0
	}
	last := &s.children[len(s.children)-1]
	return last.startOffset + last.unit.window()
}

// add resolves the position and appends the unit. Later children may
// reference earlier ones; resolution never looks forward.
func (s *Sequence) add(u Animation, pos Position) error {
	if sq, ok := u.(*Sequence); ok {
		for a := s; a != nil; a = a.parentSeq() {
			if a == sq {
				return &CyclicSequenceError{}
			}
		}
	}
	if u.parentSeq() != nil {
		return errors.New("motion: unit already belongs to a sequence")
	}

	off, err := pos.resolve(s, u.window())
	if err != nil {
		return err
	}
	s.children = append(s.children, child{unit: u, startOffset: off})
	u.setParent(s)
	s.ctrl.unroot(u)
	return nil
}

// addLabel records a named time marker addressable by later insertions.
func (s *Sequence) addLabel(name string, pos Position) error {
	at, err := pos.resolve(s, 0)
	if err != nil {
		return err
	}
	s.labels[name] = at
	return nil
}

func (s *Sequence) advance(localTime float64) {
	if s.killed {
		return
	}
	cycleTime, _ := s.fold(localTime * s.timeScale)

	// Parent before children, children in insertion order.
	for i := range s.children {
		c := &s.children[i]
		if !c.unit.alive() {
			continue
		}
		w := c.unit.window()
		local := cycleTime - c.startOffset

		if local < 0 {
			// Crossed back over the start; restore the start state once,
			// then skip until re-entered.
			if c.started {
				c.unit.advance(0)
				c.started = false
				c.finished = false
			}
			continue
		}
		if local > w {
			// Crossed past the end; land the final state once, then skip.
			if c.started && !c.finished {
				c.unit.advance(w)
				c.finished = true
			}
			continue
		}

		c.started = true
		c.finished = false
		c.unit.advance(local)
	}
}

// fold maps scaled local time into cycle-local time, flipping direction
// each cycle when yoyo is set.
func (s *Sequence) fold(t float64) (float64, bool) {
	d := s.duration()
	if d <= 0 || math.IsInf(d, 1) {
		return t, true
	}
	if s.repeat == 0 {
		if t > d {
			t = d
		}
		return t, true
	}

	cycle := int(math.Floor(t / d))
	if s.repeat > 0 && cycle > s.repeat {
		cycle = s.repeat
		t = float64(cycle+1) * d
	}
	within := t - float64(cycle)*d
	forward := !s.yoyo || cycle%2 == 0
	if !forward {
		within = d - within
	}
	return within, forward
}
