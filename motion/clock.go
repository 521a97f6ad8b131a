package motion

// A Clock advances global time and smooths per-frame deltas so that a
// stalled host (a backgrounded tab, a paused debugger) does not
// fast-forward every active animation when it wakes up.
type Clock struct {
	// TimeScale multiplies every delta handed to dependents.
	TimeScale float64

	// LagThreshold is the raw delta above which smoothing kicks in.
	// Zero or negative disables smoothing.
	LagThreshold float64

	// LagCap is the delta substituted for an over-threshold frame.
	LagCap float64

	elapsed   float64
	lastDelta float64
}

// NewClock creates an instance of a Clock object with smoothing tuned for
// a ~30fps host.
func NewClock() *Clock {
	c := new(Clock)
	c.TimeScale = 1.0
	c.LagThreshold = 0.5
	c.LagCap = 0.033
	return c
}

// Tick feeds one raw frame delta in and returns the smoothed delta.
func (c *Clock) Tick(realDelta float64) float64 {
	d := realDelta
	if c.LagThreshold > 0 && realDelta > c.LagThreshold {
		d = c.LagCap
	}
	c.lastDelta = d
	c.elapsed += d
	return d
}

// Elapsed reports the total smoothed time the clock has seen.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// LastDelta reports the smoothed delta of the most recent tick.
func (c *Clock) LastDelta() float64 {
	return c.lastDelta
}
