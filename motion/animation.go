package motion

// An Animation is a schedulable unit the controller can place on a
// timeline and advance to any local time.
type Animation interface {
	// advance maps a local time onto the unit's state and applies values.
	advance(localTime float64)

	// window is the unit's total extent including repeats, as seen by its
	// parent. Infinitely repeating units report +Inf.
	window() float64

	// wrap normalises a seek target: clamped to [0, window] for finite
	// units, folded into the repeating span for infinite ones.
	wrap(t float64) float64

	kill()
	alive() bool

	setParent(p *Sequence)
	parentSeq() *Sequence
	setSlot(i int)
	slot() int
}

// node carries the bookkeeping shared by every schedulable unit.
type node struct {
	parent    *Sequence
	slotIndex int
}

func (n *node) setParent(p *Sequence) {
	n.parent = p
}

func (n *node) parentSeq() *Sequence {
	return n.parent
}

func (n *node) setSlot(i int) {
	n.slotIndex = i
}

func (n *node) slot() int {
	return n.slotIndex
}
