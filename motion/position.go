package motion

import "math"

type positionKind int

const (
	posAbsolute positionKind = iota
	posFromEnd
	posLabel
	posPrevStart
	posPrevEnd
	posPercent
)

// An Anchor selects which edge of the inserted unit a percent position
// measures from.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// A Position is a symbolic placement inside a sequence. It is resolved to
// a concrete start offset exactly once at insertion, against siblings that
// are already resolved; later insertions never shift it.
type Position struct {
	kind     positionKind
	offset   float64
	label    string
	fraction float64
	anchor   Anchor
}

// At places a unit at an absolute time within the sequence.
func At(t float64) Position {
	return Position{kind: posAbsolute, offset: t}
}

// FromEnd places a unit relative to the current end of the sequence.
// A negative offset overlaps the existing content.
func FromEnd(offset float64) Position {
	return Position{kind: posFromEnd, offset: offset}
}

// AtLabel places a unit relative to a named time marker.
func AtLabel(name string, offset float64) Position {
	return Position{kind: posLabel, label: name, offset: offset}
}

// PrevStart places a unit relative to the start of the most recently
// inserted sibling.
func PrevStart(offset float64) Position {
	return Position{kind: posPrevStart, offset: offset}
}

// PrevEnd places a unit relative to the end of the most recently inserted
// sibling.
func PrevEnd(offset float64) Position {
	return Position{kind: posPrevEnd, offset: offset}
}

// Percent places a unit relative to the current end of the sequence,
// offset by a fraction of the inserted unit's own duration. AnchorEnd
// pulls the unit back into the sequence ("overlap by 25% of this new
// animation"); AnchorStart pushes it past the end by the same measure.
func Percent(fraction float64, anchor Anchor) Position {
	return Position{kind: posPercent, fraction: fraction, anchor: anchor}
}

// resolve computes the concrete start offset for a child of the given
// duration. Resolution only ever looks backwards at state that already
// exists.
func (p Position) resolve(s *Sequence, childDur float64) (float64, error) {
	switch p.kind {
	case posFromEnd:
		return s.duration() + p.offset, nil

	case posLabel:
		at, ok := s.labels[p.label]
		if !ok {
			return 0, &UnknownLabelError{Label: p.label}
		}
		return at + p.offset, nil

	case posPrevStart:
		return s.prevStart() + p.offset, nil

	case posPrevEnd:
		return s.prevEnd() + p.offset, nil

	case posPercent:
		d := childDur
		if math.IsInf(d, 1) {
			// Duration unknown at insertion time; treat as zero for the
			// overlap math.
			d = 0
		}
		span := p.fraction * d
		if p.anchor == AnchorEnd {
			return s.duration() - span, nil
		}
		return s.duration() + span, nil

	default:
		return p.offset, nil
	}
}
