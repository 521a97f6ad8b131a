package motion

// Overwrite selects the conflict policy applied when a tween starts
// writing properties another active tween already owns.
type Overwrite int

const (
	// OverwriteNone performs no conflict handling; both units write and
	// the last tick wins visually.
	OverwriteNone Overwrite = iota

	// OverwriteAuto kills only the overlapping properties on the previous
	// owner, leaving its other properties animating.
	OverwriteAuto

	// OverwriteAll kills every other active unit touching any of the same
	// properties.
	OverwriteAll
)

type propertyKey struct {
	target   interface{}
	property string
}

// Ownership tracks which active tween currently owns writes to each
// (target, property) pair. It is consulted only when a unit starts, never
// per tick, and it only mutates the liveness of other units.
type Ownership struct {
	owners map[propertyKey]*Tween
}

// NewOwnership creates an instance of an Ownership object.
func NewOwnership() *Ownership {
	o := new(Ownership)
	o.owners = make(map[propertyKey]*Tween)
	return o
}

// Claim records the tween as the owner of every live property it touches,
// applying its overwrite policy to the previous owners. Stale records are
// overwritten, never merged.
func (o *Ownership) Claim(t *Tween) {
	for i := range t.tracks {
		tr := &t.tracks[i]
		if tr.dead {
			continue
		}
		key := propertyKey{target: t.target, property: tr.property}
		prev := o.owners[key]
		if prev != nil && prev != t && prev.alive() {
			switch t.overwrite {
			case OverwriteAll:
				prev.kill()
			case OverwriteAuto:
				prev.dropProperty(tr.property)
			}
		}
		o.owners[key] = t
	}
}

// Release drops every record owned by the tween.
func (o *Ownership) Release(t *Tween) {
	for key, owner := range o.owners {
		if owner == t {
			delete(o.owners, key)
		}
	}
}
