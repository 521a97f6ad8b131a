package motion

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Value is whatever a property holds. The Lerp chosen when the property
// is constructed knows its concrete shape; the engine never inspects it.
type Value interface{}

// A Lerp interpolates between two values of one concrete shape. New value
// types (paths, quaternions) plug in here without engine changes.
type Lerp interface {
	Lerp(a, b Value, t float64) Value
	Clone(v Value) Value
}

// A Property pairs endpoint values with the lerp that understands them.
type Property struct {
	From Value
	To   Value
	Lerp Lerp
}

// Scalar builds a float property.
func Scalar(from, to float64) Property {
	return Property{From: from, To: to, Lerp: scalarLerp{}}
}

type scalarLerp struct{}

func (scalarLerp) Lerp(a, b Value, t float64) Value {
	af, bf := a.(float64), b.(float64)
	return af + (bf-af)*t
}

func (scalarLerp) Clone(v Value) Value {
	return v
}

// Vector builds a componentwise []float64 property. Both endpoints must
// have the same length.
func Vector(from, to []float64) Property {
	return Property{From: from, To: to, Lerp: vectorLerp{}}
}

type vectorLerp struct{}

func (vectorLerp) Lerp(a, b Value, t float64) Value {
	av, bv := a.([]float64), b.([]float64)
	out := make([]float64, len(av))
	for i := range av {
		out[i] = av[i] + (bv[i]-av[i])*t
	}
	return out
}

func (vectorLerp) Clone(v Value) Value {
	src := v.([]float64)
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Color builds a colour property blended in HCL space.
func Color(from, to colorful.Color) Property {
	return Property{From: from, To: to, Lerp: colorLerp{}}
}

type colorLerp struct{}

func (colorLerp) Lerp(a, b Value, t float64) Value {
	return a.(colorful.Color).BlendHcl(b.(colorful.Color), t)
}

func (colorLerp) Clone(v Value) Value {
	return v
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// Gradient builds a property whose value sweeps a position along a
// gradient table, producing a colour per tick.
func Gradient(table GradientTable, from, to float64) Property {
	return Property{From: from, To: to, Lerp: gradientLerp{table: table, saturation: 1.0, luminance: 0.05}}
}

type gradientLerp struct {
	table      GradientTable
	saturation float64
	luminance  float64
}

func (g gradientLerp) Lerp(a, b Value, t float64) Value {
	af, bf := a.(float64), b.(float64)
	return g.table.GetColor(af+(bf-af)*t, g.saturation, g.luminance)
}

func (g gradientLerp) Clone(v Value) Value {
	return v
}
