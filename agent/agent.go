package agent

import (
	"fmt"

	"github.com/katalvlaran/mazenav/geometry"
)

// Agent is an immutable list of shape variants plus a start pose.
type Agent struct {
	variants []Variant
	start    Pose
}

// New validates variants and start and returns an Agent.
// The variants slice is copied.
func New(variants []Variant, start Pose) (*Agent, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	vs := make([]Variant, len(variants))
	for i, v := range variants {
		if _, err := ParseOrientation(string(v.Orientation)); err != nil {
			return nil, fmt.Errorf("variant %d: %w", i, err)
		}
		if v.Length < 0 || v.Width <= 0 || (v.Orientation == Ball && v.Length != 0) {
			return nil, fmt.Errorf("%w: variant %d (%s) length=%g width=%g",
				ErrBadDimension, i, v.Orientation, v.Length, v.Width)
		}
		vs[i] = v
	}
	a := &Agent{variants: vs, start: start}
	if _, err := a.Variant(start.Shape); err != nil {
		return nil, err
	}

	return a, nil
}

// Start returns the initial pose.
func (a *Agent) Start() Pose { return a.start }

// NumVariants returns the number of shape variants.
func (a *Agent) NumVariants() int { return len(a.variants) }

// Variants returns a copy of the variant list.
func (a *Agent) Variants() []Variant {
	out := make([]Variant, len(a.variants))
	copy(out, a.variants)
	return out
}

// Variant returns the variant at index i.
func (a *Agent) Variant(i int) (Variant, error) {
	if i < 0 || i >= len(a.variants) {
		return Variant{}, fmt.Errorf("%w: %d not in [0,%d)", ErrShapeIndex, i, len(a.variants))
	}
	return a.variants[i], nil
}

// ShapeIndex returns the index of the first variant with orientation o,
// or -1 if there is none.
func (a *Agent) ShapeIndex(o Orientation) int {
	for i, v := range a.variants {
		if v.Orientation == o {
			return i
		}
	}
	return -1
}

// Footprint places the variant selected by p at (p.X, p.Y).
func (a *Agent) Footprint(p Pose) (geometry.Shape, error) {
	v, err := a.Variant(p.Shape)
	if err != nil {
		return geometry.Shape{}, err
	}
	return Footprint(v, p.X, p.Y), nil
}

// Footprint places variant v with its centroid at (x, y).
func Footprint(v Variant, x, y float64) geometry.Shape {
	half := v.Length / 2
	switch v.Orientation {
	case Horizontal:
		return geometry.Capsule(geometry.Pt(x+half, y), geometry.Pt(x-half, y), v.Radius())
	case Vertical:
		return geometry.Capsule(geometry.Pt(x, y-half), geometry.Pt(x, y+half), v.Radius())
	default:
		return geometry.Circle(geometry.Pt(x, y), v.Radius())
	}
}
