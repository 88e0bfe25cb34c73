package agent

import (
	"errors"
	"fmt"
)

// Sentinel errors for agent construction and lookup.
var (
	// ErrNoVariants is returned when an agent is built without shapes.
	ErrNoVariants = errors.New("agent: at least one shape variant is required")

	// ErrBadDimension is returned for negative lengths or non-positive widths,
	// or a Ball variant with a non-zero length.
	ErrBadDimension = errors.New("agent: invalid variant dimension")

	// ErrUnknownOrientation is returned for a variant name that is not a known orientation.
	ErrUnknownOrientation = errors.New("agent: unknown orientation")

	// ErrShapeIndex is returned when a pose selects a variant that does not exist.
	ErrShapeIndex = errors.New("agent: shape index out of range")
)

// Orientation names the geometry of a variant.
type Orientation string

// Known orientations.
const (
	Horizontal Orientation = "Horizontal"
	Vertical   Orientation = "Vertical"
	Ball       Orientation = "Ball"
)

// ParseOrientation maps a case-sensitive name to an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	switch o := Orientation(name); o {
	case Horizontal, Vertical, Ball:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, name)
	}
}

// Variant is one shape the agent can take.
// Length is the head-to-tail distance; Width is the diameter.
type Variant struct {
	Orientation Orientation
	Length      float64
	Width       float64
}

// Radius returns Width/2.
func (v Variant) Radius() float64 { return v.Width / 2 }

// Pose places the agent: centroid (X, Y) and the index of the active variant.
type Pose struct {
	X, Y  float64
	Shape int
}

// String implements fmt.Stringer.
func (p Pose) String() string {
	return fmt.Sprintf("(%g, %g, %d)", p.X, p.Y, p.Shape)
}
