package geometry

import "math"

// Tolerances used by ApproxEqual.
const (
	// AbsTolerance is the absolute part of the approximate-equality test.
	AbsTolerance = 1e-8
	// RelTolerance is scaled by |b| in ApproxEqual(a, b).
	RelTolerance = 1e-5
)

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

func cross(p, q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Segment is a finite line segment from A to B.
// A segment with A == B is degenerate and behaves as the single point A.
type Segment struct {
	A, B Point
}

// Seg builds a segment from raw endpoint coordinates, matching the
// (x1, y1, x2, y2) layout walls are usually written in.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{x1, y1}, B: Point{x2, y2}}
}

// Degenerate reports whether both endpoints coincide.
func (s Segment) Degenerate() bool { return s.A == s.B }

// Kind discriminates the Shape variant.
type Kind int

const (
	// KindCircle is a disk around Center (Head == Tail == Center).
	KindCircle Kind = iota
	// KindCapsule is the set of points within Radius of the Head–Tail segment.
	KindCapsule
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Shape is an agent footprint placed in world coordinates.
//
// For KindCircle Head and Tail both hold the centre. For KindCapsule they
// hold the two axis endpoints; a capsule whose endpoints coincide is
// handled exactly like a circle of the same radius.
type Shape struct {
	Kind   Kind
	Head   Point
	Tail   Point
	Radius float64
}

// Circle returns a circular footprint.
func Circle(center Point, radius float64) Shape {
	return Shape{Kind: KindCircle, Head: center, Tail: center, Radius: radius}
}

// Capsule returns an oblong footprint around the head–tail axis.
func Capsule(head, tail Point, radius float64) Shape {
	return Shape{Kind: KindCapsule, Head: head, Tail: tail, Radius: radius}
}

// Center returns the centroid of the footprint.
func (s Shape) Center() Point {
	return s.Head.Add(s.Tail).Scale(0.5)
}

// Axis returns the head–tail segment (degenerate for circles).
func (s Shape) Axis() Segment {
	return Segment{A: s.Head, B: s.Tail}
}

// Goal is a target disk.
type Goal struct {
	Center Point
	Radius float64
}

// Window is the [0,Width]×[0,Height] rectangle the agent must stay inside.
type Window struct {
	Width, Height float64
}

// Buffer returns the tolerance distance g/√2 for granularity g.
// The same value must be passed to TouchesWall and WithinWindow.
func Buffer(granularity float64) float64 {
	return granularity / math.Sqrt2
}

// ApproxEqual reports |a-b| <= AbsTolerance + RelTolerance*|b|.
// Like numpy.isclose it is not symmetric; b is the reference value.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= AbsTolerance+RelTolerance*math.Abs(b)
}

// atMost reports a < b or a ≈ b.
func atMost(a, b float64) bool {
	return a < b || ApproxEqual(a, b)
}

// atLeast reports a > b or a ≈ b.
func atLeast(a, b float64) bool {
	return a > b || ApproxEqual(a, b)
}
