package geometry

import "math"

// PointSegmentDistance returns the distance from p to the closest point of
// the finite segment s.
//
// The projection parameter of p onto the supporting line is clamped to
// [0,1], so the closest point never lies on the extension of s. A
// degenerate segment yields the plain distance to its single point.
//
// Complexity: O(1).
func PointSegmentDistance(p Point, s Segment) float64 {
	d := s.B.Sub(s.A)
	if d.X == 0 && d.Y == 0 {
		return Dist(p, s.A)
	}

	t := dot(p.Sub(s.A), d) / dot(d, d)
	switch {
	case t < 0:
		return Dist(p, s.A)
	case t > 1:
		return Dist(p, s.B)
	default:
		return Dist(p, s.A.Add(d.Scale(t)))
	}
}

// SegmentSegmentDistance returns the minimum distance between two finite
// segments, or 0 when they intersect.
//
// Intersection is decided by solving a.A + s·(a.B−a.A) = b.A + t·(b.B−b.A)
// for s and t and requiring both in [0,1]. A zero determinant (parallel or
// collinear segments) skips that test; the endpoint distances below still
// report 0 for overlapping collinear segments.
//
// Otherwise the result is the smallest of the four endpoint-to-segment
// distances, which covers parallel, collinear and skew cases. The function
// is symmetric in its arguments.
//
// Complexity: O(1).
func SegmentSegmentDistance(a, b Segment) float64 {
	da := a.B.Sub(a.A)
	db := b.B.Sub(b.A)
	det := cross(db, da)
	if det != 0 {
		w := a.A.Sub(b.A)
		t := cross(w, da) / det // parameter along b
		s := cross(w, db) / det // parameter along a
		if t >= 0 && t <= 1 && s >= 0 && s <= 1 {
			return 0
		}
	}

	return math.Min(
		math.Min(PointSegmentDistance(a.A, b), PointSegmentDistance(a.B, b)),
		math.Min(PointSegmentDistance(b.A, a), PointSegmentDistance(b.B, a)),
	)
}
