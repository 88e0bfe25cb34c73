package geometry

import "math"

// TouchesWall reports whether shape comes within buffer of any wall.
//
// The clearance is the distance from the footprint core (centre for a
// circle, head–tail axis for a capsule) to the wall minus the radius.
// A clearance below buffer, or approximately equal to it, is a touch.
func TouchesWall(shape Shape, walls []Segment, buffer float64) bool {
	switch shape.Kind {
	case KindCapsule:
		axis := shape.Axis()
		for _, w := range walls {
			if atMost(SegmentSegmentDistance(axis, w)-shape.Radius, buffer) {
				return true
			}
		}
	default:
		for _, w := range walls {
			if atMost(PointSegmentDistance(shape.Head, w)-shape.Radius, buffer) {
				return true
			}
		}
	}

	return false
}

// TouchesGoal reports whether shape overlaps or is tangent to any goal.
//
// Goals do not use the granularity buffer: the distance from the goal
// centre to the footprint core is compared against the exact radius sum.
// For capsules the core is the head–tail segment, so the distance is the
// smaller endpoint distance unless the goal centre projects onto the axis,
// in which case the perpendicular distance is used.
func TouchesGoal(shape Shape, goals []Goal) bool {
	for _, g := range goals {
		var d float64
		switch shape.Kind {
		case KindCapsule:
			d = PointSegmentDistance(g.Center, shape.Axis())
		default:
			d = Dist(shape.Head, g.Center)
		}
		if atMost(d, shape.Radius+g.Radius) {
			return true
		}
	}

	return false
}

// WithinWindow reports whether every extremity of shape lies strictly
// inside [buffer, Width-buffer] × [buffer, Height-buffer].
// An extremity approximately on the inset boundary is out of bounds.
func WithinWindow(shape Shape, win Window, buffer float64) bool {
	r := shape.Radius
	var minX, maxX, minY, maxY float64
	switch shape.Kind {
	case KindCapsule:
		minX, maxX = math.Min(shape.Head.X, shape.Tail.X), math.Max(shape.Head.X, shape.Tail.X)
		minY, maxY = math.Min(shape.Head.Y, shape.Tail.Y), math.Max(shape.Head.Y, shape.Tail.Y)
	default:
		minX, maxX = shape.Head.X, shape.Head.X
		minY, maxY = shape.Head.Y, shape.Head.Y
	}

	if atMost(minX-r, buffer) || atLeast(maxX+r, win.Width-buffer) {
		return false
	}
	if atMost(minY-r, buffer) || atLeast(maxY+r, win.Height-buffer) {
		return false
	}

	return true
}

// Legal reports whether shape is a legal placement: no wall within buffer
// and inside the window inset by the same buffer.
func Legal(shape Shape, walls []Segment, win Window, buffer float64) bool {
	return !TouchesWall(shape, walls, buffer) && WithinWindow(shape, win, buffer)
}
