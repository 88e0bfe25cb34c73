// Package geometry provides the pure collision geometry used to decide
// whether an agent pose inside a maze is legal or has reached a goal.
//
// What
//
//   - Distances: point↔segment and segment↔segment on finite segments.
//   - Shapes: a tagged variant (KindCircle | KindCapsule) describing an
//     agent footprint already placed in world coordinates.
//   - Predicates: TouchesWall, TouchesGoal and WithinWindow.
//
// Tolerance
//
//	Every threshold comparison goes through ApproxEqual (absolute 1e-8,
//	relative 1e-5), so a footprint sitting exactly on a grid-aligned
//	boundary is classified the same way regardless of rounding.
//
//	Walls and window edges are inflated by a single buffer, Buffer(g) =
//	g/√2, derived from the discretisation granularity g. A distance equal
//	to the buffer counts as a collision (wall) or as out of bounds (window).
//	Goals ignore the buffer and compare against the exact radius sum; a
//	tangent goal counts as reached.
//
// Concurrency
//
//	All functions are stateless and safe to call from any number of
//	goroutines.
//
// Complexity
//
//   - PointSegmentDistance, SegmentSegmentDistance: O(1).
//   - TouchesWall: O(len(walls)); TouchesGoal: O(len(goals)); WithinWindow: O(1).
package geometry
