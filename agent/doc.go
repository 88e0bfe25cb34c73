// Package agent describes a shape-shifting maze agent: a small, ordered set
// of shape variants (for example Horizontal, Ball, Vertical) and the pose
// (x, y, variant index) that selects one of them.
//
// Footprint turns a Pose into a geometry.Shape so the collision predicates
// can be evaluated. An Agent is immutable once built.
//
// Variant conventions:
//
//   - Ball:       circle of radius Width/2 at the centroid.
//   - Horizontal: capsule with head (x+Length/2, y), tail (x−Length/2, y).
//   - Vertical:   capsule with head (x, y−Length/2), tail (x, y+Length/2).
//
// Neighbouring variants (index ±1) are the shapes reachable by a single
// shape change.
package agent
