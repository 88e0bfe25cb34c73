// Package mazenav finds collision-free paths for a shape-changing agent
// through a 2-D maze of wall segments toward circular goals.
//
// 🚀 What is mazenav?
//
//	A small, dependency-light toolkit that brings together:
//		• Geometry: point/segment distances, wall/goal/window predicates
//		• Agents: Horizontal, Vertical and Ball footprints (capsules & disks)
//		• Mazes: a 3-D configuration grid (column, row, shape) built in parallel
//		• Search: breadth-first search with hooks, limits and cancellation
//		• Scenes: YAML maps validated by an embedded JSON Schema
//
// ✨ Why choose mazenav?
//
//   - Exact boundary policy – touching a wall or the window edge is a collision,
//     touching a goal counts as reaching it
//   - Geometry-agnostic search – anything implementing search.Space can be walked
//   - Immutable mazes – build once, search from many goroutines
//
// Everything is organized under five subpackages:
//
//	geometry/  distances and collision predicates
//	agent/     shape variants and poses → geometry footprints
//	maze/      discretised configuration space (implements search.Space)
//	search/    BFS over any search.Space
//	scene/     scene files: YAML + JSON Schema
//
// Quick ASCII example (one layer of a rendered maze):
//
//	%%%%%%%%%%%
//	%%%%%%%%%%%
//	%%      .%%
//	%%P    ..%%
//	%%      .%%
//	%%%%%%%%%%%
//	%%%%%%%%%%%
//
// The command in cmd/mazenav ties it together:
//
//	go run ./cmd/mazenav -scene scene/testdata/scenes.yaml -name Test1 -render
package mazenav
