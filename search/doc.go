// Package search provides breadth-first search over an implicit,
// unweighted configuration space, returning the fewest-step path from the
// space's start state to any objective state. A depth-first variant (DFS)
// returns the first path it reaches instead; Run selects either by Method.
//
// What
//
//   - The space is any value implementing Space: Start, IsObjective and
//     Neighbors. All legality filtering (walls, window, goals) lives in the
//     Space; the search itself is geometry-agnostic.
//   - Returns a Result containing:
//   - Path: start … objective inclusive, or nil when no objective is reachable
//   - Explored: number of states dequeued during the run
//   - The partial flag (WithPartialRules) is forwarded untouched to
//     IsObjective and Neighbors so one space can expose a reduced rule set.
//
// Why
//
//   - Unit edge weights make BFS optimal in step count with O(V + E) work.
//   - "No path" is a normal outcome, reported by a nil Path, not an error.
//
// Determinism
//
//	Any shortest path is valid, but the specific one returned depends only
//	on the order Neighbors yields states. Spaces with a fixed neighbour order
//	produce reproducible paths.
//
// Bookkeeping
//
//	A single visited set is updated when a state is enqueued, so each state
//	enters the frontier at most once and membership tests are O(1). Every
//	call owns its own frontier, visited set and predecessor map; a Space may
//	be searched concurrently as long as its own methods are safe for
//	concurrent reads.
//
// Complexity (V = reachable states, E = generated neighbour links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := search.BFS(space,
//	    search.WithContext(ctx),
//	    search.WithMaxExpansions(1_000_000),
//	)
//	if err != nil {
//	    // ErrSpaceNil, ErrOptionViolation, ErrExpansionLimit or ctx.Err()
//	}
//	if !res.Found() {
//	    // unreachable objective
//	}
//
// Errors
//
//   - ErrSpaceNil         if the space is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative cap).
//   - ErrExpansionLimit   if WithMaxExpansions was exceeded.
//   - ErrUnknownMethod    if Run is given an unsupported Method.
//   - context errors      if the WithContext context is done.
package search
