// Package maze discretises an agent's configuration space (x, y, shape)
// into a 3-D grid and exposes it as a search.Space.
//
// What:
//
//   - Build samples every grid cell (i, j, k) at world pose
//     (ox + i·g, oy + j·g, variant k) and classifies it with the geometry
//     predicates: Wall if the footprint touches a wall or leaves the window
//     (both with buffer g/√2), Objective if it is legal and touches a goal,
//     Free otherwise.
//   - Neighbors moves ±1 along I, then J, then K (shape change), keeping
//     only in-bounds, non-Wall cells. The order is fixed so search results
//     are reproducible.
//   - Partial rules restrict the agent to its current layer (no K moves)
//     and accept any (I, J) that is an objective on some layer.
//
// Why:
//
//   - Classification happens once; searches only read the grid, so one
//     Maze can serve any number of concurrent searches.
//
// Complexity:
//
//   - Build:     O(C·R·L·(W+G)) for C columns, R rows, L layers, W walls, G goals.
//   - Neighbors: O(1); IsObjective: O(L) under partial rules, O(1) otherwise.
//
// Errors:
//
//   - ErrNilAgent:        no agent supplied.
//   - ErrBadGranularity:  granularity is not a positive finite number.
//   - ErrEmptyWindow:     window has no positive area.
//   - ErrStartOutOfGrid:  the agent start does not map into the grid.
//   - ErrStartIllegal:    the start cell is a Wall.
//   - ErrOptionViolation: an invalid Option was supplied.
package maze
