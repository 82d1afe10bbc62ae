// Package gridgraph treats a 2D grid of byte cells as an implicit graph,
// enabling shortest paths, component analysis, minimal-cost "island"
// expansions and tilt simulations.
//
// What:
//
//   - GridGraph wraps a rectangular [][]byte grid, usually parsed from puzzle
//     text with Parse.
//   - Steps and Neighbors adapt the grid to search.Shortest and bfs.Walk for
//     any passability predicate.
//   - Identifies connected components of cells satisfying a predicate.
//   - Computes minimal conversions to connect two components.
//   - Rolls movable cells (Roll, Spin) and fingerprints the grid (Signature)
//     so tilt puzzles plug into cycle.Run.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d·log(W×H)), Memory: O(W×H).
//   - Roll, Spin, Signature: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellNotFound: Find saw no matching cell.
//   - ErrComponentIndex: requested component index out of range.
//   - search.ErrNoPath: no conversion path exists between specified components.
package gridgraph
