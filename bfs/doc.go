// Package bfs provides breadth-first search over implicit state spaces,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (move count) from one or more
//     start states.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from the nearest start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Goal/Found: the first visited state accepted by Space.Goal
//   - Space.OnVisit is called for each visited state and may abort with an error.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unit-cost grids and puzzles need no priority queue: a FIFO queue gives
//     the same distances as search.Shortest in O(V + E).
//   - Flood fills, connected components and "reachable in exactly n steps"
//     questions reduce to Depth lookups.
//
// Determinism
//
//	Neighbors are enqueued in the order Space.Neighbors returns them, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = reachable states, E = neighbor edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(bfs.Space[vec.Vec2[int]]{
//	    Start:     []vec.Vec2[int]{start},
//	    Neighbors: grid.Neighbors(open),
//	    Goal:      func(p vec.Vec2[int]) bool { return p == end },
//	}, bfs.WithMaxDepth(64))
//
// Errors
//
//   - ErrNoStart          if Space.Start is empty.
//   - ErrNilNeighbors     if Space.Neighbors is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo for undiscovered states.
//   - Wrapped user-supplied errors from OnVisit.
package bfs
