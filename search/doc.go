// Package search provides a generic best-first shortest-path engine over
// implicit graphs whose vertices ("states") are any comparable Go value.
//
// Overview:
//
//   - The caller describes the graph through a Problem: seed states with their
//     initial costs, an Expand function yielding (successor, incremental cost)
//     steps, and a Goal predicate. Nothing is materialized up front, so grids,
//     (position, direction, run-length) triples, or bitmask-carrying states
//     all plug in the same way; boundaries and walls are enforced inside Expand.
//   - States are popped from a min-heap in non-decreasing priority order, so
//     the first goal popped is globally optimal (uniform-cost search /
//     Dijkstra). With a Heuristic the priority becomes cost+h (A*).
//   - Stale heap entries are discarded on pop ("lazy decrease-key"); each state
//     is expanded at most once, which guarantees termination with zero-weight
//     edges.
//
// When to use:
//
//   - Grid pathfinding with custom movement rules (turn penalties, minimum or
//     maximum straight runs, teleports, time-dependent walls encoded in state).
//   - Any small-graph search where the state carries extra bookkeeping, such as
//     a memo.Mask of opened valves or collected keys.
//   - Counting or marking every cell that lies on some optimal route
//     (WithAllPaths), e.g. "how many tiles are on any best path".
//
// Key features:
//
//   - Tie-break: Problem.TieBreak orders entries of equal priority. It affects
//     which optimal path is reported first, never the optimal cost. Without it,
//     ties pop in insertion order, so results are deterministic.
//   - WithPath: records one predecessor per state and returns a single optimal
//     path from a seed to the first goal.
//   - WithAllPaths: records every equal-cost predecessor, keeps popping while
//     the priority equals the optimal goal cost, and returns the union of all
//     states on any optimal path to any goal (Result.OnPath).
//   - Distances: flood the whole reachable space and return every optimal cost.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V = reachable states, E = expansion steps.
//   - Space: O(V + E) for the state records and the lazily pruned heap.
//   - With WithAllPaths the predecessor lists add O(E) in the worst case.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath:        no goal is reachable. This is a normal outcome; test it
//     with errors.Is and branch.
//   - ErrNoSeeds, ErrNilExpand, ErrNilGoal: malformed Problem.
//   - ErrNegativeCost:  only with WithStrictCosts; negative steps are otherwise
//     the caller's contract violation and are not checked.
//   - ErrStateLimit:    more states finalized than WithMaxStates allows.
//   - ErrBadMaxStates:  negative WithMaxStates value.
//
// Example usage:
//
//	res, err := search.Shortest(search.Problem[vec.Vec2[int], int]{
//	    Seeds:  []search.Seed[vec.Vec2[int], int]{{State: start}},
//	    Expand: grid.Steps(open),
//	    Goal:   func(p vec.Vec2[int]) bool { return p == end },
//	}, search.WithPath())
//	if errors.Is(err, search.ErrNoPath) {
//	    ...
//	}
//	fmt.Println(res.Cost, len(res.Path))
//
// Thread safety:
//
//   - A call owns all of its working state; concurrent calls are independent
//     as long as the caller's Expand and Goal functions are.
package search
