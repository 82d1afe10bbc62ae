// Package aoc is a toolbox of generic engines for grid and graph puzzles.
//
// What is in the box?
//
//	search/     best-first shortest paths over implicit states (Dijkstra, A*),
//	             deterministic tie-breaking and all-optimal-paths provenance
//	bfs/        unit-cost breadth-first walks with depths and parent links
//	cycle/      simulate 10^12 steps by detecting a repeated configuration
//	             and fast-forwarding with modular arithmetic
//	memo/       explicit memo caches (unbounded or LRU), memoized recursion,
//	             64-bit visited masks
//	signature/  structural and byte-level fingerprints of configurations
//	core/       explicit weighted graphs, pluggable into search and bfs
//	gridgraph/  text grids as implicit graphs: steps, components, tilting
//	vec/, parse/  coordinate math and input splitting
//
// Conventions:
//
//   - States are plain comparable Go values. Anything that changes future moves
//     (facing, run length, opened valves) lives in the state, so one engine
//     serves every movement rule.
//   - No hidden caches: memo tables and signature histories belong to a call.
//   - No answer is a value, not a crash: search.ErrNoPath is returned for
//     unreachable goals and callers branch on it with errors.Is.
//
// Quick start:
//
//	gg, _ := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
//	s, _ := gg.Find('S')
//	e, _ := gg.Find('E')
//	res, err := search.Shortest(search.Problem[gridgraph.Pos, int]{
//	    Seeds:  []search.Seed[gridgraph.Pos, int]{{State: s}},
//	    Expand: gg.Steps(func(b byte) bool { return b != '#' }),
//	    Goal:   func(p gridgraph.Pos) bool { return p == e },
//	})
//
// The aoc command in cmd/aoc wires the engines to input files.
package aoc
