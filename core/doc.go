// Package core provides a small, thread-safe in-memory Graph for puzzles whose
// input is an explicit edge list ("A-B", "AA -> BB, CC", "x to y = 464").
//
// The Graph G = (V,E) supports:
//
//   - Any comparable vertex type N (strings, small ints, vec.Vec2 cells)
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Non-negative int64 weights; negative weights are rejected
//   - Collision-free Edge.ID generation ("e1", "e2", …)
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices() in insertion order, Neighbors() in
//     edge-creation order, so searches over the graph are reproducible.
//   - Direct plumbing into the engines: Expand feeds search.Problem and
//     NeighborIDs feeds bfs.Space without adapter code.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only "from→to" links.
//	    Undirected graphs mirror every edge.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Concurrency:
//
//	All methods take the graph's sync.RWMutex; readers run in parallel,
//	mutations are serialized.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrNegativeWeight      - weight below zero.
package core
