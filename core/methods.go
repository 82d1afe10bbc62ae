package core

import (
	"fmt"
	"strconv"

	"github.com/joellidin/aoc/search"
)

// Directed reports whether edges are one-way.
func (g *Graph[N]) Directed() bool { return g.cfg.directed }

// AddVertex inserts id if it is not present yet. Idempotent.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
}

func (g *Graph[N]) addVertexLocked(id N) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// AddEdge connects from and to with the given weight, creating missing
// endpoints. Returns the new edge ID.
//
// Steps:
//  1. Validate weight and loops.
//  2. Lock, check the multi-edge constraint.
//  3. Ensure endpoints, generate the ID, store from→to.
//  4. If undirected and from!=to, mirror to→from under the same ID.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(from, to N, weight int64) (string, error) {
	if weight < 0 {
		return "", fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.cfg.allowLoops {
		return "", fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.pairs[[2]N{from, to}]; dup && !g.cfg.allowMulti {
		return "", fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.adjacency[from] = append(g.adjacency[from], Edge[N]{ID: eid, From: from, To: to, Weight: weight})
	g.pairs[[2]N{from, to}] = struct{}{}
	if !g.cfg.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge[N]{ID: eid, From: to, To: from, Weight: weight})
		g.pairs[[2]N{to, from}] = struct{}{}
	}
	return eid, nil
}

// HasVertex reports whether id exists.
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether an edge from→to exists (either direction for
// undirected graphs).
func (g *Graph[N]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[[2]N{from, to}]
	return ok
}

// Vertices returns every vertex in insertion order.
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]N(nil), g.order...)
}

// Neighbors returns the outgoing edges of id in creation order.
// Returns ErrVertexNotFound for an unknown vertex.
func (g *Graph[N]) Neighbors(id N) ([]Edge[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}
	return append([]Edge[N](nil), g.adjacency[id]...), nil
}

// NeighborIDs returns the distinct successors of id in first-edge order.
// Unknown vertices have none. The signature matches bfs.Space.Neighbors.
func (g *Graph[N]) NeighborIDs(id N) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.adjacency[id]
	out := make([]N, 0, len(edges))
	seen := make(map[N]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	return out
}

// Expand returns the outgoing edges of id as search steps. The signature
// matches search.Problem.Expand. Parallel edges yield one step each.
func (g *Graph[N]) Expand(id N) []search.Step[N, int64] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.adjacency[id]
	out := make([]search.Step[N, int64], len(edges))
	for i, e := range edges {
		out[i] = search.Step[N, int64]{To: e.To, Cost: e.Weight}
	}
	return out
}

// VertexCount returns |V|.
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}
