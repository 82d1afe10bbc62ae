package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge represents a connection between two vertices.
//
// For undirected graphs the mirrored direction shares the same ID; Neighbors
// returns it with From and To swapped.
type Edge[N comparable] struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex.
	From N

	// To is the destination vertex.
	To N

	// Weight is the cost of traversing the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*config)

type config struct {
	directed   bool
	allowMulti bool
	allowLoops bool
}

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// mu protects every field below it; nextEdgeID is only touched while mu is
// held for writing.
type Graph[N comparable] struct {
	mu  sync.RWMutex
	cfg config

	nextEdgeID uint64
	order      []N               // vertices in insertion order
	index      map[N]int         // vertex → position in order
	adjacency  map[N][]Edge[N]   // from → outgoing edges, creation order
	pairs      map[[2]N]struct{} // (from,to) of stored edges, both directions if undirected
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{
		index:     make(map[N]int),
		adjacency: make(map[N][]Edge[N]),
		pairs:     make(map[[2]N]struct{}),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}
