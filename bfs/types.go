// Package bfs provides tunable options and error definitions
// for breadth-first search over implicit state spaces.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoStart is returned when Space.Start is empty.
	ErrNoStart = errors.New("bfs: no start states")

	// ErrNilNeighbors is returned when Space.Neighbors is nil.
	ErrNilNeighbors = errors.New("bfs: neighbors function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a state the walk never reached.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Space describes an unweighted implicit graph: every move costs one.
type Space[S comparable] struct {
	// Start holds the depth-0 states. Duplicates are ignored.
	Start []S

	// Neighbors returns the successors of a state. Required.
	Neighbors func(S) []S

	// Goal, if non-nil, stops the walk at the first state it accepts.
	Goal func(S) bool

	// OnVisit is called when visiting a state. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(s S, depth int) error
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in moves) of every discovered state.
//   - Parent: predecessor of every non-start state in the BFS tree.
//   - Goal, Found: the first state accepted by Space.Goal, if any.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Goal   S
	Found  bool
}

// PathTo reconstructs the path from a start state to dest.
// Returns ErrNotReached if dest was not discovered.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
