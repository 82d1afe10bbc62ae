package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	space Space[S]
	opts  Options
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]
}

// Walk runs breadth-first search over space, applying any number of
// functional Options. States are visited in non-decreasing depth; within a
// depth, in discovery order, so the result is deterministic as long as
// Neighbors is.
//
// Returns ErrNoStart or ErrNilNeighbors for an invalid Space,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error from Space.OnVisit. When the walk stops early the partial
// Result is still returned.
func Walk[S comparable](space Space[S], opts ...Option) (*Result[S], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(space.Start) == 0 {
		return nil, ErrNoStart
	}
	if space.Neighbors == nil {
		return nil, ErrNilNeighbors
	}

	w := &walker[S]{
		space: space,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, 64),
		res: &Result[S]{
			Depth:  make(map[S]int, 64),
			Parent: make(map[S]S, 64),
		},
	}

	// Seed queue with start states (no parent)
	for _, s := range space.Start {
		if _, seen := w.res.Depth[s]; !seen {
			w.enqueue(s, 0)
		}
	}
	return w.res, w.loop()
}

// enqueue marks s discovered at depth d and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.space.Goal != nil && w.space.Goal(item.state) {
			w.res.Goal, w.res.Found = item.state, true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if w.space.OnVisit == nil {
		return nil
	}
	if err := w.space.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.space.Neighbors(item.state) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.state
		w.enqueue(nbr, next)
	}
}
