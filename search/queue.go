package search

// item is one frontier entry: a state, the cost at which it was pushed, its
// heap priority (cost, plus heuristic under A*), and an insertion sequence
// number used as the final tie-breaker.
type item[S comparable, C Cost] struct {
	state    S
	cost     C
	priority C
	seq      uint64
}

// frontier is a min-heap of *item ordered by (priority, tieBreak, seq).
// Superseded entries are not removed; the runner skips them when popped.
type frontier[S comparable, C Cost] struct {
	items    []*item[S, C]
	tieBreak func(a, b S) bool
}

// Len returns the number of items in the heap, stale ones included.
func (f frontier[S, C]) Len() int { return len(f.items) }

// Less orders by priority, then by the caller's tie-break, then FIFO.
func (f frontier[S, C]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if f.tieBreak != nil {
		if f.tieBreak(a.state, b.state) {
			return true
		}
		if f.tieBreak(b.state, a.state) {
			return false
		}
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (f frontier[S, C]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *item[S, C].
func (f *frontier[S, C]) Push(x any) { f.items = append(f.items, x.(*item[S, C])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[S, C]) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return it
}
