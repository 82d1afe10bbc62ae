package memo

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrMaskOverflow is returned when more than 64 distinct names are indexed.
var ErrMaskOverflow = errors.New("memo: more than 64 distinct members for a Mask")

// Mask is a set of integer members in [0, 64).
type Mask uint64

// Has reports whether i is a member.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// With returns m ∪ {i}.
func (m Mask) With(i int) Mask { return m | 1<<uint(i) }

// Without returns m \ {i}.
func (m Mask) Without(i int) Mask { return m &^ (1 << uint(i)) }

// Count returns |m|.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Indexes returns the members of m in ascending order.
func (m Mask) Indexes() []int {
	out := make([]int, 0, m.Count())
	for rest := uint64(m); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}
	return out
}

// Indexer assigns stable bit positions to names in first-seen order.
type Indexer[T comparable] struct {
	ids   map[T]int
	names []T
}

// NewIndexer returns an empty Indexer.
func NewIndexer[T comparable]() *Indexer[T] {
	return &Indexer[T]{ids: make(map[T]int)}
}

// ID returns the bit position of name, assigning the next free one on first
// sight. It fails with ErrMaskOverflow once 64 positions are taken.
func (x *Indexer[T]) ID(name T) (int, error) {
	if id, ok := x.ids[name]; ok {
		return id, nil
	}
	if len(x.names) == 64 {
		return 0, fmt.Errorf("%w: %v", ErrMaskOverflow, name)
	}
	id := len(x.names)
	x.ids[name] = id
	x.names = append(x.names, name)
	return id, nil
}

// Lookup returns the position of an already indexed name.
func (x *Indexer[T]) Lookup(name T) (int, bool) {
	id, ok := x.ids[name]
	return id, ok
}

// Name returns the name at position id.
func (x *Indexer[T]) Name(id int) T { return x.names[id] }

// Len returns the number of indexed names.
func (x *Indexer[T]) Len() int { return len(x.names) }
