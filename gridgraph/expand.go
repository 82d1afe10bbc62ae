package gridgraph

import (
	"github.com/joellidin/aoc/bfs"
	"github.com/joellidin/aoc/search"
)

// Steps returns a search.Problem expansion over cells: every in-bounds
// neighbor whose byte satisfies passable is one unit-cost step away.
func (gg *GridGraph) Steps(passable func(byte) bool) func(Pos) []search.Step[Pos, int] {
	return func(p Pos) []search.Step[Pos, int] {
		out := make([]search.Step[Pos, int], 0, len(gg.neighborOffsets))
		for _, d := range gg.neighborOffsets {
			n := p.Add(d)
			if gg.InBounds(n) && passable(gg.At(n)) {
				out = append(out, search.Step[Pos, int]{To: n, Cost: 1})
			}
		}
		return out
	}
}

// Neighbors is Steps for bfs.Walk.
func (gg *GridGraph) Neighbors(passable func(byte) bool) func(Pos) []Pos {
	return func(p Pos) []Pos {
		out := make([]Pos, 0, len(gg.neighborOffsets))
		for _, d := range gg.neighborOffsets {
			n := p.Add(d)
			if gg.InBounds(n) && passable(gg.At(n)) {
				out = append(out, n)
			}
		}
		return out
	}
}

// ExpandIsland finds a minimum-conversion path of non-land cells connecting
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents(land). Entering a land cell costs 0,
// entering any other cell costs 1 (it must be converted).
// Returns the row-major cell indices of the path, both land end cells
// included, and the number of conversions.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source search from every srcComp cell (search.Shortest seeds).
//  3. Stop when any dstComp cell is finalized.
//  4. Reconstruct the path from the search result.
//
// Complexity: O(W·H · log(W·H)).
// Memory:     O(W·H).
func (gg *GridGraph) ExpandIsland(land func(byte) bool, srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents(land)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dst := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dst[i] = struct{}{}
	}
	seeds := make([]search.Seed[Pos, int], 0, len(comps[srcComp]))
	for _, i := range comps[srcComp] {
		seeds = append(seeds, search.Seed[Pos, int]{State: gg.Coordinate(i)})
	}

	res, err := search.Shortest(search.Problem[Pos, int]{
		Seeds: seeds,
		Expand: func(p Pos) []search.Step[Pos, int] {
			out := make([]search.Step[Pos, int], 0, len(gg.neighborOffsets))
			for _, d := range gg.neighborOffsets {
				n := p.Add(d)
				if !gg.InBounds(n) {
					continue
				}
				step := 0
				if !land(gg.At(n)) {
					step = 1
				}
				out = append(out, search.Step[Pos, int]{To: n, Cost: step})
			}
			return out
		},
		Goal: func(p Pos) bool {
			_, ok := dst[gg.index(p)]
			return ok
		},
	}, search.WithPath())
	if err != nil {
		return nil, 0, err
	}

	path = make([]int, len(res.Path))
	for i, p := range res.Path {
		path[i] = gg.index(p)
	}
	return path, res.Cost, nil
}

// walk runs bfs.Walk from start over passable cells.
func (gg *GridGraph) walk(start Pos, passable func(byte) bool) (*bfs.Result[Pos], error) {
	return bfs.Walk(bfs.Space[Pos]{
		Start:     []Pos{start},
		Neighbors: gg.Neighbors(passable),
	})
}
