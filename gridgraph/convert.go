package gridgraph

import (
	"fmt"

	"github.com/joellidin/aoc/core"
)

// ToCoreGraph converts the passable cells into a directed *core.Graph keyed
// by position. Every passable cell becomes a vertex, added in row-major
// order, and every ordered pair of passable neighbors (per gg.Conn) an edge
// weighted weight(from, to). A nil weight gives unit edges.
//
// Returns a wrapped core.ErrNegativeWeight if weight yields a negative value.
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func (gg *GridGraph) ToCoreGraph(passable func(byte) bool, weight func(from, to byte) int64) (*core.Graph[Pos], error) {
	g := core.NewGraph[Pos](core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if p := (Pos{X: x, Y: y}); passable(gg.At(p)) {
				g.AddVertex(p)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Pos{X: x, Y: y}
			if !passable(gg.At(u)) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				v := u.Add(d)
				if !gg.InBounds(v) || !passable(gg.At(v)) {
					continue
				}
				w := int64(1)
				if weight != nil {
					w = weight(gg.At(u), gg.At(v))
				}
				if _, err := g.AddEdge(u, v, w); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %v→%v: %w", u, v, err)
				}
			}
		}
	}
	return g, nil
}
