package gridgraph

// ConnectedComponents finds all contiguous regions of cells satisfying pred,
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order from its first cell in row-major order.
//
// To convert an index back to a position, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(pred func(byte) bool) [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Pos{X: x, Y: y}
			if !pred(gg.At(p)) || seen[gg.index(p)] {
				continue
			}
			// Walk cannot fail here: one start, a non-nil Neighbors, no hooks.
			res, _ := gg.walk(p, pred)
			comp := make([]int, len(res.Order))
			for i, q := range res.Order {
				comp[i] = gg.index(q)
				seen[comp[i]] = true
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
