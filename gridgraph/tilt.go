package gridgraph

import "github.com/joellidin/aoc/vec"

// Roll slides every mover cell toward dir until it meets the edge, a blocker
// or another settled mover. Cells that are neither mover nor blocker are
// treated as empty and swapped into the vacated positions. dir must be one of
// vec.Up, vec.Right, vec.Down or vec.Left; other values leave the grid as is.
//
// Complexity: O(W·H).
func (gg *GridGraph) Roll(dir Pos, mover, blocker byte) {
	back := dir.Neg()
	for _, start := range gg.edge(dir) {
		free := start
		for p := start; gg.InBounds(p); p = p.Add(back) {
			switch gg.At(p) {
			case blocker:
				free = p.Add(back)
			case mover:
				if p != free {
					gg.Cells[p.Y][p.X], gg.Cells[free.Y][free.X] = gg.Cells[free.Y][free.X], gg.Cells[p.Y][p.X]
				}
				free = free.Add(back)
			}
		}
	}
}

// Spin rolls north, west, south and east, in that order.
func (gg *GridGraph) Spin(mover, blocker byte) {
	for _, d := range [...]Pos{vec.Up, vec.Left, vec.Down, vec.Right} {
		gg.Roll(d, mover, blocker)
	}
}

// Load sums, over every mover cell, its distance in rows from the south edge
// plus one: the load on the north support beams.
func (gg *GridGraph) Load(mover byte) int {
	total := 0
	for y, row := range gg.Cells {
		for _, c := range row {
			if c == mover {
				total += gg.Height - y
			}
		}
	}
	return total
}

// edge lists the cells whose neighbor in direction dir is out of bounds.
func (gg *GridGraph) edge(dir Pos) []Pos {
	var out []Pos
	switch dir {
	case vec.Up, vec.Down:
		y := 0
		if dir == vec.Down {
			y = gg.Height - 1
		}
		for x := 0; x < gg.Width; x++ {
			out = append(out, Pos{X: x, Y: y})
		}
	case vec.Left, vec.Right:
		x := 0
		if dir == vec.Right {
			x = gg.Width - 1
		}
		for y := 0; y < gg.Height; y++ {
			out = append(out, Pos{X: x, Y: y})
		}
	}
	return out
}
