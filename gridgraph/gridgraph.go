// Package gridgraph provides utilities to treat a 2D grid of byte cells
// as an implicit graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Expansion functions for search.Shortest and bfs.Walk
//   - Identification of connected components of passable cells
//   - Minimal-conversion bridges between components
//   - Conversion to a weighted core.Graph
//   - Tilting movable cells and hashing whole grids for cycle detection
package gridgraph

import (
	"bytes"
	"fmt"

	"github.com/joellidin/aoc/parse"
	"github.com/joellidin/aoc/signature"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits do not alias the caller's rows.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(rows [][]byte, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		copy(cells[y], rows[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Pos
	if opts.Conn == Conn8 {
		offsets = []Pos{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Parse builds a GridGraph from newline-separated text.
func Parse(text string, opts GridOptions) (*GridGraph, error) {
	return NewGridGraph(parse.Grid(text), opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the cell at p. p must be in bounds.
func (gg *GridGraph) At(p Pos) byte { return gg.Cells[p.Y][p.X] }

// Set overwrites the cell at p. p must be in bounds.
func (gg *GridGraph) Set(p Pos, b byte) { gg.Cells[p.Y][p.X] = b }

// Find returns the first cell holding b in row-major order.
func (gg *GridGraph) Find(b byte) (Pos, error) {
	for y, row := range gg.Cells {
		if x := bytes.IndexByte(row, b); x >= 0 {
			return Pos{X: x, Y: y}, nil
		}
	}
	return Pos{}, fmt.Errorf("%w: %q", ErrCellNotFound, b)
}

// NeighborOffsets returns the precomputed neighbor offsets slice, clockwise
// from north.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Pos {
	return gg.neighborOffsets
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(p Pos) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Pos {
	return Pos{X: idx % gg.Width, Y: idx / gg.Width}
}

// Clone returns a deep copy.
func (gg *GridGraph) Clone() *GridGraph {
	cp := *gg
	cp.Cells = make([][]byte, gg.Height)
	for y, row := range gg.Cells {
		cp.Cells[y] = append([]byte(nil), row...)
	}
	return &cp
}

// Signature fingerprints the cell contents; see signature.Rows.
func (gg *GridGraph) Signature() uint64 {
	return signature.Rows(gg.Cells)
}

// String renders the grid as text, one row per line, no trailing newline.
func (gg *GridGraph) String() string {
	return string(bytes.Join(gg.Cells, []byte{'\n'}))
}
