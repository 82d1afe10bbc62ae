// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/joellidin/aoc.
package gridgraph

import (
	"errors"

	"github.com/joellidin/aoc/vec"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellNotFound indicates that Find saw no cell with the requested value.
	ErrCellNotFound = errors.New("gridgraph: no cell holds the requested value")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Pos is a cell coordinate; X is the column, Y the row.
type Pos = vec.Vec2[int]

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D byte grid as a graph.
// Width and Height define dimensions; Cells[y][x] holds the cell byte.
// Conn is set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
//
// Cells are mutable through Set, Roll and Spin; everything else reads only.
type GridGraph struct {
	Width, Height   int
	Cells           [][]byte
	Conn            Connectivity
	neighborOffsets []Pos
}
