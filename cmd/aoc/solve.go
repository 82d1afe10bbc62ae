package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joellidin/aoc/bfs"
	"github.com/joellidin/aoc/core"
	"github.com/joellidin/aoc/cycle"
	"github.com/joellidin/aoc/gridgraph"
	"github.com/joellidin/aoc/parse"
	"github.com/joellidin/aoc/search"
	"github.com/joellidin/aoc/vec"
)

// Maze cells.
const (
	wall  = '#'
	start = 'S'
	end   = 'E'
	rock  = 'O'
)

var errBadEdge = errors.New("malformed edge line")

// mazeResult is the answer to a maze: the optimal cost and, with all paths,
// how many distinct tiles lie on some optimal route.
type mazeResult struct {
	Cost  int
	Tiles int
}

// reindeer is a maze state when turning costs something.
type reindeer struct {
	At, Facing gridgraph.Pos
}

// solveMaze finds the cheapest S→E route. With turnCost > 0 the walker
// starts facing east, steps forward for 1 and turns 90° for turnCost.
func solveMaze(text string, turnCost int, allPaths bool, opts ...search.Option) (mazeResult, error) {
	gg, err := gridgraph.Parse(text, gridgraph.DefaultGridOptions())
	if err != nil {
		return mazeResult{}, err
	}
	s, err := gg.Find(start)
	if err != nil {
		return mazeResult{}, err
	}
	e, err := gg.Find(end)
	if err != nil {
		return mazeResult{}, err
	}
	open := func(b byte) bool { return b != wall }

	switch {
	case turnCost < 0:
		return mazeResult{}, fmt.Errorf("turn cost must be non-negative, got %d", turnCost)

	case turnCost == 0 && !allPaths:
		res, err := bfs.Walk(bfs.Space[gridgraph.Pos]{
			Start:     []gridgraph.Pos{s},
			Neighbors: gg.Neighbors(open),
			Goal:      func(p gridgraph.Pos) bool { return p == e },
		})
		if err != nil {
			return mazeResult{}, err
		}
		if !res.Found {
			return mazeResult{}, search.ErrNoPath
		}
		return mazeResult{Cost: res.Depth[e]}, nil

	case turnCost == 0:
		res, err := search.Shortest(search.Problem[gridgraph.Pos, int]{
			Seeds:  []search.Seed[gridgraph.Pos, int]{{State: s}},
			Expand: gg.Steps(open),
			Goal:   func(p gridgraph.Pos) bool { return p == e },
		}, append(opts, search.WithAllPaths())...)
		if err != nil {
			return mazeResult{}, err
		}
		return mazeResult{Cost: res.Cost, Tiles: len(res.OnPath)}, nil
	}

	p := search.Problem[reindeer, int]{
		Seeds: []search.Seed[reindeer, int]{{State: reindeer{At: s, Facing: vec.Right}}},
		Expand: func(r reindeer) []search.Step[reindeer, int] {
			steps := []search.Step[reindeer, int]{
				{To: reindeer{At: r.At, Facing: r.Facing.RotateCW()}, Cost: turnCost},
				{To: reindeer{At: r.At, Facing: r.Facing.RotateCCW()}, Cost: turnCost},
			}
			if next := r.At.Add(r.Facing); gg.InBounds(next) && open(gg.At(next)) {
				steps = append(steps, search.Step[reindeer, int]{To: reindeer{At: next, Facing: r.Facing}, Cost: 1})
			}
			return steps
		},
		Goal: func(r reindeer) bool { return r.At == e },
	}
	if allPaths {
		opts = append(opts, search.WithAllPaths())
	}
	res, err := search.Shortest(p, opts...)
	if err != nil {
		return mazeResult{}, err
	}
	out := mazeResult{Cost: res.Cost}
	if allPaths {
		tiles := make(map[gridgraph.Pos]struct{}, len(res.OnPath))
		for r := range res.OnPath {
			tiles[r.At] = struct{}{}
		}
		out.Tiles = len(tiles)
	}
	return out, nil
}

// spinLoad spins the platform n times and returns the north-beam load.
func spinLoad(text string, n int64, opts ...cycle.Option) (int, error) {
	gg, err := gridgraph.Parse(text, gridgraph.DefaultGridOptions())
	if err != nil {
		return 0, err
	}
	final, _, err := cycle.Run(cycle.Simulation[*gridgraph.GridGraph]{
		Initial: gg,
		Step: func(g *gridgraph.GridGraph) *gridgraph.GridGraph {
			g.Spin(rock, wall)
			return g
		},
		Signature: (*gridgraph.GridGraph).Signature,
	}, n, opts...)
	if err != nil {
		return 0, err
	}
	return final.Load(rock), nil
}

// route parses "from to [weight]" lines into a graph and finds the cheapest
// path. Missing weights count as 1.
func route(text, src, dst string, directed bool, opts ...search.Option) (int64, []string, error) {
	g := core.NewGraph[string](core.WithDirected(directed), core.WithMultiEdges())
	for i, line := range parse.Lines(text) {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) < 2 || len(f) > 3 {
			return 0, nil, fmt.Errorf("line %d: %w: %q", i+1, errBadEdge, line)
		}
		w := int64(1)
		if len(f) == 3 {
			n, err := strconv.ParseInt(f[2], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("line %d: %w: %v", i+1, errBadEdge, err)
			}
			w = n
		}
		if _, err := g.AddEdge(f[0], f[1], w); err != nil {
			return 0, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if !g.HasVertex(src) {
		return 0, nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, src)
	}

	res, err := search.Shortest(search.Problem[string, int64]{
		Seeds:  []search.Seed[string, int64]{{State: src}},
		Expand: g.Expand,
		Goal:   func(s string) bool { return s == dst },
	}, append(opts, search.WithPath())...)
	if err != nil {
		return 0, nil, err
	}
	return res.Cost, res.Path, nil
}
