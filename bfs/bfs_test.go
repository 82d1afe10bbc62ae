package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/joellidin/aoc/bfs"
)

// adjacency builds an undirected Neighbors function from edge pairs.
// Neighbors come back in edge insertion order.
func adjacency(pairs ...[2]string) func(string) []string {
	adj := map[string][]string{}
	for _, p := range pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		if p[0] != p[1] {
			adj[p[1]] = append(adj[p[1]], p[0])
		}
	}
	return func(s string) []string { return adj[s] }
}

func from(start string, nb func(string) []string) bfs.Space[string] {
	return bfs.Space[string]{Start: []string{start}, Neighbors: nb}
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(bfs.Space[string]{Neighbors: adjacency()}); !errors.Is(err, bfs.ErrNoStart) {
		t.Errorf("no start: want ErrNoStart, got %v", err)
	}
	if _, err := bfs.Walk(bfs.Space[string]{Start: []string{"A"}}); !errors.Is(err, bfs.ErrNilNeighbors) {
		t.Errorf("nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.Walk(from("A", adjacency()), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SimpleTraversal covers the trivial one-state space.
func TestWalk_SimpleTraversal(t *testing.T) {
	res, err := bfs.Walk(from("A", adjacency()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if res.Found {
		t.Error("Found without a Goal predicate")
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	res, err := bfs.Walk(from("A", nb))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
}

// TestWalk_Disconnected ensures the walk only explores the start's component.
func TestWalk_Disconnected(t *testing.T) {
	nb := adjacency([2]string{"X", "Y"}, [2]string{"P", "Q"})
	resX, _ := bfs.Walk(from("X", nb))
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	// Both components at once with two starts.
	both, _ := bfs.Walk(bfs.Space[string]{Start: []string{"X", "P", "X"}, Neighbors: nb})
	if !reflect.DeepEqual(both.Order, []string{"X", "P", "Y", "Q"}) {
		t.Errorf("multi-start: got %v; want [X P Y Q]", both.Order)
	}
}

// TestWalk_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestWalk_MaxDepth(t *testing.T) {
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	// depth = 1 should only visit A,B
	if res, _ := bfs.Walk(from("A", nb), bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.Walk(from("A", nb), bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > space size => same full traversal
	if res, _ := bfs.Walk(from("A", nb), bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestWalk_SelfLoopAndParallelDedup ensures that loops and repeated neighbors do not enqueue twice.
func TestWalk_SelfLoopAndParallelDedup(t *testing.T) {
	nb := adjacency([2]string{"A", "A"}, [2]string{"A", "B"}, [2]string{"A", "B"})
	res, _ := bfs.Walk(from("A", nb))
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisit asserts that the hook fires in order with depths, and that
// its error aborts the walk.
func TestWalk_OnVisit(t *testing.T) {
	nb := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	var vis []string
	sp := from("A", nb)
	sp.OnVisit = func(s string, d int) error {
		vis = append(vis, s+"@"+strconv.Itoa(d))
		return nil
	}
	if _, err := bfs.Walk(sp); err != nil {
		t.Fatal(err)
	}
	if want := []string{"A@0", "B@1", "C@2"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}

	boom := errors.New("boom")
	sp.OnVisit = func(s string, _ int) error {
		if s == "B" {
			return boom
		}
		return nil
	}
	res, err := bfs.Walk(sp)
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped hook error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_GoalOnGrid stops at the first goal and rebuilds the path.
func TestWalk_GoalOnGrid(t *testing.T) {
	type cell struct{ r, c int }
	grid := []string{
		"..#",
		"#..",
		"...",
	}
	sp := bfs.Space[cell]{
		Start: []cell{{0, 0}},
		Neighbors: func(p cell) []cell {
			var out []cell
			for _, d := range []cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
				n := cell{p.r + d.r, p.c + d.c}
				if n.r >= 0 && n.c >= 0 && n.r < 3 && n.c < 3 && grid[n.r][n.c] == '.' {
					out = append(out, n)
				}
			}
			return out
		},
		Goal: func(p cell) bool { return p == cell{2, 0} },
	}
	res, err := bfs.Walk(sp)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || res.Goal != (cell{2, 0}) {
		t.Fatalf("Found=%v Goal=%v; want (2,0)", res.Found, res.Goal)
	}
	if d := res.Depth[res.Goal]; d != 4 {
		t.Errorf("Depth[goal] = %d; want 4", d)
	}
	path, err := res.PathTo(res.Goal)
	if err != nil {
		t.Fatal(err)
	}
	want := []cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
}

// TestWalk_PathTo covers both trivial (start→start) and unreachable targets.
func TestWalk_PathTo(t *testing.T) {
	res, _ := bfs.Walk(from("X", adjacency()))
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if !errors.Is(err, bfs.ErrNotReached) || !strings.Contains(err.Error(), "Y") {
		t.Errorf("PathTo unreachable: expected ErrNotReached naming Y, got %v", err)
	}
}

// TestWalk_Cancellation verifies that a cancelled context halts the walk promptly.
func TestWalk_Cancellation(t *testing.T) {
	var pairs [][2]string
	for i := 0; i < 100; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)})
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Walk(from("v0", adjacency(pairs...)), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestWalk_ConcurrentSafety ensures two concurrent walks over the same space do not interfere.
func TestWalk_ConcurrentSafety(t *testing.T) {
	nb := adjacency([2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Walk(from("A", nb)); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

// BenchmarkWalk_Chain measures a walk along a linear chain of N+1 states.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	sp := bfs.Space[int]{
		Start: []int{0},
		Neighbors: func(n int) []int {
			if n == N {
				return nil
			}
			return []int{n + 1}
		},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(sp)
	}
}
