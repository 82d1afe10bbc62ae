package bfs_test

import (
	"fmt"

	"github.com/joellidin/aoc/bfs"
)

// ExampleWalk demonstrates BFS layering over a small implicit space: from n
// you may move to n+1 or 2n, and we want the fewest moves from 1 to 10.
func ExampleWalk() {
	res, err := bfs.Walk(bfs.Space[int]{
		Start: []int{1},
		Neighbors: func(n int) []int {
			if n > 10 {
				return nil
			}
			return []int{n + 1, 2 * n}
		},
		Goal: func(n int) bool { return n == 10 },
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(res.Goal)
	fmt.Println(res.Depth[10], path)
	// Output:
	// 4 [1 2 4 5 10]
}
