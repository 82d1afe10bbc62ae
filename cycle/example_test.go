package cycle_test

import (
	"fmt"

	"github.com/joellidin/aoc/cycle"
)

// ExampleRun fast-forwards a counter that wraps modulo 7 to a step count far
// beyond anything that could be simulated directly.
func ExampleRun() {
	sim := cycle.Simulation[int]{
		Initial:   2,
		Step:      func(n int) int { return (n + 3) % 7 },
		Signature: func(n int) uint64 { return uint64(n) },
	}
	got, rep, err := cycle.Run(sim, 1_000_000_000_000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(got, rep.Start, rep.Length)
	// Output: 5 0 7
}
