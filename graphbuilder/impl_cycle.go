// File: impl_cycle.go
// Role: Cycle, an n-vertex ring fixture.
package graphbuilder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lacam/graph"
)

const minCycleVertices = 3

// Cycle builds an n-vertex simple cycle (n >= 3), registering each vertex
// under its decimal index and closing the ring from vertex n-1 back to 0.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg *BuildConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleVertices, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
			cfg.register(strconv.Itoa(i), ids[i])
		}
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", u, v, err)
			}
		}

		return nil
	}
}
