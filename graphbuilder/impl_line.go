// File: impl_line.go
// Role: Line, a simple path fixture, used for scenarios like a two-agent
//       line swap or a bypass line with a side pocket.
package graphbuilder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lacam/graph"
)

const minLineVertices = 2

// Line builds a simple path of n vertices (n >= 2), registering each under
// its decimal index ("0", "1", ..., strconv.Itoa(n-1)) and connecting
// consecutive vertices in ascending order.
func Line(n int) Constructor {
	return func(g *graph.Graph, cfg *BuildConfig) error {
		if n < minLineVertices {
			return fmt.Errorf("Line: n=%d < %d: %w", n, minLineVertices, ErrTooFewVertices)
		}

		ids := make([]int, n)
		for i := 0; i < n; i++ {
			ids[i] = g.AddVertex()
			cfg.register(strconv.Itoa(i), ids[i])
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("Line: AddEdge(%d,%d): %w", ids[i-1], ids[i], err)
			}
		}

		return nil
	}
}
