// File: impl_star.go
// Role: Star, a center-plus-leaves fixture.
package graphbuilder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lacam/graph"
)

const minStarVertices = 2

// starCenterKey is the BuildConfig registry key for a Star's hub vertex.
const starCenterKey = "center"

// Star builds a star with one center (registered under "center") and n-1
// leaves (registered under their decimal index "0".."n-2"), n >= 2.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg *BuildConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarVertices, ErrTooFewVertices)
		}

		center := g.AddVertex()
		cfg.register(starCenterKey, center)

		for i := 0; i < n-1; i++ {
			leaf := g.AddVertex()
			cfg.register(strconv.Itoa(i), leaf)
			if _, err := g.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("Star: AddEdge(%d,%d): %w", center, leaf, err)
			}
		}

		return nil
	}
}
