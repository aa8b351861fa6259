// File: impl_grid.go
// Role: Grid, an R×C 4-connected orthogonal grid fixture, used for scenarios
//       like two agents crossing diagonally on a 3x3 grid.
package graphbuilder

import (
	"fmt"

	"github.com/katalvlaran/lacam/graph"
)

const minGridDim = 1

// gridKey formats the BuildConfig registry key for grid cell (r, c).
func gridKey(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid builds a rows×cols 4-neighborhood grid, registering each cell under
// "r,c" (row-major) and connecting every cell to its right and bottom
// neighbor when present.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg *BuildConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d cols=%d < %d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := make([][]int, rows)
		for r := 0; r < rows; r++ {
			ids[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				id := g.AddVertex()
				ids[r][c] = id
				cfg.register(gridKey(r, c), id)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddEdge(ids[r][c], ids[r][c+1]); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", ids[r][c], ids[r][c+1], err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(ids[r][c], ids[r+1][c]); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", ids[r][c], ids[r+1][c], err)
					}
				}
			}
		}

		return nil
	}
}
