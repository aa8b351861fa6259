// File: generate.go
// Role: Generate, the priority-ordered greedy successor placement.
//
// Determinism:
//   - Unconstrained agents are sorted by descending distance-to-goal, ties
//     broken by ascending agent id (sort.SliceStable over an already
//     agent-id-ascending slice).
//   - Each agent's candidate vertices are considered in {u} ∪
//     Graph.Neighbors(u) order (u first); ties on distance-to-goal are
//     broken by that same order (first discovered wins).
package pibt

import (
	"sort"

	"github.com/katalvlaran/lacam/distance"
	"github.com/katalvlaran/lacam/graph"
	"github.com/katalvlaran/lacam/jointstate"
)

// Generate produces the unique successor configuration consistent with q,
// the per-agent constraints K, and the priority-inheritance placement rule,
// or one of ErrVertexConflict / ErrNoMove / ErrSwapConflict.
func Generate(g *graph.Graph, dist *distance.Oracle, q jointstate.Config, goals []int, constraints map[int]int) (jointstate.Config, error) {
	n := q.Len()
	next := make([]int, n)
	placed := make([]bool, n)
	occupied := make(map[int]bool, n)

	// Step 4: place constrained agents first, in ascending agent-id order
	// for determinism (map iteration order is not).
	constrainedIDs := make([]int, 0, len(constraints))
	for a := range constraints {
		constrainedIDs = append(constrainedIDs, a)
	}
	sort.Ints(constrainedIDs)

	for _, a := range constrainedIDs {
		where := constraints[a]
		if occupied[where] {
			return jointstate.Config{}, ErrVertexConflict
		}
		next[a] = where
		placed[a] = true
		occupied[where] = true
	}

	// Step 2: sort unconstrained agents descending by distance-to-goal,
	// stable tie-break by agent id.
	unconstrained := make([]int, 0, n-len(constrainedIDs))
	for a := 0; a < n; a++ {
		if !placed[a] {
			unconstrained = append(unconstrained, a)
		}
	}
	sort.SliceStable(unconstrained, func(i, j int) bool {
		di := dist.Distance(q.At(unconstrained[i]), goals[unconstrained[i]])
		dj := dist.Distance(q.At(unconstrained[j]), goals[unconstrained[j]])

		return di > dj
	})

	// Step 5: greedy placement.
	for _, a := range unconstrained {
		u := q.At(a)
		goalV := goals[a]

		if u == goalV && !occupied[u] {
			next[a] = u
			placed[a] = true
			occupied[u] = true
			continue
		}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return jointstate.Config{}, ErrNoMove
		}
		candidates := make([]int, 0, len(nbrs)+1)
		candidates = append(candidates, u)
		candidates = append(candidates, nbrs...)

		best := -1
		bestDist := -1
		for _, c := range candidates {
			if occupied[c] {
				continue
			}
			d := dist.Distance(c, goalV)
			if best == -1 || d < bestDist {
				best = c
				bestDist = d
			}
		}
		if best == -1 {
			return jointstate.Config{}, ErrNoMove
		}

		next[a] = best
		placed[a] = true
		occupied[best] = true
	}

	// Step 6: swap-conflict scan. Vertex conflicts are impossible here
	// because `occupied` enforced exclusivity above.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if q.At(i) == next[j] && q.At(j) == next[i] {
				return jointstate.Config{}, ErrSwapConflict
			}
		}
	}

	return jointstate.New(next), nil
}
