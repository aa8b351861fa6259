package solver

import (
	"sort"

	"github.com/katalvlaran/lacam/distance"
	"github.com/katalvlaran/lacam/jointstate"
)

// initialOrder sorts agents by BFS distance from start to goal, descending,
// stable tie-break by agent id. This is the priority order used to seed the
// initial high-level node.
func initialOrder(dist *distance.Oracle, starts, goals []int) []int {
	n := len(starts)
	order := make([]int, n)
	for a := range order {
		order[a] = a
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist.Distance(starts[order[i]], goals[order[i]]) > dist.Distance(starts[order[j]], goals[order[j]])
	})

	return order
}

// successorOrder places agents not yet at their goal ahead of agents
// already at their goal; within each partition, descending distance-to-goal,
// stable tie-break by agent id. This is the priority order assigned to
// every high-level node generated after the initial one.
func successorOrder(dist *distance.Oracle, q jointstate.Config, goals []int) []int {
	n := q.Len()
	order := make([]int, n)
	for a := range order {
		order[a] = a
	}
	atGoal := func(a int) bool { return q.At(a) == goals[a] }
	sort.SliceStable(order, func(i, j int) bool {
		ai, aj := atGoal(order[i]), atGoal(order[j])
		if ai != aj {
			return !ai // not-at-goal (false) sorts before at-goal (true)
		}

		return dist.Distance(q.At(order[i]), goals[order[i]]) > dist.Distance(q.At(order[j]), goals[order[j]])
	})

	return order
}
