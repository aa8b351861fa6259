package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lacam/distance"
	"github.com/katalvlaran/lacam/graph"
)

func line(t *testing.T, n int) (*graph.Graph, []int) {
	t.Helper()
	g := graph.NewGraph()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(ids[i-1], ids[i])
		require.NoError(t, err)
	}

	return g, ids
}

func TestDistanceZeroForSameVertex(t *testing.T) {
	g, ids := line(t, 3)
	o := distance.NewOracle(g)
	require.Equal(t, 0, o.Distance(ids[0], ids[0]))
}

func TestDistanceSymmetric(t *testing.T) {
	g, ids := line(t, 5)
	o := distance.NewOracle(g)
	require.Equal(t, o.Distance(ids[0], ids[4]), o.Distance(ids[4], ids[0]))
	require.Equal(t, 4, o.Distance(ids[0], ids[4]))
}

func TestDistanceInfinityWhenUnreachable(t *testing.T) {
	g, ids := line(t, 2)
	isolated := g.AddVertex()
	o := distance.NewOracle(g)
	require.Equal(t, distance.Infinity, o.Distance(ids[0], isolated))
}

func TestDistanceInfinityForUnknownVertex(t *testing.T) {
	g, ids := line(t, 2)
	o := distance.NewOracle(g)
	require.Equal(t, distance.Infinity, o.Distance(ids[0], 999))
}

func TestPrecomputeMatchesOnDemandBFS(t *testing.T) {
	g, ids := line(t, 6)
	o := distance.NewOracle(g)
	o.Precompute(ids[0])
	for i, v := range ids {
		require.Equal(t, i, o.Distance(v, ids[0]))
	}
}
