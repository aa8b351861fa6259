package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lacam/graph"
)

func TestAddVertexAutoLabelsFirst26(t *testing.T) {
	g := graph.NewGraph()
	for i := 0; i < 28; i++ {
		id := g.AddVertex()
		require.Equal(t, i, id)
		label, ok := g.Label(id)
		require.True(t, ok)
		if i < 26 {
			require.Equal(t, string(rune('a'+i)), label)
		} else {
			require.Empty(t, label)
		}
	}
}

func TestAddEdgeRejectsLoopsAndIsIdempotent(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()

	_, err := g.AddEdge(a, a)
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	e1, err := g.AddEdge(a, b)
	require.NoError(t, err)

	e2, err := g.AddEdge(b, a)
	require.NoError(t, err)
	require.Equal(t, e1, e2, "duplicate edge should be a no-op returning the existing id")

	require.Equal(t, 1, g.EdgeCount())
}

func TestRemoveVertexCascadesEdges(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex(b))
	require.False(t, g.HasVertex(b))
	require.Equal(t, 0, g.EdgeCount())

	require.ErrorIs(t, g.RemoveVertex(b), graph.ErrVertexNotFound)
}

func TestNeighborsSortedAscending(t *testing.T) {
	g := graph.NewGraph()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 1; i < len(ids); i++ {
		_, err := g.AddEdge(ids[0], ids[i])
		require.NoError(t, err)
	}

	nbrs, err := g.Neighbors(ids[0])
	require.NoError(t, err)
	require.Equal(t, ids[1:], nbrs)
}

func TestCloneSharesVerticesDeepCopiesEdges(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	clone := g.Clone()
	require.True(t, clone.HasEdge(a, b))

	require.NoError(t, clone.RemoveEdge(a, b))
	require.True(t, g.HasEdge(a, b), "mutating the clone must not affect the original")
}

func TestCloneEmptyCarriesVerticesNotEdges(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	clone := g.CloneEmpty()
	require.True(t, clone.HasVertex(a))
	require.True(t, clone.HasVertex(b))
	require.Equal(t, 0, clone.EdgeCount())
}

func TestClear(t *testing.T) {
	g := graph.NewGraph()
	g.AddVertex()
	g.AddVertex()
	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, 0, g.AddVertex(), "id sequence restarts after Clear")
}
