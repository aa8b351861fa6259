package ctree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lacam/ctree"
	"github.com/katalvlaran/lacam/graph"
	"github.com/katalvlaran/lacam/jointstate"
)

// lineFixture builds a-b-c and two agents at a and c.
func lineFixture(t *testing.T) (*graph.Graph, jointstate.Config) {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	return g, jointstate.New([]int{a, c})
}

func TestRootHasNoConstraintsAndIsQueued(t *testing.T) {
	tr := ctree.New(2)
	require.Equal(t, -1, tr.Root.Who)
	require.Equal(t, -1, tr.Root.Where)
	require.Equal(t, 0, tr.Root.Depth)
	require.Empty(t, tr.Root.Constraints())
	require.Len(t, tr.Queue, 1)
}

func TestExpandNoOpAtMaxDepth(t *testing.T) {
	g, q := lineFixture(t)
	tr := ctree.New(2)
	root, _ := tr.Dequeue()
	require.NoError(t, tr.Expand(root, []int{0, 1}, q, g))
	require.NotEmpty(t, root.Children)

	leaf := root.Children[0]
	for leaf.Depth < 2 {
		require.NoError(t, tr.Expand(leaf, []int{0, 1}, q, g))
		leaf = leaf.Children[0]
	}
	before := len(tr.Nodes())
	require.NoError(t, tr.Expand(leaf, []int{0, 1}, q, g))
	require.Empty(t, leaf.Children)
	require.Equal(t, before, len(tr.Nodes()), "expanding a depth==N node must be a no-op")
}

func TestExpandChildOrderVertexFirstThenNeighbors(t *testing.T) {
	g, q := lineFixture(t) // agent 0 at vertex a (id 0), whose only neighbor is b (id 1)
	tr := ctree.New(2)
	root, _ := tr.Dequeue()
	require.NoError(t, tr.Expand(root, []int{0, 1}, q, g))

	require.Len(t, root.Children, 2)
	require.Equal(t, 0, root.Children[0].Where, "stay-in-place candidate must come first")
	require.Equal(t, 1, root.Children[1].Where)
}

func TestConstraintsCollectedAlongPathToRoot(t *testing.T) {
	g, q := lineFixture(t)
	tr := ctree.New(2)
	root, _ := tr.Dequeue()
	require.NoError(t, tr.Expand(root, []int{0, 1}, q, g))
	child := root.Children[0]
	require.NoError(t, tr.Expand(child, []int{0, 1}, q, g))
	grandchild := child.Children[0]

	cons := grandchild.Constraints()
	require.Len(t, cons, 2)
	require.Contains(t, cons, 0)
	require.Contains(t, cons, 1)
}

func TestDequeueMarksSearchedAndSelected(t *testing.T) {
	tr := ctree.New(1)
	root, ok := tr.Dequeue()
	require.True(t, ok)
	require.True(t, root.Searched)
	require.True(t, root.Selected)

	_, ok = tr.Dequeue()
	require.False(t, ok, "queue should be empty after draining the single root")
}
