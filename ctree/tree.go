// File: tree.go
// Role: Tree owns the arena, the root, and the breadth-first work queue.
package ctree

import (
	"github.com/katalvlaran/lacam/graph"
	"github.com/katalvlaran/lacam/jointstate"
)

// Tree is one high-level node's constraint tree: a root plus every node
// expanded from it so far, and the FIFO queue of nodes not yet dequeued.
type Tree struct {
	N int // number of agents; depth is capped at N

	Root  *Node
	Queue []*Node

	nodes  []*Node // arena, indexed by Node.ID
	nextID int
}

// New creates a Tree with a single root node (Who = Where = -1, Depth = 0),
// already seeded into Queue, for n agents.
func New(n int) *Tree {
	t := &Tree{N: n}
	root := t.newNode(nil, -1, -1, 0)
	t.Root = root
	t.Queue = append(t.Queue, root)

	return t
}

func (t *Tree) newNode(parent *Node, who, where, depth int) *Node {
	n := &Node{ID: t.nextID, Parent: parent, Who: who, Where: where, Depth: depth}
	t.nextID++
	t.nodes = append(t.nodes, n)

	return n
}

// Nodes returns the full arena, indexed by Node.ID, for snapshotting.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Dequeue pops the front of Queue, marks it Searched and Selected, and
// returns it. The second return is false if Queue was empty.
func (t *Tree) Dequeue() (*Node, bool) {
	if len(t.Queue) == 0 {
		return nil, false
	}

	c := t.Queue[0]
	t.Queue = t.Queue[1:]
	c.Searched = true
	c.Selected = true

	return c, true
}

// Clone deep-copies the tree: every arena node (ids, depths, status flags,
// child order preserved), the parent links, and the current Queue contents,
// rewired to the copies. Used by the snapshot facility to capture a
// high-level node's low-level search state without aliasing the live tree.
func (t *Tree) Clone() *Tree {
	out := &Tree{N: t.N, nextID: t.nextID}

	copies := make([]*Node, len(t.nodes))
	for i, n := range t.nodes {
		copies[i] = &Node{
			ID:       n.ID,
			Who:      n.Who,
			Where:    n.Where,
			Depth:    n.Depth,
			Searched: n.Searched,
			Selected: n.Selected,
		}
	}
	for i, n := range t.nodes {
		cp := copies[i]
		if n.Parent != nil {
			cp.Parent = copies[n.Parent.ID]
		}
		if len(n.Children) > 0 {
			cp.Children = make([]*Node, len(n.Children))
			for j, ch := range n.Children {
				cp.Children[j] = copies[ch.ID]
			}
		}
	}

	out.nodes = copies
	out.Root = copies[t.Root.ID]
	out.Queue = make([]*Node, len(t.Queue))
	for i, n := range t.Queue {
		out.Queue[i] = copies[n.ID]
	}

	return out
}

// Expand grows the tree below c: if c.Depth == N this is a no-op, since a
// node at depth N already has constraints for every agent. Otherwise it
// looks up agent = pi[c.Depth] and that agent's current
// vertex v = q.At(agent), enumerates the deterministic move set
// {v} ∪ neighbors(v) (v first, then neighbors in Graph adjacency order), and
// appends one child per candidate — batched onto Queue in one shot so
// shallower constraints across the whole tree are tried before deeper ones.
func (t *Tree) Expand(c *Node, pi []int, q jointstate.Config, g *graph.Graph) error {
	if c.Depth >= t.N {
		return nil
	}

	agent := pi[c.Depth]
	v := q.At(agent)

	nbrs, err := g.Neighbors(v)
	if err != nil {
		return err
	}
	candidates := make([]int, 0, len(nbrs)+1)
	candidates = append(candidates, v)
	candidates = append(candidates, nbrs...)

	children := make([]*Node, 0, len(candidates))
	for _, where := range candidates {
		child := t.newNode(c, agent, where, c.Depth+1)
		children = append(children, child)
	}
	c.Children = children
	t.Queue = append(t.Queue, children...)

	return nil
}
