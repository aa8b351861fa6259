// File: node.go
// Role: Node, one vertex of the constraint tree.
package ctree

// Node is one node of a constraint tree. The root has Who == Where == -1.
// Parent is used only to collect constraints by walking up to the root; it
// is never used to mutate the parent.
type Node struct {
	ID     int
	Parent *Node
	Who    int // agent id this node pins, -1 at root
	Where  int // vertex id this node pins Who to, -1 at root
	Depth  int

	Children []*Node

	// Searched and Selected both flip to true the instant this node is
	// dequeued; Selected is presentation-only, Searched stops re-processing.
	Searched bool
	Selected bool
}

// Constraints walks from n up to (but excluding) the root, collecting
// (agent -> vertex) pins. The result has exactly n.Depth entries.
func (n *Node) Constraints() map[int]int {
	out := make(map[int]int, n.Depth)
	for c := n; c.Parent != nil; c = c.Parent {
		out[c.Who] = c.Where
	}

	return out
}
