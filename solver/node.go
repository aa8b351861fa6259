package solver

import (
	"github.com/katalvlaran/lacam/ctree"
	"github.com/katalvlaran/lacam/jointstate"
)

// highLevelNode is one node of the high-level search: a unique id, a
// configuration, a priority order, the constraint tree grown from that
// configuration, and a parent link for solution reconstruction.
type highLevelNode struct {
	id     int
	config jointstate.Config
	order  []int // priority order pi, a permutation of agent ids
	tree   *ctree.Tree
	parent *highLevelNode // nil only for the initial node
}

// clone deep-copies n, including its constraint tree, but leaves parent as
// a plain pointer to be relinked by the caller (the snapshot facility
// rebuilds the parent chain in a second pass, by id).
func (n *highLevelNode) clone() *highLevelNode {
	return &highLevelNode{
		id:     n.id,
		config: n.config,
		order:  append([]int(nil), n.order...),
		tree:   n.tree.Clone(),
	}
}
