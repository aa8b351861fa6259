// Package ctree implements the per-high-level-node constraint tree: the
// low-level search structure whose root-to-node path pins the next-step
// position of a prefix of agents in priority order.
//
// Nodes are held in an index-based arena (Tree.nodes) so a high-level node's
// entire constraint tree can be deep-copied (ids, depths, status flags, child
// order preserved) by the snapshot facility in two passes (node records
// first, then parent/child links), and freed as a
// whole when the owning high-level node is dropped.
package ctree
