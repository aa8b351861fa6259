// Package distance provides an on-demand, memoizing BFS hop-distance oracle
// over a graph.Graph, plus a precomputed all-pairs-from-one-goal mode used by
// the solver to avoid repeated BFS in the PIBT hot loop (one BFS per agent
// goal at Solver.Initialize).
package distance
