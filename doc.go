// Package lacam is the core of a LaCAM-based Multi-Agent Path Finding
// (MAPF) solver: given an undirected graph and a set of agents each with a
// start and a goal vertex, it searches for a sequence of joint
// configurations that moves every agent from start to goal without
// collision, or reports that none exists within the explored space.
//
// The search is two-level: a high-level search over joint configurations
// (package solver) drives a low-level search over a per-configuration
// constraint tree (package ctree) that in turn drives a priority-inheritance
// successor generator (package pibt). The supporting packages are graph
// (the undirected graph type), distance (a memoizing hop-distance oracle),
// and jointstate (the configuration type and its fingerprint).
//
// Subpackages:
//
//	graph/        — vertices, edges, neighbor lookup, clone/clear
//	distance/     — BFS hop-distance oracle, memoized and goal-precomputable
//	jointstate/   — the joint configuration type and its EXPLORED fingerprint
//	ctree/        — the per-high-level-node constraint tree
//	pibt/         — the priority-inheritance successor generator
//	solver/       — the phase-based single-step driver and snapshot/restore
//	graphbuilder/ — deterministic constructors for test and demo fixtures
//
// Solver is a library: there is no CLI, no file format, and no wire
// protocol. A caller builds a graph, calls solver.New().Initialize, and then
// drives the search with Step in a loop (or one call at a time, for a UI
// stepper).
package lacam
