// Package solver implements the LaCAM high-level search and the
// phase-based single-step driver that ties the graph, distance oracle,
// constraint tree (package ctree), and PIBT successor generator
// (package pibt) into a complete MAPF solver.
//
// Solver is a phase state machine: one call to Step advances exactly one
// phase (select, pop_constraint, expand_tree, generate, check) and returns.
// Callers that want a full run call Step in a loop until it returns false.
// Snapshot/StepBack gives UI-style undo over that loop.
package solver
