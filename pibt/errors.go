package pibt

import "errors"

// Sentinel errors returned by Generate. None of these are exceptional:
// the caller (the solver's generate phase) treats any of them as "this
// low-level node produced no successor" and moves on.
var (
	// ErrVertexConflict is returned when two constrained agents are pinned
	// to the same vertex.
	ErrVertexConflict = errors.New("pibt: vertex conflict among constraints")

	// ErrNoMove is returned when an unconstrained agent has no unoccupied
	// candidate vertex left to claim.
	ErrNoMove = errors.New("pibt: no free move for agent")

	// ErrSwapConflict is returned when two agents would cross the same edge
	// in opposite directions.
	ErrSwapConflict = errors.New("pibt: swap conflict")
)
