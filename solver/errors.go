package solver

import "errors"

// Sentinel errors surfaced by Initialize. None of these leave partial state:
// Initialize either fully resets the solver or returns one of these
// unchanged.
var (
	// ErrNoAgents is returned when the agent set is empty.
	ErrNoAgents = errors.New("solver: no agents")

	// ErrTooFewVertices is returned when the graph has fewer than two
	// vertices.
	ErrTooFewVertices = errors.New("solver: graph has fewer than two vertices")

	// ErrInvalidVertex is returned when a start or goal vertex is not
	// present in the graph.
	ErrInvalidVertex = errors.New("solver: invalid start or goal vertex")

	// ErrMismatchedAgentCount is returned when starts and goals have
	// different lengths.
	ErrMismatchedAgentCount = errors.New("solver: starts and goals length mismatch")
)
