// Package pibt implements the priority-inheritance successor generator: a
// single-pass, non-backtracking placement of every agent's next vertex,
// given a current joint configuration and a set of per-agent constraints.
//
// The generator never retries internally — priority inheritance and deeper
// reasoning are delegated to the outer constraint tree (package ctree); on
// failure the caller simply moves on to the next low-level node.
package pibt
