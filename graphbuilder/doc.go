// Package graphbuilder provides deterministic Constructor closures for
// assembling graph.Graph fixtures: the topologies a solver test harness
// actually needs (line, cycle, star, grid) plus a SidePocket attachment
// used to build the "bypass line with side pocket" scenario.
//
// Constructors are composed through BuildGraph, which also returns a
// BuildConfig recording every named vertex so callers can look up "the
// top-left corner of the grid" or "vertex 0 of the path" by key instead of
// by raw id, since graph.Graph assigns ids itself rather than accepting
// caller-chosen ones.
package graphbuilder
