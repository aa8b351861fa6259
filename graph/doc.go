// Package graph provides the undirected, unweighted, simple graph used as
// the substrate for the MAPF solver: thread-safe vertex/edge mutation,
// deterministic sorted enumeration, and cheap cloning.
//
// Vertex and edge identifiers are dense, per-instance integer counters
// (never process-global), so calls on one Graph never shift the ids of
// another, and two Graph values built with the same sequence of calls get
// the same ids.
package graph
