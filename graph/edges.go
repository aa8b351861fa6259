// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Edge lifecycle & queries (AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount).
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID ascending.
// AI-HINT (file):
//   - Undirected, unweighted, loopless, simple graph: AddEdge rejects
//     self-loops (ErrLoopNotAllowed) and is a no-op (not an error) if the
//     unordered pair already has an edge, per the external graph-builder
//     interface contract ("no-op if duplicate").
package graph

import "sort"

// AddEdge connects u and v. It is a no-op (returns the existing edge id,
// nil error) if an edge between u and v already exists. Returns
// ErrVertexNotFound if either endpoint is absent, ErrLoopNotAllowed if
// u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if u == v {
		return -1, ErrLoopNotAllowed
	}

	g.muVert.RLock()
	_, uok := g.vertices[u]
	_, vok := g.vertices[v]
	g.muVert.RUnlock()
	if !uok || !vok {
		return -1, ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacencyList[u][v]; ok {
		return eid, nil
	}

	eid := g.nextEdgeID
	g.nextEdgeID++
	g.edges[eid] = &Edge{ID: eid, U: u, V: v}
	g.adjacencyList[u][v] = eid
	g.adjacencyList[v][u] = eid

	return eid, nil
}

// RemoveEdge deletes the edge between u and v, if any. Returns
// ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacencyList[u][v]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.adjacencyList[u], v)
	delete(g.adjacencyList[v], u)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether u and v are directly connected.
//
// Complexity: O(1)
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacencyList[u][v]

	return ok
}

// Edges returns all edges, sorted by Edge.ID ascending.
//
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the ids of vertices directly connected to id, sorted
// ascending (first-discovery-order determinism for the PIBT generator and
// the constraint tree's child enumeration relies on this).
//
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, 0, len(g.adjacencyList[id]))
	for nbr := range g.adjacencyList[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}
