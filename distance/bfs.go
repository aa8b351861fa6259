// File: bfs.go
// Role: the single-source BFS primitives the Oracle builds on.
//
// A FIFO-queue BFS walker with a visited-set: the queue is seeded with the
// source, neighbors are enqueued in first-visit (here: Graph.Neighbors
// ascending) order, and visited is tracked by a boolean map.
package distance

import "github.com/katalvlaran/lacam/graph"

type bfsItem struct {
	id, depth int
}

// bfsLayers runs a full single-source BFS from src and returns hop distance
// to every reachable vertex (src itself included, at distance 0). Vertices
// not present in the returned map are unreachable from src.
func bfsLayers(g *graph.Graph, src int) map[int]int {
	dist := map[int]int{src: 0}
	queue := []bfsItem{{src, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			continue
		}
		for _, nbr := range nbrs {
			if _, seen := dist[nbr]; seen {
				continue
			}
			dist[nbr] = cur.depth + 1
			queue = append(queue, bfsItem{nbr, cur.depth + 1})
		}
	}

	return dist
}

// bfsDistance runs BFS from src, stopping as soon as dst is discovered, and
// returns the hop count or Infinity if dst is unreachable.
func bfsDistance(g *graph.Graph, src, dst int) int {
	if src == dst {
		return 0
	}

	visited := map[int]bool{src: true}
	queue := []bfsItem{{src, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			continue
		}
		for _, nbr := range nbrs {
			if visited[nbr] {
				continue
			}
			if nbr == dst {
				return cur.depth + 1
			}
			visited[nbr] = true
			queue = append(queue, bfsItem{nbr, cur.depth + 1})
		}
	}

	return Infinity
}
