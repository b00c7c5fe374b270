/*
AStar — heuristic-guided shortest path

Description:

	A specialization of DijkstraMakowski that prioritizes the heap by
	cost-so-far plus a caller-supplied heuristic estimate of the
	remaining cost to destination, exploring fewer nodes than plain
	Dijkstra when the heuristic is informative.

Use cases:

	- Geographic routing, where straight-line (or cheap-ruler) distance to
	  the destination is a fast, admissible lower bound on remaining
	  graph distance.

Algorithm outline:

	Same as DijkstraMakowski, except the heap is ordered by
	dist[node] + heuristic(node) instead of dist[node] alone, and a
	popped entry is stale when its cost-so-far no longer matches dist[node].

Correctness requirement:

	heuristic must be admissible (never overestimate the true remaining
	cost to destination) for the returned path to be guaranteed shortest.
	An inadmissible heuristic still terminates and returns *some* path,
	just not necessarily the shortest one.

Time complexity: O((V+E) log V) worst case, typically much less in
practice with a good heuristic. Memory: O(V).
*/
package graph

import "container/heap"

// AStar returns the shortest path from origin to destination using
// heuristic(node) as an estimate of the remaining distance from node to
// destination. heuristic must return 0 at destination for results to be
// meaningful.
func AStar(g *Graph, origin, destination int, heuristic func(node int) float64) (PathResult, error) {
	if !g.HasNode(origin) || !g.HasNode(destination) {
		return PathResult{}, ErrInvalidNode
	}

	n := g.NodeCount()
	dist := make([]float64, n)
	predecessor := make([]int, n)
	for i := range dist {
		dist[i] = posInf
		predecessor[i] = -1
	}
	dist[origin] = 0

	pq := &nodePQ{{node: origin, cost: heuristic(origin)}}
	heap.Init(pq)

	reached := false
	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		// The heap orders by dist+heuristic, so compare against that same
		// sum to detect staleness.
		if top.cost > dist[top.node]+heuristic(top.node) {
			continue
		}
		if top.node == destination {
			reached = true
			break
		}
		neighbors, _ := g.Neighbors(top.node)
		for neighbor, weight := range neighbors {
			candidate := dist[top.node] + weight
			if candidate < dist[neighbor] {
				dist[neighbor] = candidate
				predecessor[neighbor] = top.node
				heap.Push(pq, pqItem{node: neighbor, cost: candidate + heuristic(neighbor)})
			}
		}
	}

	if !reached {
		return PathResult{}, ErrUnreachable
	}

	path, err := reconstructPath(predecessor, origin, destination)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{
		Path:   path,
		Length: dist[destination],
	}, nil
}
