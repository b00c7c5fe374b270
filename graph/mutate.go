package graph

import "fmt"

// AddNode appends a new isolated node and returns its id.
func (g *Graph) AddNode() int {
	id := len(g.adjacency)
	g.adjacency = append(g.adjacency, make(map[int]float64))

	return id
}

// AddArc inserts an undirected edge u-v with the given weight. It returns
// ErrInvalidNode if either endpoint doesn't exist, ErrInvalidGraph if u==v
// or weight < 0, and ErrDuplicateArc if the arc already exists.
func (g *Graph) AddArc(u, v int, weight float64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrInvalidNode
	}
	if u == v {
		return fmt.Errorf("%w: self-loop at node %d", ErrInvalidGraph, u)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %g", ErrInvalidGraph, weight)
	}
	if _, exists := g.adjacency[u][v]; exists {
		return ErrDuplicateArc
	}

	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight

	return nil
}

// RemoveArc deletes the undirected edge u-v. It returns ErrMissingArc if no
// such edge exists.
func (g *Graph) RemoveArc(u, v int) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrInvalidNode
	}
	if _, exists := g.adjacency[u][v]; !exists {
		return ErrMissingArc
	}

	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// RemoveNode deletes node id and every arc touching it, renumbering every
// node with a higher id down by one to keep ids contiguous (invariant I1).
// Removing the highest-numbered node is O(degree); any other removal is
// O(NodeCount + EdgeCount) because every remaining adjacency map must be
// rekeyed.
func (g *Graph) RemoveNode(id int) error {
	if !g.HasNode(id) {
		return ErrInvalidNode
	}

	last := len(g.adjacency) - 1
	if id == last {
		for neighbor := range g.adjacency[id] {
			delete(g.adjacency[neighbor], id)
		}
		g.adjacency = g.adjacency[:last]

		return nil
	}

	newAdjacency := make([]map[int]float64, last)
	remap := func(n int) int {
		if n < id {
			return n
		}

		return n - 1
	}
	for n := 0; n < len(g.adjacency); n++ {
		if n == id {
			continue
		}
		rekeyed := make(map[int]float64, len(g.adjacency[n]))
		for neighbor, weight := range g.adjacency[n] {
			if neighbor == id {
				continue
			}
			rekeyed[remap(neighbor)] = weight
		}
		newAdjacency[remap(n)] = rekeyed
	}
	g.adjacency = newAdjacency

	return nil
}
