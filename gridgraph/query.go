package gridgraph

import (
	"math"

	"github.com/halvard-ren/geopath/geograph"
	"github.com/halvard-ren/geopath/graph"
)

// ShortestPath finds the shortest path between two cells. Unlike
// geograph.GetShortestPath, origin and destination must already be nodes
// (there is no endpoint snapping for a grid), so both are resolved to node
// ids directly via NodeID.
func (g *GridGraph) ShortestPath(origin, destination Cell, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	originID, err := g.NodeID(origin)
	if err != nil {
		return Result{}, err
	}
	destinationID, err := g.NodeID(destination)
	if err != nil {
		return Result{}, err
	}

	var path graph.PathResult
	switch cfg.algorithm {
	case geograph.AlgorithmAStar:
		heuristic := func(id int) float64 { return euclidean(g.cellAt(id), destination) }
		path, err = graph.AStar(g.Graph, originID, destinationID, heuristic)
	default:
		path, err = graph.DijkstraMakowski(g.Graph, originID, destinationID)
	}
	if err != nil {
		return Result{}, err
	}

	cells := make([]Cell, len(path.Path))
	for i, id := range path.Path {
		cells[i] = g.cellAt(id)
	}

	return Result{Path: cells, Length: path.Length}, nil
}

// euclidean returns the straight-line distance between two cells in grid
// units, the admissible A* heuristic for this grid's edge weights.
func euclidean(a, b Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
