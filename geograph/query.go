package geograph

import (
	"github.com/halvard-ren/geopath/geo"
	"github.com/halvard-ren/geopath/graph"
)

// GetShortestPath computes the shortest path between two coordinates that
// need not already be nodes of g. It temporarily grafts synthetic nodes for
// origin and destination onto the graph (see graft), solves, formats the
// result, and always undoes the graft before returning — on success and on
// any error from the solver alike.
//
// With WithCache(true), origin and destination are instead snapped directly
// onto their nearest existing node (no grafting, so WithNodeAdditionType
// must be Closest or KDClosest) and the path is answered from a cached spanning tree;
// see getShortestPathCached.
func (g *GeoGraph) GetShortestPath(origin, destination geo.Coordinate, opts ...QueryOption) (GeoPathResult, error) {
	if err := origin.Validate(); err != nil {
		return GeoPathResult{}, err
	}
	if err := destination.Validate(); err != nil {
		return GeoPathResult{}, err
	}

	cfg := defaultQueryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.useCache {
		return g.getShortestPathCached(origin, destination, cfg)
	}

	return g.getShortestPathGrafted(origin, destination, cfg)
}

// getShortestPathGrafted is the uncached path: both endpoints are candidate
// sets computed against the graph as it stands *before* either graft (so
// neither endpoint can snap onto the other's synthetic node), then grafted
// in origin, destination order and rolled back in the reverse order via
// deferred undo closures — LIFO, matching the graft/undo discipline in
// spec §4.3.1 ("the two synthetic nodes are always the last two indices").
func (g *GeoGraph) getShortestPathGrafted(origin, destination geo.Coordinate, cfg queryConfig) (GeoPathResult, error) {
	originCandidates, err := candidateNodes(g, origin, cfg.nodeAdditionType)
	if err != nil {
		return GeoPathResult{}, err
	}
	destinationCandidates, err := candidateNodes(g, destination, cfg.nodeAdditionType)
	if err != nil {
		return GeoPathResult{}, err
	}

	originID, undoOrigin, err := g.graft(origin, originCandidates, cfg.nodeAdditionCircuity)
	if err != nil {
		return GeoPathResult{}, err
	}
	defer undoOrigin()

	destinationID, undoDestination, err := g.graft(destination, destinationCandidates, cfg.nodeAdditionCircuity)
	if err != nil {
		return GeoPathResult{}, err
	}
	defer undoDestination()

	heuristic := func(node int) float64 {
		d, _ := geo.Haversine(g.Coordinates[node], destination, geo.Kilometers, 1)

		return d
	}

	path, err := g.solve(originID, destinationID, cfg.algorithm, heuristic)
	if err != nil {
		return GeoPathResult{}, err
	}

	return g.formatGraftedResult(path, origin, destination, cfg)
}

// graft appends a synthetic node at point, wires one edge to each of
// candidates weighted by haversine(point, candidate)*circuity, and returns
// its id plus an undo closure that removes exactly what was added. undo is
// always safe to call even if graft itself returned an error (it removes
// whatever subset of edges was actually added before restoring the caller
// to a byte-identical state, per spec §4.3.1 and §5's rollback-on-every-exit
// requirement).
func (g *GeoGraph) graft(point geo.Coordinate, candidates []int, circuity float64) (id int, undo func(), err error) {
	id = g.Graph.AddNode()
	g.Coordinates = append(g.Coordinates, point)

	linked := make([]int, 0, len(candidates))
	for _, candidate := range candidates {
		weight, herr := geo.Haversine(point, g.Coordinates[candidate], geo.Kilometers, circuity)
		if herr != nil {
			err = herr

			break
		}
		if aerr := g.Graph.AddArc(id, candidate, weight); aerr == nil {
			linked = append(linked, candidate)
		}
	}

	undo = func() {
		for _, candidate := range linked {
			_ = g.Graph.RemoveArc(id, candidate)
		}
		_ = g.Graph.RemoveNode(id)
		g.Coordinates = g.Coordinates[:len(g.Coordinates)-1]
	}

	if err != nil {
		undo()

		return 0, func() {}, err
	}

	return id, undo, nil
}

// solve dispatches to the named algorithm. AStar's heuristic argument is
// ignored by AlgorithmDijkstra.
func (g *GeoGraph) solve(originID, destinationID int, algorithm Algorithm, heuristic func(node int) float64) (graph.PathResult, error) {
	switch algorithm {
	case AlgorithmDijkstra:
		return graph.DijkstraMakowski(g.Graph, originID, destinationID)
	case AlgorithmAStar:
		return graph.AStar(g.Graph, originID, destinationID, heuristic)
	default:
		return graph.PathResult{}, ErrUnknownAlgorithm
	}
}

// formatGraftedResult converts a solved path over a grafted graph into a
// GeoPathResult. path.Path always begins and ends with the two synthetic
// endpoint ids (graft never links them to each other, only to existing
// candidates), so NodePath strips them to report only existing node ids, as
// spec §4.3.1 requires.
//
// path.Length was accumulated using the two stub edges weighted at
// cfg.nodeAdditionCircuity, which exists only to bias which candidate graft
// picks (a detour through a far-flung "shortcut" node should look
// unattractive during the search). The length actually reported swaps those
// two stub edges back to cfg.offGraphCircuity, leaving the real graph edges
// between them untouched.
func (g *GeoGraph) formatGraftedResult(path graph.PathResult, origin, destination geo.Coordinate, cfg queryConfig) (GeoPathResult, error) {
	rawKm := path.Length
	if len(path.Path) >= 3 {
		firstReal := g.Coordinates[path.Path[1]]
		lastReal := g.Coordinates[path.Path[len(path.Path)-2]]

		biasedFirst, err := geo.Haversine(origin, firstReal, geo.Kilometers, cfg.nodeAdditionCircuity)
		if err != nil {
			return GeoPathResult{}, err
		}
		biasedLast, err := geo.Haversine(destination, lastReal, geo.Kilometers, cfg.nodeAdditionCircuity)
		if err != nil {
			return GeoPathResult{}, err
		}
		offGraphFirst, err := geo.Haversine(origin, firstReal, geo.Kilometers, cfg.offGraphCircuity)
		if err != nil {
			return GeoPathResult{}, err
		}
		offGraphLast, err := geo.Haversine(destination, lastReal, geo.Kilometers, cfg.offGraphCircuity)
		if err != nil {
			return GeoPathResult{}, err
		}

		rawKm = rawKm - biasedFirst - biasedLast + offGraphFirst + offGraphLast
	}

	length, err := geo.ConvertDistance(rawKm, geo.Kilometers, cfg.outputUnits)
	if err != nil {
		return GeoPathResult{}, err
	}

	result := GeoPathResult{Length: length, Units: cfg.outputUnits}

	if cfg.outputPath && len(path.Path) >= 2 {
		result.NodePath = append([]int(nil), path.Path[1:len(path.Path)-1]...)
	}

	if cfg.outputCoordinatePath {
		coords := make([]geo.Coordinate, len(path.Path))
		for i, id := range path.Path {
			coords[i] = g.Coordinates[id]
		}
		result.CoordinatePath = antimeridianCoordinatePath(coords, cfg.antimeridianMode)
	}

	return result, nil
}

// getShortestPathCached answers a query from a cached single-source
// spanning tree instead of grafting synthetic nodes. Both endpoints snap
// directly onto their single nearest existing node (no mutation of g), so
// the tree's root is a stable node id that can be reused verbatim across
// calls sharing it — see spec §4.4.
func (g *GeoGraph) getShortestPathCached(origin, destination geo.Coordinate, cfg queryConfig) (GeoPathResult, error) {
	if cfg.nodeAdditionType != Closest && cfg.nodeAdditionType != KDClosest {
		return GeoPathResult{}, ErrCacheRequiresClosest
	}

	originID, originStubLength, err := g.nearestNodeStub(origin, cfg.nodeAdditionType, cfg.offGraphCircuity)
	if err != nil {
		return GeoPathResult{}, err
	}
	destinationID, destinationStubLength, err := g.nearestNodeStub(destination, cfg.nodeAdditionType, cfg.offGraphCircuity)
	if err != nil {
		return GeoPathResult{}, err
	}

	root := originID
	if cfg.cacheFor == CacheForDestination {
		root = destinationID
	}

	tree, ok := g.cache.get(g.version, cfg.algorithm, root)
	if !ok {
		computed, terr := graph.MakowskisSpanningTree(g.Graph, root)
		if terr != nil {
			return GeoPathResult{}, terr
		}
		g.cache.put(g.version, cfg.algorithm, root, computed)
		tree = computed
	}

	onGraphPath, err := graph.PathFromSpanningTree(tree, originID, destinationID)
	if err != nil {
		return GeoPathResult{}, err
	}

	totalKm := onGraphPath.Length + originStubLength + destinationStubLength
	length, err := geo.ConvertDistance(totalKm, geo.Kilometers, cfg.outputUnits)
	if err != nil {
		return GeoPathResult{}, err
	}

	result := GeoPathResult{Length: length, Units: cfg.outputUnits}

	if cfg.outputPath {
		result.NodePath = append([]int(nil), onGraphPath.Path...)
	}

	if cfg.outputCoordinatePath {
		coords := make([]geo.Coordinate, 0, len(onGraphPath.Path)+2)
		coords = append(coords, origin)
		for _, id := range onGraphPath.Path {
			coords = append(coords, g.Coordinates[id])
		}
		coords = append(coords, destination)
		result.CoordinatePath = antimeridianCoordinatePath(coords, cfg.antimeridianMode)
	}

	return result, nil
}

// nearestNodeStub returns the single nearest existing node to point and the
// circuity-scaled haversine distance to it, without mutating g. strategy is
// whichever single-candidate addition type the caller configured (Closest
// or KDClosest); both return exactly one candidate.
func (g *GeoGraph) nearestNodeStub(point geo.Coordinate, strategy NodeAdditionType, circuity float64) (int, float64, error) {
	candidates, err := candidateNodes(g, point, strategy)
	if err != nil {
		return 0, 0, err
	}
	id := candidates[0]

	length, err := geo.Haversine(point, g.Coordinates[id], geo.Kilometers, circuity)
	if err != nil {
		return 0, 0, err
	}

	return id, length, nil
}
