package geograph

import "github.com/halvard-ren/geopath/geo"

// quadrantOf reports which of the four compass quadrants node lies in
// relative to point: "ne", "nw", "se", or "sw". Ties (node exactly due
// north/south/east/west of point) fall to the east/north side, matching
// the reference implementation's half-open convention.
func quadrantOf(point, node geo.Coordinate) string {
	var ns, ew string
	if node.Lat-point.Lat >= 0 {
		ns = "n"
	} else {
		ns = "s"
	}
	if node.Lon-point.Lon >= 0 {
		ew = "e"
	} else {
		ew = "w"
	}

	return ns + ew
}

// candidateNodes returns the node ids GetShortestPath should try grafting
// point onto, per strategy. Quadrant, Closest, and All scan every node in
// the graph (O(NodeCount) per query); KDClosest instead queries a cached
// KD-tree (see kdtree.go) in O(log NodeCount), matching the spatial index
// the original this package is grounded on builds by default.
func candidateNodes(g *GeoGraph, point geo.Coordinate, strategy NodeAdditionType) ([]int, error) {
	if g.Graph.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	switch strategy {
	case KDClosest:
		best, ok := g.kdTree().closestIdx(latLonToXYZ(point, -1))
		if !ok {
			return nil, ErrNoCandidates
		}

		return []int{best}, nil

	case All:
		candidates := make([]int, g.Graph.NodeCount())
		for i := range candidates {
			candidates[i] = i
		}

		return candidates, nil

	case Closest:
		best, bestDist := -1, 0.0
		for id, coord := range g.Coordinates {
			d, err := geo.Haversine(point, coord, geo.Kilometers, 1)
			if err != nil {
				return nil, err
			}
			if best == -1 || d < bestDist {
				best, bestDist = id, d
			}
		}
		if best == -1 {
			return nil, ErrNoCandidates
		}

		return []int{best}, nil

	case Quadrant:
		bestByQuadrant := make(map[string]int)
		bestDistByQuadrant := make(map[string]float64)
		for id, coord := range g.Coordinates {
			q := quadrantOf(point, coord)
			d, err := geo.Haversine(point, coord, geo.Kilometers, 1)
			if err != nil {
				return nil, err
			}
			if current, ok := bestDistByQuadrant[q]; !ok || d < current {
				bestByQuadrant[q] = id
				bestDistByQuadrant[q] = d
			}
		}
		if len(bestByQuadrant) == 0 {
			return nil, ErrNoCandidates
		}
		candidates := make([]int, 0, len(bestByQuadrant))
		for _, id := range bestByQuadrant {
			candidates = append(candidates, id)
		}

		return candidates, nil

	default:
		return nil, ErrUnknownNodeAdditionType
	}
}
