package geograph

import (
	"github.com/halvard-ren/geopath/geo"
	"github.com/halvard-ren/geopath/graph"
)

// GeoGraph pairs a graph.Graph with a coordinate for every node, so that
// queries can be phrased in latitude/longitude instead of node ids.
//
// version increments on every mutation (ModAddNode, ModAddArc, ModRemoveArc,
// ModRemoveNode) and is used to invalidate SpanningTreeCache entries.
type GeoGraph struct {
	Graph       *graph.Graph
	Coordinates []geo.Coordinate

	version int
	cache   *SpanningTreeCache

	kdtree        *geoKDTree
	kdtreeVersion int // version the cached kdtree was built at; -1 means none built yet
}

// NewGeoGraph builds a GeoGraph with one node per coordinate and no arcs.
// Arcs are added afterward with ModAddArc.
func NewGeoGraph(coordinates []geo.Coordinate) *GeoGraph {
	return &GeoGraph{
		Graph:         graph.NewGraph(len(coordinates)),
		Coordinates:   append([]geo.Coordinate(nil), coordinates...),
		cache:         NewSpanningTreeCache(),
		kdtreeVersion: -1,
	}
}

// kdTree returns a geoKDTree over the current Coordinates, rebuilding it
// only when the graph has mutated since the last build (tracked the same
// way SpanningTreeCache tracks staleness, via GeoGraph.version).
func (g *GeoGraph) kdTree() *geoKDTree {
	if g.kdtree == nil || g.kdtreeVersion != g.version {
		g.kdtree = newGeoKDTree(g.Coordinates)
		g.kdtreeVersion = g.version
	}

	return g.kdtree
}

// NodeAdditionType selects how GetShortestPath chooses candidate nodes to
// graft a query endpoint onto when the endpoint is not already a node.
type NodeAdditionType string

const (
	// Quadrant picks the nearest node in each of the four compass
	// quadrants (NE, NW, SE, SW) relative to the query point, so the
	// synthetic edge cannot be trivially beaten by a node that happens to
	// be close in only one direction.
	Quadrant NodeAdditionType = "quadrant"
	// Closest picks only the single nearest node.
	Closest NodeAdditionType = "closest"
	// All considers every node in the graph as a candidate. Use only on
	// small graphs; this is O(NodeCount) per query.
	All NodeAdditionType = "all"
	// KDClosest picks the single nearest node like Closest, but finds it
	// with a KD-tree nearest-neighbor search instead of a linear scan —
	// the default node_addition_type in the original this package is
	// grounded on. Prefer this over Closest on graphs large enough that an
	// O(NodeCount) scan per query matters.
	KDClosest NodeAdditionType = "kdclosest"
)

// Algorithm selects the point-to-point solver GetShortestPath uses.
type Algorithm string

const (
	// AlgorithmDijkstra uses graph.DijkstraMakowski.
	AlgorithmDijkstra Algorithm = "dijkstra"
	// AlgorithmAStar uses graph.AStar with a haversine-distance heuristic.
	AlgorithmAStar Algorithm = "a_star"
)

// AntimeridianMode selects how GetShortestPath's CoordinatePath handles a
// route crossing the ±180° longitude line.
type AntimeridianMode string

const (
	// AntimeridianInterpolate keeps CoordinatePath as a single continuous
	// segment, inserting one interpolated point at ±180° per crossing.
	AntimeridianInterpolate AntimeridianMode = "interpolate"
	// AntimeridianSplit breaks CoordinatePath into one segment per side of
	// the dateline, which is what most GeoJSON consumers expect instead of
	// a line drawn straight across the map.
	AntimeridianSplit AntimeridianMode = "split"
)

// CacheFor selects which snapped endpoint a cached query roots its
// spanning tree at.
type CacheFor string

const (
	// CacheForOrigin roots the cached spanning tree at the origin's
	// snapped node. This is the right choice when the same origin recurs
	// across many queries with varying destinations (e.g. one warehouse,
	// many customers).
	CacheForOrigin CacheFor = "origin"
	// CacheForDestination roots the cached spanning tree at the
	// destination's snapped node, for the mirror-image access pattern.
	CacheForDestination CacheFor = "destination"
)

// queryConfig accumulates the options applied by QueryOption functions. Its
// defaults mirror the defaults section of the options it backs.
type queryConfig struct {
	nodeAdditionType     NodeAdditionType
	nodeAdditionCircuity float64
	offGraphCircuity     float64
	algorithm            Algorithm
	outputUnits          geo.Unit
	outputCoordinatePath bool
	outputPath           bool
	useCache             bool
	cacheFor             CacheFor
	antimeridianMode     AntimeridianMode
}

func defaultQueryConfig() queryConfig {
	return queryConfig{
		nodeAdditionType:     Quadrant,
		nodeAdditionCircuity: 4,
		offGraphCircuity:     1,
		algorithm:            AlgorithmDijkstra,
		outputUnits:          geo.Kilometers,
		outputCoordinatePath: true,
		outputPath:           true,
		useCache:             false,
		cacheFor:             CacheForOrigin,
		antimeridianMode:     AntimeridianInterpolate,
	}
}

// QueryOption configures a single GetShortestPath call.
type QueryOption func(*queryConfig)

// WithNodeAdditionType overrides the default Quadrant candidate-selection
// strategy.
func WithNodeAdditionType(t NodeAdditionType) QueryOption {
	return func(c *queryConfig) { c.nodeAdditionType = t }
}

// WithNodeAdditionCircuity overrides the default circuity multiplier (4)
// applied to synthetic off-graph edges. This default is intentionally high:
// a straight line from an arbitrary point to the nearest graph node rarely
// reflects a real route, so off-graph hops are penalized relative to
// on-graph travel.
func WithNodeAdditionCircuity(circuity float64) QueryOption {
	return func(c *queryConfig) { c.nodeAdditionCircuity = circuity }
}

// WithAlgorithm overrides the default Dijkstra solver.
func WithAlgorithm(a Algorithm) QueryOption {
	return func(c *queryConfig) { c.algorithm = a }
}

// WithOutputUnits overrides the default kilometers output unit.
func WithOutputUnits(u geo.Unit) QueryOption {
	return func(c *queryConfig) { c.outputUnits = u }
}

// WithOutputCoordinatePath controls whether GeoPathResult.CoordinatePath is
// populated. Disabling it skips the antimeridian-aware coordinate
// reconstruction for callers that only need the length.
func WithOutputCoordinatePath(enabled bool) QueryOption {
	return func(c *queryConfig) { c.outputCoordinatePath = enabled }
}

// WithOutputPath controls whether GeoPathResult.NodePath is populated.
func WithOutputPath(enabled bool) QueryOption {
	return func(c *queryConfig) { c.outputPath = enabled }
}

// WithCache enables the spanning-tree cache. Caching requires
// WithNodeAdditionType(Closest) or WithNodeAdditionType(KDClosest) (the
// default is Quadrant): a cached query
// snaps directly onto the nearest existing node instead of grafting a
// synthetic one, so the cached spanning tree's root is a stable node id
// across calls. GetShortestPath returns ErrCacheRequiresClosest otherwise.
func WithCache(enabled bool) QueryOption {
	return func(c *queryConfig) { c.useCache = enabled }
}

// WithCacheFor selects which endpoint's snapped node roots the cached
// spanning tree (default CacheForOrigin). Pick whichever endpoint recurs
// across queries in the caller's access pattern.
func WithCacheFor(cacheFor CacheFor) QueryOption {
	return func(c *queryConfig) { c.cacheFor = cacheFor }
}

// WithOffGraphCircuity overrides the default circuity (1, i.e. no detour
// allowance) applied to the stub distance between a query endpoint and its
// snapped node(s) when computing the reported length. In cached mode this is
// the only circuity in play, since cached mode only ever has one candidate.
// In grafted mode, WithNodeAdditionCircuity still decides which candidate
// graft picks; this option only rescales the two stub edges once the path is
// already chosen, so raising it carries no "cheat route" risk.
func WithOffGraphCircuity(circuity float64) QueryOption {
	return func(c *queryConfig) { c.offGraphCircuity = circuity }
}

// WithAntimeridianMode overrides the default AntimeridianInterpolate
// handling of CoordinatePath for routes crossing the ±180° longitude line.
func WithAntimeridianMode(mode AntimeridianMode) QueryOption {
	return func(c *queryConfig) { c.antimeridianMode = mode }
}

// GeoPathResult is the outcome of GetShortestPath.
type GeoPathResult struct {
	// NodePath is the sequence of existing graph node ids traversed,
	// excluding any synthetic endpoint nodes (which are removed before
	// this result is returned).
	NodePath []int
	// CoordinatePath is the full point sequence from the original query
	// origin to the original query destination. A path crossing the
	// antimeridian is one segment with an interpolated ±180° point under
	// AntimeridianInterpolate (the default), or one segment per side of the
	// dateline under AntimeridianSplit.
	CoordinatePath [][]geo.Coordinate
	// Length is the total path length in Units.
	Length float64
	// Units is the unit Length is reported in.
	Units geo.Unit
}
