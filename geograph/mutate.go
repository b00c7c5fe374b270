package geograph

import (
	"github.com/halvard-ren/geopath/geo"
	"github.com/halvard-ren/geopath/graph"
)

// ModAddNode appends a new node at coordinate and returns its id. It bumps
// the graph version, invalidating every SpanningTreeCache entry keyed to
// the previous version.
func (g *GeoGraph) ModAddNode(coordinate geo.Coordinate) int {
	id := g.Graph.AddNode()
	g.Coordinates = append(g.Coordinates, coordinate)
	g.version++

	return id
}

// ArcOption configures a single ModAddArc call.
type ArcOption func(*arcConfig)

type arcConfig struct {
	weight    *float64
	overwrite bool
}

// WithArcWeight supplies an explicit arc weight instead of the haversine
// distance ModAddArc computes by default, per spec §4.3.4's "compute weight
// via haversine if omitted".
func WithArcWeight(weight float64) ArcOption {
	return func(c *arcConfig) { c.weight = &weight }
}

// WithArcOverwrite allows ModAddArc to replace an already-existing arc's
// weight instead of returning graph.ErrDuplicateArc.
func WithArcOverwrite(overwrite bool) ArcOption {
	return func(c *arcConfig) { c.overwrite = overwrite }
}

// ModAddArc adds an undirected arc u-v. With no options, the weight is the
// haversine distance between u and v's coordinates scaled by circuity (1
// for a direct route with no detour allowance); WithArcWeight overrides
// that with an explicit value. An already-existing arc is an error unless
// WithArcOverwrite(true) is given. It bumps the graph version.
func (g *GeoGraph) ModAddArc(u, v int, circuity float64, opts ...ArcOption) error {
	if !g.Graph.HasNode(u) || !g.Graph.HasNode(v) {
		return graph.ErrInvalidNode
	}

	cfg := arcConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	weight := 0.0
	if cfg.weight != nil {
		weight = *cfg.weight
	} else {
		computed, err := geo.Haversine(g.Coordinates[u], g.Coordinates[v], geo.Kilometers, circuity)
		if err != nil {
			return err
		}
		weight = computed
	}

	if cfg.overwrite {
		_ = g.Graph.RemoveArc(u, v) // no-op if the arc doesn't exist yet
	}
	if err := g.Graph.AddArc(u, v, weight); err != nil {
		return err
	}
	g.version++

	return nil
}

// ModRemoveArc removes the undirected arc u-v. It bumps the graph version.
func (g *GeoGraph) ModRemoveArc(u, v int) error {
	if err := g.Graph.RemoveArc(u, v); err != nil {
		return err
	}
	g.version++

	return nil
}

// ModRemoveNode removes node id and its coordinate, renumbering remaining
// nodes to keep ids contiguous. As in graph.Graph.RemoveNode, removing the
// highest-numbered node is a fast path that needs no renumbering; this
// matters here too, since Coordinates must stay in lockstep with node ids.
// It bumps the graph version.
func (g *GeoGraph) ModRemoveNode(id int) error {
	if err := g.Graph.RemoveNode(id); err != nil {
		return err
	}

	last := len(g.Coordinates) - 1
	if id == last {
		g.Coordinates = g.Coordinates[:last]
	} else {
		g.Coordinates = append(g.Coordinates[:id], g.Coordinates[id+1:]...)
	}
	g.version++

	return nil
}

// Version returns the current mutation epoch, incremented by every Mod*
// call. Callers building their own caching on top of GeoGraph can use it
// the same way SpanningTreeCache does.
func (g *GeoGraph) Version() int {
	return g.version
}
