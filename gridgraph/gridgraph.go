package gridgraph

import (
	"github.com/halvard-ren/geopath/geo"
	"github.com/halvard-ren/geopath/geograph"
)

// NewGridGraph builds a GridGraph over xSize columns and ySize rows,
// connected by connData (8-directional by default — see WithConnData).
// blocks lists cells with no incident edges at all (as if they did not
// exist); if addExteriorWalls is true, every border cell is blocked too,
// regardless of whether it also appears in blocks.
//
// A diagonal edge (one with both DX and DY non-zero) between two open cells
// is omitted if either of the two cells sharing an orthogonal edge with
// both endpoints is blocked — the "no-squeeze" rule — since a diagonal step
// would otherwise cut through the corner of two blocked cells that,
// orthogonally, form a wall. grid.py additionally supports a multi-cell
// moving shape footprint for the same check (ShapeMoverUtils); this module
// only ever routes a single point through the grid, so that footprint
// geometry has no caller to exercise and is not ported — see DESIGN.md.
func NewGridGraph(xSize, ySize int, blocks []Cell, addExteriorWalls bool, opts ...GridOption) (*GridGraph, error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, ErrInvalidSize
	}

	cfg := defaultGridConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	blocked := make(map[Cell]bool, len(blocks))
	for _, c := range blocks {
		blocked[c] = true
	}
	if addExteriorWalls {
		for x := 0; x < xSize; x++ {
			blocked[Cell{X: x, Y: 0}] = true
			blocked[Cell{X: x, Y: ySize - 1}] = true
		}
		for y := 0; y < ySize; y++ {
			blocked[Cell{X: 0, Y: y}] = true
			blocked[Cell{X: xSize - 1, Y: y}] = true
		}
	}

	coordinates := make([]geo.Coordinate, xSize*ySize)
	for y := 0; y < ySize; y++ {
		for x := 0; x < xSize; x++ {
			coordinates[y*xSize+x] = geo.Coordinate{Lat: float64(y), Lon: float64(x)}
		}
	}

	g := &GridGraph{
		GeoGraph: geograph.NewGeoGraph(coordinates),
		XSize:    xSize,
		YSize:    ySize,
		blocked:  blocked,
		connData: cfg.connData,
	}

	if err := g.build(); err != nil {
		return nil, err
	}

	return g, nil
}

// build wires every open cell to its open neighbors per the grid's
// connection table (8-connected by default), honoring
// the no-squeeze rule for diagonal moves. Each undirected edge is added
// once, from the lower-id endpoint, since graph.Graph.AddArc rejects a
// duplicate attempt from the higher-id side.
func (g *GridGraph) build() error {
	for y := 0; y < g.YSize; y++ {
		for x := 0; x < g.XSize; x++ {
			origin := Cell{X: x, Y: y}
			if g.blocked[origin] {
				continue
			}
			originID := g.indexOf(origin)

			for _, offset := range g.connData {
				neighbor := Cell{X: x + offset.DX, Y: y + offset.DY}
				if !g.inBounds(neighbor) || g.blocked[neighbor] {
					continue
				}
				neighborID := g.indexOf(neighbor)
				if neighborID <= originID {
					continue
				}
				if offset.diagonal() {
					orthogonalA := Cell{X: x + offset.DX, Y: y}
					orthogonalB := Cell{X: x, Y: y + offset.DY}
					if g.blocked[orthogonalA] || g.blocked[orthogonalB] {
						continue
					}
				}

				if err := g.Graph.AddArc(originID, neighborID, offset.Distance); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// indexOf maps a cell to its node id: y*XSize + x.
func (g *GridGraph) indexOf(c Cell) int {
	return c.Y*g.XSize + c.X
}

// cellAt maps a node id back to its cell.
func (g *GridGraph) cellAt(id int) Cell {
	return Cell{X: id % g.XSize, Y: id / g.XSize}
}

// inBounds reports whether c lies within [0,XSize)×[0,YSize).
func (g *GridGraph) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.XSize && c.Y >= 0 && c.Y < g.YSize
}

// IsBlocked reports whether c has no incident edges, either because it was
// passed to blocks or because addExteriorWalls blocked the border.
func (g *GridGraph) IsBlocked(c Cell) bool {
	return g.blocked[c]
}

// NodeID returns the node id for a cell in bounds.
func (g *GridGraph) NodeID(c Cell) (int, error) {
	if !g.inBounds(c) {
		return 0, ErrInvalidCell
	}

	return g.indexOf(c), nil
}
