package gridgraph_test

import (
	"math"
	"testing"

	"github.com/halvard-ren/geopath/geograph"
	"github.com/halvard-ren/geopath/graph"
	"github.com/halvard-ren/geopath/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenGridStraightLine is grid reference scenario 1: a 20x20 open grid,
// origin (2,10), destination (18,10), straight horizontal line of 16
// cardinal steps.
func TestOpenGridStraightLine(t *testing.T) {
	g, err := gridgraph.NewGridGraph(20, 20, nil, false)
	require.NoError(t, err)

	result, err := g.ShortestPath(gridgraph.Cell{X: 2, Y: 10}, gridgraph.Cell{X: 18, Y: 10})
	require.NoError(t, err)
	assert.InDelta(t, 16, result.Length, 1e-9)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 10}, result.Path[0])
	assert.Equal(t, gridgraph.Cell{X: 18, Y: 10}, result.Path[len(result.Path)-1])
}

// TestBlockedColumnDetour is grid reference scenario 2: a 20x20 grid with a
// vertical wall at x=10 open only for y<5, forcing a detour that crosses
// near y=4.
func TestBlockedColumnDetour(t *testing.T) {
	var blocks []gridgraph.Cell
	for y := 5; y < 20; y++ {
		blocks = append(blocks, gridgraph.Cell{X: 10, Y: y})
	}

	g, err := gridgraph.NewGridGraph(20, 20, blocks, false)
	require.NoError(t, err)

	result, err := g.ShortestPath(gridgraph.Cell{X: 2, Y: 10}, gridgraph.Cell{X: 18, Y: 10})
	require.NoError(t, err)
	assert.InDelta(t, 20.9704, result.Length, 1e-3)

	crossedColumn10BelowWall := false
	for _, c := range result.Path {
		if c.X == 10 && c.Y < 5 {
			crossedColumn10BelowWall = true
		}
	}
	assert.True(t, crossedColumn10BelowWall, "path must cross the open part of the blocked column")
}

// TestExteriorWallsDiagonal is grid reference scenario 3: exterior walls
// only, diagonal traversal from (1,1) to (18,18) in a 20x20 grid, a pure
// 17-step diagonal run.
func TestExteriorWallsDiagonal(t *testing.T) {
	g, err := gridgraph.NewGridGraph(20, 20, nil, true)
	require.NoError(t, err)

	result, err := g.ShortestPath(gridgraph.Cell{X: 1, Y: 1}, gridgraph.Cell{X: 18, Y: 18})
	require.NoError(t, err)
	assert.InDelta(t, 17*math.Sqrt2, result.Length, 1e-9)
}

func TestExteriorWallsBlockBorder(t *testing.T) {
	g, err := gridgraph.NewGridGraph(5, 5, nil, true)
	require.NoError(t, err)

	assert.True(t, g.IsBlocked(gridgraph.Cell{X: 0, Y: 0}))
	assert.True(t, g.IsBlocked(gridgraph.Cell{X: 4, Y: 4}))
	assert.False(t, g.IsBlocked(gridgraph.Cell{X: 2, Y: 2}))
}

func TestNoSqueezeRule(t *testing.T) {
	// Block the two orthogonal neighbors of a diagonal step so the
	// diagonal edge across their shared corner must be omitted.
	blocks := []gridgraph.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}
	g, err := gridgraph.NewGridGraph(2, 2, blocks, false)
	require.NoError(t, err)

	_, err = g.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1})
	require.ErrorIs(t, err, graph.ErrUnreachable)
}

func TestShortestPathInvalidCell(t *testing.T) {
	g, err := gridgraph.NewGridGraph(5, 5, nil, false)
	require.NoError(t, err)

	_, err = g.ShortestPath(gridgraph.Cell{X: -1, Y: 0}, gridgraph.Cell{X: 1, Y: 1})
	require.ErrorIs(t, err, gridgraph.ErrInvalidCell)
}

func TestShortestPathAlgorithmsAgree(t *testing.T) {
	g, err := gridgraph.NewGridGraph(10, 10, nil, false)
	require.NoError(t, err)

	origin, destination := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 9, Y: 9}

	dijkstraResult, err := g.ShortestPath(origin, destination)
	require.NoError(t, err)
	aStarResult, err := g.ShortestPath(origin, destination, gridgraph.WithAlgorithm(geograph.AlgorithmAStar))
	require.NoError(t, err)

	assert.InDelta(t, dijkstraResult.Length, aStarResult.Length, 1e-9)
}

func TestNewGridGraphInvalidSize(t *testing.T) {
	_, err := gridgraph.NewGridGraph(0, 5, nil, false)
	require.ErrorIs(t, err, gridgraph.ErrInvalidSize)
}

// TestWithConnDataCardinalOnly checks that a caller-supplied conn_data
// restricted to the 4 cardinal offsets (per grid.py's conn_data kwarg)
// forces a strictly Manhattan path across an open grid, rather than the
// default 8-connected shortcut through the diagonal.
func TestWithConnDataCardinalOnly(t *testing.T) {
	cardinalOnly := []gridgraph.ConnOffset{
		{DX: 0, DY: -1, Distance: 1},
		{DX: 0, DY: 1, Distance: 1},
		{DX: 1, DY: 0, Distance: 1},
		{DX: -1, DY: 0, Distance: 1},
	}
	g, err := gridgraph.NewGridGraph(5, 5, nil, false, gridgraph.WithConnData(cardinalOnly))
	require.NoError(t, err)

	result, err := g.ShortestPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	assert.InDelta(t, 8, result.Length, 1e-9)
}

// TestWithConnDataMatchesDefaultOnOpenGrid checks that explicitly passing
// the documented default conn_data reproduces the built-in default's
// result, confirming WithConnData's table has the same shape grid.py ships.
func TestWithConnDataMatchesDefaultOnOpenGrid(t *testing.T) {
	explicit := []gridgraph.ConnOffset{
		{DX: 0, DY: -1, Distance: 1},
		{DX: 1, DY: -1, Distance: math.Sqrt2},
		{DX: 1, DY: 0, Distance: 1},
		{DX: 1, DY: 1, Distance: math.Sqrt2},
		{DX: 0, DY: 1, Distance: 1},
		{DX: -1, DY: 1, Distance: math.Sqrt2},
		{DX: -1, DY: 0, Distance: 1},
		{DX: -1, DY: -1, Distance: math.Sqrt2},
	}
	withDefault, err := gridgraph.NewGridGraph(10, 10, nil, false)
	require.NoError(t, err)
	withExplicit, err := gridgraph.NewGridGraph(10, 10, nil, false, gridgraph.WithConnData(explicit))
	require.NoError(t, err)

	origin, destination := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 9, Y: 9}
	a, err := withDefault.ShortestPath(origin, destination)
	require.NoError(t, err)
	b, err := withExplicit.ShortestPath(origin, destination)
	require.NoError(t, err)

	assert.InDelta(t, a.Length, b.Length, 1e-9)
}
