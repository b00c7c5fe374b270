package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/halvard-ren/geopath/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds:
//
//	0 --1-- 1
//	|       |
//	4       2
//	|       |
//	3 --1-- 2
//
// so that 0->2 has two routes, 0->1->2 (length 3) and 0->3->2 (length 5),
// and the first is the unique shortest.
func square(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(4)
	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.AddArc(1, 2, 2))
	require.NoError(t, g.AddArc(2, 3, 1))
	require.NoError(t, g.AddArc(3, 0, 4))

	return g
}

func TestDijkstraMakowskiBasic(t *testing.T) {
	g := square(t)

	result, err := graph.DijkstraMakowski(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, result.Path)
	assert.InDelta(t, 3, result.Length, 1e-9)
}

func TestDijkstraMakowskiSameNode(t *testing.T) {
	g := square(t)

	result, err := graph.DijkstraMakowski(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, result.Path)
	assert.InDelta(t, 0, result.Length, 1e-9)
}

func TestDijkstraMakowskiUnreachable(t *testing.T) {
	g := graph.NewGraph(3)
	require.NoError(t, g.AddArc(0, 1, 1))

	_, err := graph.DijkstraMakowski(g, 0, 2)
	require.ErrorIs(t, err, graph.ErrUnreachable)
}

func TestDijkstraMakowskiInvalidNode(t *testing.T) {
	g := square(t)

	_, err := graph.DijkstraMakowski(g, 0, 99)
	require.ErrorIs(t, err, graph.ErrInvalidNode)
}

func TestDijkstraMakowskiSymmetric(t *testing.T) {
	g := square(t)

	forward, err := graph.DijkstraMakowski(g, 0, 3)
	require.NoError(t, err)
	backward, err := graph.DijkstraMakowski(g, 3, 0)
	require.NoError(t, err)

	assert.InDelta(t, forward.Length, backward.Length, 1e-9)
}

// TestDijkstraMakowskiMatchesBruteForce checks DijkstraMakowski against the
// dense brute-force Dijkstra on random sparse graphs, confirming both agree
// on shortest-path length for every reachable pair.
func TestDijkstraMakowskiMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(15)
		g := graph.NewGraph(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.3 {
					_ = g.AddArc(i, j, 1+rng.Float64()*10)
				}
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				fast, fastErr := graph.DijkstraMakowski(g, i, j)
				brute, bruteErr := graph.Dijkstra(g, i, j)
				if bruteErr != nil {
					require.ErrorIs(t, fastErr, graph.ErrUnreachable)
					continue
				}
				require.NoError(t, fastErr)
				assert.InDelta(t, brute.Length, fast.Length, 1e-9)
			}
		}
	}
}

func TestAStarMatchesDijkstraWithZeroHeuristic(t *testing.T) {
	g := square(t)
	zero := func(int) float64 { return 0 }

	dijkstraResult, err := graph.DijkstraMakowski(g, 0, 2)
	require.NoError(t, err)
	aStarResult, err := graph.AStar(g, 0, 2, zero)
	require.NoError(t, err)

	assert.InDelta(t, dijkstraResult.Length, aStarResult.Length, 1e-9)
}

func TestAStarAdmissibleHeuristicMatchesDijkstra(t *testing.T) {
	// A chain 0-1-2-3-4 with unit weights; an admissible heuristic is the
	// remaining hop count.
	g := graph.NewGraph(5)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddArc(i, i+1, 1))
	}
	heuristic := func(n int) float64 { return math.Abs(float64(4 - n)) }

	result, err := graph.AStar(g, 0, 4, heuristic)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.Path)
	assert.InDelta(t, 4, result.Length, 1e-9)
}

func TestSpanningTreeAgreesWithPointToPoint(t *testing.T) {
	g := square(t)

	tree, err := graph.MakowskisSpanningTree(g, 0)
	require.NoError(t, err)

	for destination := 0; destination < g.NodeCount(); destination++ {
		direct, directErr := graph.DijkstraMakowski(g, 0, destination)
		viaTree, treeErr := graph.PathFromSpanningTree(tree, 0, destination)
		require.NoError(t, directErr)
		require.NoError(t, treeErr)
		assert.InDelta(t, direct.Length, viaTree.Length, 1e-9)
	}
}

func TestSpanningTreeFromDestinationEnd(t *testing.T) {
	g := square(t)

	tree, err := graph.MakowskisSpanningTree(g, 2)
	require.NoError(t, err)

	result, err := graph.PathFromSpanningTree(tree, 0, 2)
	require.NoError(t, err)
	direct, err := graph.DijkstraMakowski(g, 0, 2)
	require.NoError(t, err)

	assert.InDelta(t, direct.Length, result.Length, 1e-9)
	assert.Equal(t, 0, result.Path[0])
	assert.Equal(t, 2, result.Path[len(result.Path)-1])
}

func TestPathFromSpanningTreeRootMismatch(t *testing.T) {
	g := square(t)
	tree, err := graph.MakowskisSpanningTree(g, 1)
	require.NoError(t, err)

	_, err = graph.PathFromSpanningTree(tree, 0, 2)
	require.ErrorIs(t, err, graph.ErrTreeRootMismatch)
}

// TestBMSSPMatchesReferenceSmokeTest reproduces the worked example from
// original_source/scgraph/bmssp.py's own __main__ smoke test: a 5-node
// chain-with-shortcuts graph whose distance matrix from node 0 is known.
func TestBMSSPMatchesReferenceSmokeTest(t *testing.T) {
	g := graph.NewGraph(5)
	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.AddArc(0, 2, 1))
	require.NoError(t, g.AddArc(1, 2, 1))
	require.NoError(t, g.AddArc(2, 3, 2))
	require.NoError(t, g.AddArc(3, 4, 1))

	tree, err := graph.BMSSP(g, 0)
	require.NoError(t, err)

	want := []float64{0, 1, 1, 3, 4}
	for i, w := range want {
		require.True(t, tree.Reached[i])
		assert.InDelta(t, w, tree.Distance[i], 1e-9)
	}
}

// TestBMSSPRejectsTooSmallGraph checks the ErrGraphTooSmall guard matching
// the reference implementation's own "more than 2 nodes" requirement.
func TestBMSSPRejectsTooSmallGraph(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.AddArc(0, 1, 1))

	_, err := graph.BMSSP(g, 0)
	require.ErrorIs(t, err, graph.ErrGraphTooSmall)
}

// TestPathFromSpanningTreeCorruptState checks the ErrCorruptState guard
// (spec §4.2.4): a SpanningTreeResult with a -1 predecessor reachable from
// a node other than its own root can never arise from MakowskisSpanningTree
// itself, but PathFromSpanningTree must still refuse to walk off the end of
// a malformed one instead of panicking on the resulting negative index.
func TestPathFromSpanningTreeCorruptState(t *testing.T) {
	g := square(t)
	tree, err := graph.MakowskisSpanningTree(g, 0)
	require.NoError(t, err)

	tree.Predecessor[2] = -1
	tree.Reached[2] = true

	_, err = graph.PathFromSpanningTree(tree, 0, 2)
	require.ErrorIs(t, err, graph.ErrCorruptState)
}
