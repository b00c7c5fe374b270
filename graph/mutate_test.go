package graph_test

import (
	"testing"

	"github.com/halvard-ren/geopath/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddArcRejectsSelfLoop(t *testing.T) {
	g := graph.NewGraph(2)
	err := g.AddArc(0, 0, 1)
	require.ErrorIs(t, err, graph.ErrInvalidGraph)
}

func TestAddArcRejectsNegativeWeight(t *testing.T) {
	g := graph.NewGraph(2)
	err := g.AddArc(0, 1, -1)
	require.ErrorIs(t, err, graph.ErrInvalidGraph)
}

func TestAddArcRejectsDuplicate(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.AddArc(0, 1, 1))
	err := g.AddArc(0, 1, 2)
	require.ErrorIs(t, err, graph.ErrDuplicateArc)
}

func TestAddArcIsSymmetric(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.AddArc(0, 1, 5))

	w, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.InDelta(t, 5, w, 1e-9)
}

func TestRemoveArc(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.RemoveArc(0, 1))

	_, ok := g.Weight(0, 1)
	assert.False(t, ok)

	err := g.RemoveArc(0, 1)
	require.ErrorIs(t, err, graph.ErrMissingArc)
}

func TestAddNode(t *testing.T) {
	g := graph.NewGraph(1)
	id := g.AddNode()
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, g.NodeCount())
}

func TestRemoveNodeLastIndexFastPath(t *testing.T) {
	g := graph.NewGraph(3)
	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.AddArc(1, 2, 1))

	require.NoError(t, g.RemoveNode(2))
	assert.Equal(t, 2, g.NodeCount())
	_, ok := g.Weight(1, 2)
	assert.False(t, ok)
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, w, 1e-9)
}

func TestRemoveNodeRenumbers(t *testing.T) {
	g := graph.NewGraph(4)
	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.AddArc(1, 2, 1))
	require.NoError(t, g.AddArc(2, 3, 1))

	require.NoError(t, g.RemoveNode(1))
	require.NoError(t, g.Validate())
	assert.Equal(t, 3, g.NodeCount())
	// old node 2 is now node 1, old node 3 is now node 2, and the 1-2 edge
	// (old 2-3) should survive the renumbering.
	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 1, w, 1e-9)
	// old node 0's edge to the removed node must be gone, leaving 0 isolated.
	neighbors, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
}

func TestValidateAcceptsWellFormedGraph(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.Validate())

	require.NoError(t, g.AddArc(0, 1, 1))
	require.NoError(t, g.Validate())
}
