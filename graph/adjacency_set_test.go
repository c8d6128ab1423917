package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SamAstro/gograph/graph"
)

// TestAdjacencySet_RejectsSelfLoop verifies the simple-graph invariant:
// an edge with identical endpoints fails with ErrSelfLoop and mutates nothing.
func TestAdjacencySet_RejectsSelfLoop(t *testing.T) {
	g, err := graph.NewAdjacencySet(4)
	require.NoError(t, err)

	err = g.AddEdge(2, 2, 1)
	require.ErrorIs(t, err, graph.ErrSelfLoop)

	adjacent, err := g.AdjacentVertices(2)
	require.NoError(t, err)
	require.Empty(t, adjacent)
}

// TestAdjacencySet_RejectsWeights verifies that only weight 1 is accepted.
func TestAdjacencySet_RejectsWeights(t *testing.T) {
	g, err := graph.NewAdjacencySet(4)
	require.NoError(t, err)

	for _, weight := range []int64{0, 2, -1, 43} {
		if err = g.AddEdge(0, 1, weight); !errors.Is(err, graph.ErrBadWeight) {
			t.Errorf("AddEdge(0,1,%d) error = %v; want ErrBadWeight", weight, err)
		}
	}

	require.NoError(t, g.AddEdge(0, 1, 1))
}

// TestAdjacencySet_SortedAdjacency verifies sort-on-read: insertion order
// never leaks into AdjacentVertices.
func TestAdjacencySet_SortedAdjacency(t *testing.T) {
	g, err := graph.NewAdjacencySet(6, graph.WithDirected(true))
	require.NoError(t, err)

	for _, to := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, g.AddEdge(0, to, 1))
	}

	adjacent, err := g.AdjacentVertices(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, adjacent)
}

// TestAdjacencySet_EdgeWeight verifies the presence model: weight 1 for an
// existing edge, 0 for an absent one, bounds checked like every other query.
func TestAdjacencySet_EdgeWeight(t *testing.T) {
	g, err := graph.NewAdjacencySet(3, graph.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	weight, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), weight)

	weight, err = g.EdgeWeight(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), weight, "reverse edge absent in directed graph")

	_, err = g.EdgeWeight(0, 3)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

// TestAdjacencySet_Clone verifies deep-copy independence.
func TestAdjacencySet_Clone(t *testing.T) {
	g, err := graph.NewAdjacencySet(4, graph.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	clone := g.Clone()
	require.Equal(t, g.VertexCount(), clone.VertexCount())
	require.Equal(t, g.Directed(), clone.Directed())
	require.Equal(t, []int{1}, mustAdjacent(t, clone, 0))

	require.NoError(t, clone.AddEdge(0, 2, 1))
	require.Equal(t, []int{1}, mustAdjacent(t, g, 0), "original must not see clone's edge")
	require.Equal(t, []int{1, 2}, mustAdjacent(t, clone, 0))
}
