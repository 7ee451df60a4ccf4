package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGraph() *InteractionGraph {
	g := NewInteractionGraph()
	g.AddUser("hub", KindInfluencer)
	g.AddUser("a", KindRegular)
	g.AddUser("b", KindRegular)
	g.AddUser("c", KindRegular)
	g.SetEdge("a", "hub", 10)
	g.SetEdge("b", "hub", 5)
	g.SetEdge("hub", "a", 2)
	g.SetEdge("b", "c", 1)
	return g
}

func TestInteractionGraph_Basics(t *testing.T) {
	g := smallGraph()

	assert.Equal(t, 4, g.NumUsers())
	assert.Equal(t, 4, g.NumEdges())
	assert.True(t, g.IsHub("hub"))
	assert.False(t, g.IsHub("a"))

	w, ok := g.EdgeWeight("a", "hub")
	require.True(t, ok)
	assert.Equal(t, 10, w)
	_, ok = g.EdgeWeight("hub", "b")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, g.Predecessors("hub"))
	assert.Equal(t, []string{"a"}, g.Successors("hub"))
	assert.Equal(t, []string{"a", "b"}, g.Neighborhood("hub"))

	assert.Equal(t, 2, g.InDegree("hub"))
	assert.Equal(t, 1, g.OutDegree("hub"))
	assert.Equal(t, 15, g.WeightedInDegree("hub"))
	assert.Equal(t, 2, g.WeightedOutDegree("b"))
}

func TestInteractionGraph_SetEdgeOverwrites(t *testing.T) {
	g := smallGraph()
	g.SetEdge("a", "hub", 99)
	assert.Equal(t, 4, g.NumEdges(), "overwriting must not change edge count")
	w, _ := g.EdgeWeight("a", "hub")
	assert.Equal(t, 99, w)
}

func TestInteractionGraph_IgnoresSelfLoops(t *testing.T) {
	g := smallGraph()
	g.SetEdge("a", "a", 3)
	assert.Equal(t, 4, g.NumEdges())
}

func TestInteractionGraph_Orderings(t *testing.T) {
	g := smallGraph()
	assert.Equal(t, []string{"hub", "a", "b", "c"}, g.Users(), "creation order")
	assert.Equal(t, []string{"a", "b", "c", "hub"}, g.SortedUsers())

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, Edge{From: "a", To: "hub", Weight: 10}, edges[0])
}

func TestInteractionGraph_Undirected(t *testing.T) {
	g := smallGraph()
	ug := g.Undirected()

	assert.Equal(t, 4, ug.Nodes().Len())
	aID, _ := g.IDOf("a")
	hubID, _ := g.IDOf("hub")
	e := ug.WeightedEdge(aID, hubID)
	require.NotNil(t, e)
	assert.Equal(t, 12.0, e.Weight(), "antiparallel pair collapses to summed weight")
}
