package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// twoComponentGraph: a triangle {a,b,c} plus the pair {d,e} plus isolated f.
func twoComponentGraph() *Graph {
	g := newGraph([]string{"a", "b", "c", "d", "e", "f"})
	g.setEdge(0, 1, 2)
	g.setEdge(0, 2, 3)
	g.setEdge(1, 2, 2)
	g.setEdge(3, 4, 5)
	return g
}

func TestConnectedComponents(t *testing.T) {
	comps := ConnectedComponents(twoComponentGraph())
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"a", "b", "c"}, comps[0])
	assert.Equal(t, []string{"d", "e"}, comps[1])
	assert.Equal(t, []string{"f"}, comps[2])
}

func TestAnalyzeEchoChamber_Metrics(t *testing.T) {
	a, comps, largest := AnalyzeEchoChamber(twoComponentGraph(), randvar.New(1))

	assert.Equal(t, 6, a.NumNodes)
	assert.Equal(t, 4, a.NumEdges)
	assert.Equal(t, 3, a.NumComponents)
	assert.Len(t, comps, 3)
	assert.Equal(t, []string{"a", "b", "c"}, largest)
	assert.Equal(t, 3, a.LargestComponent)
	assert.InDelta(t, 50.0, a.LargestComponentPct, 1e-12)
	assert.InDelta(t, 2.0, a.AvgComponentSize, 1e-12)
	assert.InDelta(t, 2.0, a.MedianComponentSize, 1e-12, "component sizes 3, 2, 1")
	assert.InDelta(t, 3.0, a.MeanSharedPosts, 1e-12)
	assert.Equal(t, 5, a.MaxSharedPosts)
	assert.InDelta(t, 1.0, a.Clustering, 1e-12, "a triangle is fully clustered")
	assert.False(t, a.ClusteringSampled)

	// Exactly 50% does not confirm: the threshold is strict.
	assert.False(t, a.Confirmed)
}

func TestAnalyzeEchoChamber_ConfirmedAboveThreshold(t *testing.T) {
	g := newGraph([]string{"a", "b", "c", "d"})
	g.setEdge(0, 1, 1)
	g.setEdge(1, 2, 1)

	a, _, _ := AnalyzeEchoChamber(g, randvar.New(1))
	assert.InDelta(t, 75.0, a.LargestComponentPct, 1e-12)
	assert.InDelta(t, 2.0, a.MedianComponentSize, 1e-12, "sizes 3 and 1 average to 2")
	assert.True(t, a.Confirmed)
}

func TestAnalyzeEchoChamber_EmptyGraph(t *testing.T) {
	a, comps, largest := AnalyzeEchoChamber(newGraph(nil), randvar.New(1))

	assert.Zero(t, a.NumNodes)
	assert.Zero(t, a.LargestComponentPct, "empty graph defines the share as 0, not an error")
	assert.Empty(t, comps)
	assert.Empty(t, largest)
	assert.False(t, a.Confirmed)
}

func TestLocalClustering(t *testing.T) {
	g := twoComponentGraph()
	assert.Equal(t, 1.0, localClustering(g, "a", nil))
	assert.Equal(t, 0.0, localClustering(g, "d", nil), "degree-1 nodes contribute zero")
	assert.Equal(t, 0.0, localClustering(g, "f", nil))
}

func TestAverageClustering_InducedSubgraph(t *testing.T) {
	g := twoComponentGraph()

	// Restricting the triangle to {a, b} drops every node below two
	// neighbors, so the induced coefficient collapses to zero.
	within := map[string]bool{"a": true, "b": true}
	assert.Equal(t, 0.0, averageClustering(g, []string{"a", "b"}, within))
	assert.Equal(t, 1.0, averageClustering(g, []string{"a", "b", "c"}, nil))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, median([]int{3, 1, 2}))
	assert.Equal(t, 2.5, median([]int{1, 2, 3, 4}))
	assert.Equal(t, 7.0, median([]int{7}))
}
