package projection

import (
	"sort"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// echoChamberPct is the largest-component share above which the projected
// graph is classified as an echo chamber. A design choice, not derived.
const echoChamberPct = 50.0

// clusteringExactLimit and clusteringSampleSize bound the clustering
// coefficient computation: components up to the limit are measured exactly,
// larger ones over the subgraph induced by a uniform node sample. The
// coefficient is unweighted; shared-post counts do not enter it.
const (
	clusteringExactLimit = 1000
	clusteringSampleSize = 500
)

// EchoChamberAnalysis aggregates component structure of a projected graph.
type EchoChamberAnalysis struct {
	NumNodes            int     `json:"n_nodes"`
	NumEdges            int     `json:"n_edges"`
	NumComponents       int     `json:"n_components"`
	LargestComponent    int     `json:"largest_component_size"`
	LargestComponentPct float64 `json:"largest_component_pct"`
	AvgComponentSize    float64 `json:"avg_component_size"`
	MedianComponentSize float64 `json:"median_component_size"`
	MeanSharedPosts     float64 `json:"mean_shared_posts"`
	MaxSharedPosts      int     `json:"max_shared_posts"`
	Clustering          float64 `json:"clustering"`
	ClusteringSampled   bool    `json:"clustering_sampled"`
	Density             float64 `json:"density"`
	Confirmed           bool    `json:"echo_chamber_confirmed"`
}

// AnalyzeEchoChamber computes connected components and aggregate statistics
// over the projected graph. A zero-node graph yields zero-valued metrics.
// src seeds the node sample used when the largest component is too big for
// an exact clustering computation.
func AnalyzeEchoChamber(g *Graph, src *randvar.Source) (EchoChamberAnalysis, [][]string, []string) {
	components := ConnectedComponents(g)

	var largest []string
	for _, c := range components {
		if len(c) > len(largest) {
			largest = c
		}
	}

	a := EchoChamberAnalysis{
		NumNodes:         g.NumNodes(),
		NumEdges:         g.NumEdges(),
		NumComponents:    len(components),
		LargestComponent: len(largest),
	}
	if a.NumNodes > 0 {
		a.LargestComponentPct = float64(len(largest)) / float64(a.NumNodes) * 100
	}
	if len(components) > 0 {
		sizes := make([]int, 0, len(components))
		total := 0
		for _, c := range components {
			sizes = append(sizes, len(c))
			total += len(c)
		}
		a.AvgComponentSize = float64(total) / float64(len(components))
		a.MedianComponentSize = median(sizes)
	}

	weights := g.EdgeWeights()
	if len(weights) > 0 {
		sum := 0
		for _, w := range weights {
			sum += w
			if w > a.MaxSharedPosts {
				a.MaxSharedPosts = w
			}
		}
		a.MeanSharedPosts = float64(sum) / float64(len(weights))
	}

	if a.NumNodes > 1 {
		a.Density = float64(a.NumEdges) / float64(a.NumNodes*(a.NumNodes-1)/2)
	}

	if len(largest) > 2 {
		sample := largest
		var within map[string]bool
		if len(largest) > clusteringExactLimit {
			sample = randvar.Sample(src, largest, clusteringSampleSize)
			within = make(map[string]bool, len(sample))
			for _, u := range sample {
				within[u] = true
			}
			a.ClusteringSampled = true
		}
		a.Clustering = averageClustering(g, sample, within)
	}

	a.Confirmed = a.LargestComponentPct > echoChamberPct
	return a, components, largest
}

// ConnectedComponents partitions the projected graph's nodes into
// components via BFS. Components and their members come back sorted, so the
// result is deterministic for a given graph.
func ConnectedComponents(g *Graph) [][]string {
	users := g.Users()
	visited := make(map[string]bool, len(users))
	var components [][]string

	for _, start := range users {
		if visited[start] {
			continue
		}
		var comp []string
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		components = append(components, comp)
	}
	return components
}

// averageClustering returns the mean local clustering coefficient over the
// given nodes. A non-nil within set restricts the computation to the induced
// subgraph over that set. Nodes with fewer than two (restricted) neighbors
// contribute zero.
func averageClustering(g *Graph, nodes []string, within map[string]bool) float64 {
	if len(nodes) == 0 {
		return 0
	}
	total := 0.0
	for _, u := range nodes {
		total += localClustering(g, u, within)
	}
	return total / float64(len(nodes))
}

func localClustering(g *Graph, u string, within map[string]bool) float64 {
	var neighbors []string
	for _, v := range g.Neighbors(u) {
		if within == nil || within[v] {
			neighbors = append(neighbors, v)
		}
	}
	k := len(neighbors)
	if k < 2 {
		return 0
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if _, ok := g.Weight(neighbors[i], neighbors[j]); ok {
				links++
			}
		}
	}
	return 2 * float64(links) / float64(k*(k-1))
}

// median returns the middle value of the sizes, averaging the central pair
// for even counts.
func median(sizes []int) float64 {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
