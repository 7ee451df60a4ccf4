package analysis

import (
	"sort"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/graph/community"

	netpkg "github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

// CommunityStats summarizes modularity-based community structure of the
// undirected view of the interaction graph.
type CommunityStats struct {
	NumCommunities int     `json:"n_communities"`
	LargestSize    int     `json:"largest_community_size"`
	SmallestSize   int     `json:"smallest_community_size"`
	AvgSize        float64 `json:"avg_community_size"`
	Sizes          []int   `json:"community_sizes"`
}

// DetectCommunities partitions the undirected view of the graph with
// modularity maximization at resolution 1. The seed controls the
// algorithm's internal move ordering so results reproduce.
func DetectCommunities(g *netpkg.InteractionGraph, seed int64) CommunityStats {
	if g.NumUsers() == 0 {
		return CommunityStats{}
	}

	reduced := community.Modularize(g.Undirected(), 1.0, rand.NewSource(uint64(seed)))
	communities := reduced.Communities()

	sizes := make([]int, 0, len(communities))
	for _, c := range communities {
		sizes = append(sizes, len(c))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	stats := CommunityStats{
		NumCommunities: len(sizes),
		Sizes:          sizes,
	}
	if len(sizes) > 0 {
		stats.LargestSize = sizes[0]
		stats.SmallestSize = sizes[len(sizes)-1]
		total := 0
		for _, s := range sizes {
			total += s
		}
		stats.AvgSize = float64(total) / float64(len(sizes))
	}
	return stats
}
