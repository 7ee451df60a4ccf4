package network

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
)

// Stats summarizes the structure of an interaction graph.
type Stats struct {
	NumNodes            int     `json:"n_nodes"`
	NumEdges            int     `json:"n_edges"`
	Density             float64 `json:"density"`
	IsStronglyConnected bool    `json:"is_strongly_connected"`
	IsWeaklyConnected   bool    `json:"is_weakly_connected"`
	LargestSCCSize      int     `json:"largest_scc_size"`
	LargestSCCPct       float64 `json:"largest_scc_pct"`
	LargestWCCSize      int     `json:"largest_wcc_size"`
	LargestWCCPct       float64 `json:"largest_wcc_pct"`
}

// ComputeStats returns basic structural statistics. Degenerate graphs
// (zero nodes or a single node) yield zero-valued metrics, not errors.
func ComputeStats(g *InteractionGraph) Stats {
	s := Stats{
		NumNodes: g.NumUsers(),
		NumEdges: g.NumEdges(),
	}
	if s.NumNodes == 0 {
		return s
	}
	if s.NumNodes > 1 {
		s.Density = float64(s.NumEdges) / float64(s.NumNodes*(s.NumNodes-1))
	}

	s.LargestWCCSize = largestWeakComponent(g)
	s.IsWeaklyConnected = s.LargestWCCSize == s.NumNodes
	s.LargestWCCPct = float64(s.LargestWCCSize) / float64(s.NumNodes) * 100

	s.LargestSCCSize = len(LargestStrongComponent(g))
	s.IsStronglyConnected = s.LargestSCCSize == s.NumNodes
	s.LargestSCCPct = float64(s.LargestSCCSize) / float64(s.NumNodes) * 100

	return s
}

// IsWeaklyConnected reports whether every node is reachable from every
// other when edge direction is ignored.
func IsWeaklyConnected(g *InteractionGraph) bool {
	if g.NumUsers() == 0 {
		return false
	}
	return largestWeakComponent(g) == g.NumUsers()
}

// largestWeakComponent sizes the largest component of the undirected view
// using union-find over the edge list.
func largestWeakComponent(g *InteractionGraph) int {
	users := g.SortedUsers()
	index := make(map[string]int, len(users))
	for i, u := range users {
		index[u] = i
	}
	parent := make([]int, len(users))
	size := make([]int, len(users))
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if size[ra] < size[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		size[ra] += size[rb]
	}
	for _, e := range g.Edges() {
		union(index[e.From], index[e.To])
	}
	largest := 0
	for i := range parent {
		if find(i) == i && size[i] > largest {
			largest = size[i]
		}
	}
	return largest
}

// LargestStrongComponent returns the node names of the largest strongly
// connected component, sorted.
func LargestStrongComponent(g *InteractionGraph) []string {
	if g.NumUsers() == 0 {
		return nil
	}
	var best []string
	for _, scc := range topo.TarjanSCC(g.Directed()) {
		if len(scc) <= len(best) {
			continue
		}
		names := make([]string, 0, len(scc))
		for _, n := range scc {
			names = append(names, n.(*User).Name)
		}
		best = names
	}
	sort.Strings(best)
	return best
}
