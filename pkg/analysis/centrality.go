// Package analysis computes descriptive metrics over the interaction
// network: centrality profiles, structural scores with their textual
// interpretations, network value laws, and community structure.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	netpkg "github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

// Centralities is the per-node centrality profile. Every map is keyed by
// user name and computed independently. Closeness covers only the largest
// strongly connected component when the graph is not strongly connected.
type Centralities struct {
	InDegree          map[string]float64
	InDegreeWeighted  map[string]float64
	OutDegree         map[string]float64
	OutDegreeWeighted map[string]float64
	Betweenness       map[string]float64
	Closeness         map[string]float64
	DegreeCentrality  map[string]float64
}

// CalculateAll computes the full centrality profile. Betweenness is the
// weighted, normalized variant (edge weights act as distances); this is the
// heaviest computation in the pipeline, polynomial in nodes and edges.
func CalculateAll(g *netpkg.InteractionGraph) *Centralities {
	c := &Centralities{
		InDegree:          make(map[string]float64),
		InDegreeWeighted:  make(map[string]float64),
		OutDegree:         make(map[string]float64),
		OutDegreeWeighted: make(map[string]float64),
		DegreeCentrality:  make(map[string]float64),
	}

	users := g.SortedUsers()
	n := len(users)
	for _, u := range users {
		c.InDegree[u] = float64(g.InDegree(u))
		c.InDegreeWeighted[u] = float64(g.WeightedInDegree(u))
		c.OutDegree[u] = float64(g.OutDegree(u))
		c.OutDegreeWeighted[u] = float64(g.WeightedOutDegree(u))
		if n > 1 {
			c.DegreeCentrality[u] = float64(g.Degree(u)) / float64(n-1)
		}
	}

	c.Betweenness = betweenness(g)
	c.Closeness = closeness(g)
	return c
}

func betweenness(g *netpkg.InteractionGraph) map[string]float64 {
	out := make(map[string]float64, g.NumUsers())
	n := g.NumUsers()
	if n < 3 {
		for _, u := range g.SortedUsers() {
			out[u] = 0
		}
		return out
	}
	paths := path.DijkstraAllPaths(g.Directed())
	scores := network.BetweennessWeighted(g.Directed(), paths)
	norm := float64((n - 1) * (n - 2))
	for _, u := range g.SortedUsers() {
		out[u] = 0
	}
	for id, score := range scores {
		if name, ok := g.NameOf(id); ok {
			out[name] = score / norm
		}
	}
	return out
}

// closeness computes weighted closeness centrality. A directed graph that is
// not strongly connected has unreachable pairs, so the metric is restricted
// to the largest strongly connected component in that case.
func closeness(g *netpkg.InteractionGraph) map[string]float64 {
	members := netpkg.LargestStrongComponent(g)
	if len(members) == 0 {
		return map[string]float64{}
	}

	sub := subgraph(g, members)
	scores := network.Closeness(sub, path.DijkstraAllPaths(sub))

	out := make(map[string]float64, len(members))
	for id, score := range scores {
		if name, ok := g.NameOf(id); ok && !math.IsInf(score, 0) && !math.IsNaN(score) {
			out[name] = score
		}
	}
	return out
}

// subgraph builds the induced directed weighted subgraph over the given
// members, preserving node identities.
func subgraph(g *netpkg.InteractionGraph, members []string) *simple.WeightedDirectedGraph {
	in := make(map[string]bool, len(members))
	for _, m := range members {
		in[m] = true
	}
	sub := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	full := g.Directed()
	for _, m := range members {
		id, _ := g.IDOf(m)
		sub.AddNode(full.Node(id))
	}
	for _, e := range g.Edges() {
		if !in[e.From] || !in[e.To] {
			continue
		}
		fromID, _ := g.IDOf(e.From)
		toID, _ := g.IDOf(e.To)
		sub.SetWeightedEdge(full.WeightedEdge(fromID, toID).(simple.WeightedEdge))
	}
	return sub
}

// Ranked is one entry of a top-K centrality listing.
type Ranked struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// TopK returns the k highest-scoring users, ties broken by name.
func TopK(scores map[string]float64, k int) []Ranked {
	out := make([]Ranked, 0, len(scores))
	for name, score := range scores {
		out = append(out, Ranked{Name: name, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
