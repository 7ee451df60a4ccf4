// Package network builds the synthetic r/WallStreetBets interaction network:
// a scale-free directed backbone with injected high-influence hub accounts,
// plus the user-post engagement bipartite graph derived from it.
package network

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Kind tags a node as a designated influencer hub or a regular user.
type Kind int

const (
	KindRegular Kind = iota
	KindInfluencer
)

// String returns the attribute value used in exports.
func (k Kind) String() string {
	if k == KindInfluencer {
		return "influencer"
	}
	return "regular"
}

// User is a node in the interaction graph. It implements graph.Node so the
// backing gonum structure can be handed to centrality and community
// algorithms directly.
type User struct {
	id   int64
	Name string
	Kind Kind
}

// ID implements graph.Node.
func (u *User) ID() int64 { return u.id }

// InteractionGraph is the directed weighted "replied to" graph. Nodes are
// identified by user name; integer edge weights model interaction intensity.
// The graph is append-only during construction and read-only afterwards.
//
// All listing methods return deterministic orderings (creation order or
// sorted by name) so that sampling and matrix conversions are reproducible;
// gonum's map-backed iterators must never be used directly for sampling.
type InteractionGraph struct {
	g      *simple.WeightedDirectedGraph
	byName map[string]*User
	order  []string // creation order
	edges  int
}

// NewInteractionGraph creates an empty interaction graph.
func NewInteractionGraph() *InteractionGraph {
	return &InteractionGraph{
		g:      simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		byName: make(map[string]*User),
	}
}

// AddUser inserts a node. Adding an existing name is a no-op.
func (ig *InteractionGraph) AddUser(name string, kind Kind) {
	if _, ok := ig.byName[name]; ok {
		return
	}
	u := &User{id: int64(len(ig.order)), Name: name, Kind: kind}
	ig.g.AddNode(u)
	ig.byName[name] = u
	ig.order = append(ig.order, name)
}

// SetEdge adds or overwrites the directed edge from -> to. Self-loops are
// ignored. Both endpoints must already exist.
func (ig *InteractionGraph) SetEdge(from, to string, weight int) {
	if from == to {
		return
	}
	u, okU := ig.byName[from]
	v, okV := ig.byName[to]
	if !okU || !okV {
		return
	}
	if !ig.g.HasEdgeFromTo(u.id, v.id) {
		ig.edges++
	}
	ig.g.SetWeightedEdge(simple.WeightedEdge{F: u, T: v, W: float64(weight)})
}

// HasEdge reports whether the directed edge from -> to exists.
func (ig *InteractionGraph) HasEdge(from, to string) bool {
	u, okU := ig.byName[from]
	v, okV := ig.byName[to]
	return okU && okV && ig.g.HasEdgeFromTo(u.id, v.id)
}

// EdgeWeight returns the weight of the directed edge from -> to.
func (ig *InteractionGraph) EdgeWeight(from, to string) (int, bool) {
	u, okU := ig.byName[from]
	v, okV := ig.byName[to]
	if !okU || !okV {
		return 0, false
	}
	e := ig.g.WeightedEdge(u.id, v.id)
	if e == nil {
		return 0, false
	}
	return int(e.Weight()), true
}

// NumUsers returns the node count.
func (ig *InteractionGraph) NumUsers() int { return len(ig.order) }

// NumEdges returns the directed edge count.
func (ig *InteractionGraph) NumEdges() int { return ig.edges }

// Users returns all user names in creation order.
func (ig *InteractionGraph) Users() []string {
	out := make([]string, len(ig.order))
	copy(out, ig.order)
	return out
}

// SortedUsers returns all user names sorted lexicographically. Every
// graph-to-matrix conversion must index nodes through this ordering.
func (ig *InteractionGraph) SortedUsers() []string {
	out := ig.Users()
	sort.Strings(out)
	return out
}

// KindOf returns the kind of the named user.
func (ig *InteractionGraph) KindOf(name string) (Kind, bool) {
	u, ok := ig.byName[name]
	if !ok {
		return KindRegular, false
	}
	return u.Kind, true
}

// IsHub reports whether the named user is a designated influencer.
func (ig *InteractionGraph) IsHub(name string) bool {
	u, ok := ig.byName[name]
	return ok && u.Kind == KindInfluencer
}

// IDOf maps a user name to its gonum node ID.
func (ig *InteractionGraph) IDOf(name string) (int64, bool) {
	u, ok := ig.byName[name]
	if !ok {
		return 0, false
	}
	return u.id, true
}

// NameOf maps a gonum node ID back to the user name.
func (ig *InteractionGraph) NameOf(id int64) (string, bool) {
	if id < 0 || id >= int64(len(ig.order)) {
		return "", false
	}
	return ig.order[id], true
}

// Successors returns the names this user replied to, sorted.
func (ig *InteractionGraph) Successors(name string) []string {
	return ig.adjacent(name, false)
}

// Predecessors returns the names that replied to this user, sorted.
func (ig *InteractionGraph) Predecessors(name string) []string {
	return ig.adjacent(name, true)
}

func (ig *InteractionGraph) adjacent(name string, incoming bool) []string {
	u, ok := ig.byName[name]
	if !ok {
		return nil
	}
	var it graph.Nodes
	if incoming {
		it = ig.g.To(u.id)
	} else {
		it = ig.g.From(u.id)
	}
	var out []string
	for it.Next() {
		out = append(out, it.Node().(*User).Name)
	}
	sort.Strings(out)
	return out
}

// Neighborhood returns the union of predecessors and successors, sorted.
// Both reply-to and replied-by relations count as "observed" neighbors.
func (ig *InteractionGraph) Neighborhood(name string) []string {
	seen := make(map[string]struct{})
	for _, n := range ig.Predecessors(name) {
		seen[n] = struct{}{}
	}
	for _, n := range ig.Successors(name) {
		seen[n] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// InDegree returns the number of incoming edges.
func (ig *InteractionGraph) InDegree(name string) int {
	return len(ig.Predecessors(name))
}

// OutDegree returns the number of outgoing edges.
func (ig *InteractionGraph) OutDegree(name string) int {
	return len(ig.Successors(name))
}

// Degree returns the total number of incident edges (in + out).
func (ig *InteractionGraph) Degree(name string) int {
	return ig.InDegree(name) + ig.OutDegree(name)
}

// WeightedInDegree returns the summed weight of incoming edges.
func (ig *InteractionGraph) WeightedInDegree(name string) int {
	total := 0
	for _, p := range ig.Predecessors(name) {
		w, _ := ig.EdgeWeight(p, name)
		total += w
	}
	return total
}

// WeightedOutDegree returns the summed weight of outgoing edges.
func (ig *InteractionGraph) WeightedOutDegree(name string) int {
	total := 0
	for _, s := range ig.Successors(name) {
		w, _ := ig.EdgeWeight(name, s)
		total += w
	}
	return total
}

// Edge is a materialized directed weighted edge.
type Edge struct {
	From   string
	To     string
	Weight int
}

// Edges returns every directed edge ordered by (from, to) name. The ordering
// is stable across runs and is what the exporters rely on.
func (ig *InteractionGraph) Edges() []Edge {
	out := make([]Edge, 0, ig.edges)
	for _, from := range ig.SortedUsers() {
		for _, to := range ig.Successors(from) {
			w, _ := ig.EdgeWeight(from, to)
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	return out
}

// Directed exposes the backing gonum graph for centrality and path
// algorithms. Callers must treat it as read-only.
func (ig *InteractionGraph) Directed() *simple.WeightedDirectedGraph {
	return ig.g
}

// Undirected builds an undirected weighted view for community detection.
// Antiparallel edge pairs collapse to one edge carrying the summed weight.
func (ig *InteractionGraph) Undirected() *simple.WeightedUndirectedGraph {
	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, name := range ig.order {
		ug.AddNode(ig.byName[name])
	}
	for _, e := range ig.Edges() {
		u := ig.byName[e.From]
		v := ig.byName[e.To]
		w := float64(e.Weight)
		if existing := ug.WeightedEdge(u.id, v.id); existing != nil {
			w += existing.Weight()
		}
		ug.SetWeightedEdge(simple.WeightedEdge{F: u, T: v, W: w})
	}
	return ug
}
