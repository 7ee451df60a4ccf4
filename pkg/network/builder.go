package network

import (
	"fmt"
	"sort"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// BuilderConfig holds the tuning parameters of the scale-free construction.
// Weight ranges are half-open [min, max). The defaults were calibrated
// against the observed r/WallStreetBets interaction patterns and are
// deliberately configurable rather than derived.
type BuilderConfig struct {
	// AttachmentM is the Barabasi-Albert attachment parameter: each new
	// backbone node attaches to this many existing nodes.
	AttachmentM int

	// MinWeight and MaxWeightRegular bound weights on backbone edges.
	MinWeight        int
	MaxWeightRegular int

	// ReplyProbability is the chance a backbone edge gets a reverse edge.
	ReplyProbability float64

	// CatalystConnections is the fixed connection count of the first hub.
	CatalystConnections int

	// HubMinConnections and HubMaxConnections bound the connection counts
	// drawn for the remaining hubs.
	HubMinConnections int
	HubMaxConnections int

	// PreferentialRatio is the fraction of hub targets drawn from the
	// current top-degree nodes; the rest are drawn uniformly.
	PreferentialRatio float64

	// TopDegreePool is the size of the high-degree candidate pool.
	TopDegreePool int

	// MaxWeightToHub bounds the weight of target -> hub reply edges.
	MaxWeightToHub int

	// HubReplyProbability is the chance a hub replies back to a target,
	// with a weight in [MinWeightFromHub, MaxWeightFromHub).
	HubReplyProbability float64
	MinWeightFromHub    int
	MaxWeightFromHub    int

	// HubLinkProbability is the chance an unordered hub pair is connected
	// bidirectionally, each direction weighted in
	// [HubLinkMinWeight, HubLinkMaxWeight).
	HubLinkProbability float64
	HubLinkMinWeight   int
	HubLinkMaxWeight   int
}

// DefaultBuilderConfig returns the documented defaults.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		AttachmentM:         3,
		MinWeight:           1,
		MaxWeightRegular:    20,
		ReplyProbability:    0.7,
		CatalystConnections: 300,
		HubMinConnections:   50,
		HubMaxConnections:   200,
		PreferentialRatio:   0.7,
		TopDegreePool:       100,
		MaxWeightToHub:      50,
		HubReplyProbability: 0.3,
		MinWeightFromHub:    1,
		MaxWeightFromHub:    10,
		HubLinkProbability:  0.7,
		HubLinkMinWeight:    3,
		HubLinkMaxWeight:    25,
	}
}

// Builder constructs scale-free interaction graphs.
type Builder struct {
	cfg BuilderConfig
}

// NewBuilder creates a Builder with the given configuration.
func NewBuilder(cfg BuilderConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build generates the directed weighted interaction graph: a preferential-
// attachment backbone of regular users, injected hub nodes wired with extra
// preferential edges, and pairwise hub interconnections. For a fixed
// (nUsers, hubNames, seed of src) the result is identical across calls.
//
// Weak connectivity holds in the expected case but is not guaranteed by the
// construction; callers that need certainty should check IsWeaklyConnected
// on the result.
func (b *Builder) Build(nUsers int, hubNames []string, src *randvar.Source) (*InteractionGraph, error) {
	nRegular := nUsers - len(hubNames)
	if nRegular <= 0 {
		return nil, fmt.Errorf("%w: n_users=%d hubs=%d", ErrTooFewUsers, nUsers, len(hubNames))
	}
	if b.cfg.AttachmentM < 1 || b.cfg.AttachmentM >= nRegular {
		return nil, fmt.Errorf("%w: m=%d regular nodes=%d", ErrInvalidAttachment, b.cfg.AttachmentM, nRegular)
	}

	g := NewInteractionGraph()
	for _, hub := range hubNames {
		g.AddUser(hub, KindInfluencer)
	}
	regulars := make([]string, nRegular)
	for i := range regulars {
		regulars[i] = fmt.Sprintf("user_%04d", i)
		g.AddUser(regulars[i], KindRegular)
	}

	b.buildBackbone(g, regulars, src)
	b.connectHubs(g, hubNames, regulars, src)
	b.interconnectHubs(g, hubNames, src)

	return g, nil
}

// buildBackbone lays the Barabasi-Albert edges over the regular users and
// converts each undirected attachment into one or two directed weighted
// edges.
func (b *Builder) buildBackbone(g *InteractionGraph, regulars []string, src *randvar.Source) {
	for _, e := range preferentialAttachment(len(regulars), b.cfg.AttachmentM, src) {
		u, v := regulars[e[0]], regulars[e[1]]
		g.SetEdge(u, v, src.IntRange(b.cfg.MinWeight, b.cfg.MaxWeightRegular))
		if src.Bernoulli(b.cfg.ReplyProbability) {
			g.SetEdge(v, u, src.IntRange(b.cfg.MinWeight, b.cfg.MaxWeightRegular-5))
		}
	}
}

// preferentialAttachment returns the edge list of a Barabasi-Albert graph
// over nodes 0..n-1 using the repeated-nodes scheme: attachment probability
// is proportional to current degree. Requires 1 <= m < n (validated by the
// caller).
func preferentialAttachment(n, m int, src *randvar.Source) [][2]int {
	edges := make([][2]int, 0, (n-m)*m)
	// Every endpoint of every edge appears once in repeated, so drawing
	// uniformly from it is degree-proportional sampling.
	repeated := make([]int, 0, 2*(n-m)*m)

	targets := make([]int, m)
	for i := range targets {
		targets[i] = i
	}
	for v := m; v < n; v++ {
		for _, t := range targets {
			edges = append(edges, [2]int{v, t})
			repeated = append(repeated, v, t)
		}
		targets = distinctDraw(repeated, m, src)
	}
	return edges
}

// distinctDraw samples m distinct values from the repeated-nodes list.
func distinctDraw(repeated []int, m int, src *randvar.Source) []int {
	seen := make(map[int]struct{}, m)
	out := make([]int, 0, m)
	for len(out) < m {
		c := repeated[src.IntRange(0, len(repeated))]
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// connectHubs wires every hub into the backbone. A configured fraction of
// each hub's targets comes from the current top-degree regular nodes, the
// remainder uniformly from the rest. Edges point target -> hub (replies and
// mentions flow toward the influencer); the hub replies back with the lower
// configured probability and weight range.
func (b *Builder) connectHubs(g *InteractionGraph, hubNames, regulars []string, src *randvar.Source) {
	topPool := topByDegree(g, regulars, b.cfg.TopDegreePool)

	for i, hub := range hubNames {
		n := b.cfg.CatalystConnections
		if i != 0 {
			n = src.IntRange(b.cfg.HubMinConnections, b.cfg.HubMaxConnections)
		}
		nPref := int(float64(n) * b.cfg.PreferentialRatio)
		nRand := n - nPref

		prefTargets := randvar.Sample(src, topPool, nPref)
		chosen := make(map[string]struct{}, len(prefTargets))
		for _, t := range prefTargets {
			chosen[t] = struct{}{}
		}
		randPool := make([]string, 0, len(regulars))
		for _, u := range regulars {
			if _, ok := chosen[u]; !ok {
				randPool = append(randPool, u)
			}
		}
		targets := append(prefTargets, randvar.Sample(src, randPool, nRand)...)

		for _, target := range targets {
			g.SetEdge(target, hub, src.IntRange(b.cfg.MinWeight, b.cfg.MaxWeightToHub))
			if src.Bernoulli(b.cfg.HubReplyProbability) {
				g.SetEdge(hub, target, src.IntRange(b.cfg.MinWeightFromHub, b.cfg.MaxWeightFromHub))
			}
		}
	}
}

// topByDegree returns up to k regular users ranked by total degree in the
// current graph, ties broken by name so the pool is deterministic.
func topByDegree(g *InteractionGraph, regulars []string, k int) []string {
	ranked := make([]string, len(regulars))
	copy(ranked, regulars)
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := g.Degree(ranked[i]), g.Degree(ranked[j])
		if di != dj {
			return di > dj
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// interconnectHubs links each unordered hub pair bidirectionally with the
// configured probability, each direction carrying an independent weight.
func (b *Builder) interconnectHubs(g *InteractionGraph, hubNames []string, src *randvar.Source) {
	for i, h1 := range hubNames {
		for _, h2 := range hubNames[i+1:] {
			if !src.Bernoulli(b.cfg.HubLinkProbability) {
				continue
			}
			g.SetEdge(h1, h2, src.IntRange(b.cfg.HubLinkMinWeight, b.cfg.HubLinkMaxWeight))
			g.SetEdge(h2, h1, src.IntRange(b.cfg.HubLinkMinWeight, b.cfg.HubLinkMaxWeight))
		}
	}
}
