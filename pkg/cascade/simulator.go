// Package cascade runs the discrete-time cooperate/defect simulation over
// the interaction graph: a Tit-for-Tat-style rule where each user observes
// its neighborhood every round and decides whether to keep holding. Hub
// opinions carry a configurable multiplier, hubs themselves never defect,
// and a hysteresis band below the cooperation threshold keeps recent
// cooperators from oscillating at the boundary.
package cascade

import (
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// Config tunes the simulation. Thresholds are empirical choices preserved
// as configurable defaults; StickyThreshold must stay strictly below
// CooperationThreshold for the hysteresis band to exist.
type Config struct {
	Steps                int
	InitialCooperators   float64 // fraction of non-hub users cooperating at round zero
	HubMultiplier        float64 // weight of a hub neighbor's opinion
	CooperationThreshold float64 // ratio above which any node cooperates
	StickyThreshold      float64 // ratio above which a previous cooperator stays
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Steps:                10,
		InitialCooperators:   0.15,
		HubMultiplier:        3,
		CooperationThreshold: 0.5,
		StickyThreshold:      0.4,
	}
}

// Result holds the simulation output.
type Result struct {
	// History is the cooperation rate (cooperators / nodes) after each
	// round, one entry per simulated day.
	History []float64

	// Final is the cooperator set after the last round.
	Final map[string]bool

	// InitialCount is the number of cooperators before the first round.
	InitialCount int
}

// Simulator runs the cascade over a fixed graph and hub set.
type Simulator struct {
	g    *network.InteractionGraph
	hubs map[string]bool
	cfg  Config
}

// NewSimulator creates a Simulator. hubNames identifies the sticky
// always-cooperating influencers.
func NewSimulator(g *network.InteractionGraph, hubNames []string, cfg Config) *Simulator {
	hubs := make(map[string]bool, len(hubNames))
	for _, h := range hubNames {
		hubs[h] = true
	}
	return &Simulator{g: g, hubs: hubs, cfg: cfg}
}

// Run executes exactly cfg.Steps synchronous rounds. There is no early
// stopping: the simulation always runs the full horizon whether or not
// cooperation stabilizes. src seeds the initial early-adopter sample.
func (s *Simulator) Run(src *randvar.Source) *Result {
	cooperators := s.initialCooperators(src)
	res := &Result{InitialCount: len(cooperators)}

	n := s.g.NumUsers()
	for step := 0; step < s.cfg.Steps; step++ {
		cooperators = s.step(cooperators)
		rate := 0.0
		if n > 0 {
			rate = float64(len(cooperators)) / float64(n)
		}
		res.History = append(res.History, rate)
	}
	res.Final = cooperators
	return res
}

// initialCooperators seeds the state: all hubs plus a uniform
// without-replacement sample of the non-hub users.
func (s *Simulator) initialCooperators(src *randvar.Source) map[string]bool {
	cooperators := make(map[string]bool, len(s.hubs))
	for h := range s.hubs {
		if s.g.IsHub(h) {
			cooperators[h] = true
		}
	}

	all := s.g.SortedUsers()
	nonHubs := make([]string, 0, len(all))
	for _, u := range all {
		if !s.hubs[u] {
			nonHubs = append(nonHubs, u)
		}
	}
	nEarly := int(float64(len(all)) * s.cfg.InitialCooperators)
	for _, u := range randvar.Sample(src, nonHubs, nEarly) {
		cooperators[u] = true
	}
	return cooperators
}

// step computes the next cooperator set. The update is fully synchronous:
// every decision reads only the previous round's state.
func (s *Simulator) step(prev map[string]bool) map[string]bool {
	next := make(map[string]bool, len(prev))

	for _, node := range s.g.Users() {
		neighbors := s.g.Neighborhood(node)
		if len(neighbors) == 0 {
			// Isolated nodes are frozen in their previous state.
			if prev[node] {
				next[node] = true
			}
			continue
		}

		var cooperating, total float64
		for _, nb := range neighbors {
			w := 1.0
			if s.hubs[nb] {
				w = s.cfg.HubMultiplier
			}
			total += w
			if prev[nb] {
				cooperating += w
			}
		}
		ratio := cooperating / total

		switch {
		case ratio > s.cfg.CooperationThreshold:
			next[node] = true
		case s.hubs[node]:
			// Public commitment: hubs never defect.
			next[node] = true
		case ratio > s.cfg.StickyThreshold && prev[node]:
			next[node] = true
		}
	}
	return next
}
