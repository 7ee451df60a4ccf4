package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// starGraph: one influencer pointing at nLeaves regular users.
func starGraph(nLeaves int) (*network.InteractionGraph, []string) {
	g := network.NewInteractionGraph()
	g.AddUser("hub", network.KindInfluencer)
	for i := 0; i < nLeaves; i++ {
		name := string(rune('a' + i))
		g.AddUser(name, network.KindRegular)
		g.SetEdge("hub", name, 5)
	}
	return g, []string{"hub"}
}

func TestRun_StarGraphTipsOnDayOne(t *testing.T) {
	g, hubs := starGraph(5)
	cfg := DefaultConfig()
	cfg.InitialCooperators = 0 // only the hub cooperates at round zero

	res := NewSimulator(g, hubs, cfg).Run(randvar.New(7))

	// Every leaf sees only the hub, so the whole star converts in one round.
	require.Len(t, res.History, cfg.Steps)
	assert.Equal(t, 1, res.InitialCount)
	assert.InDelta(t, 1.0, res.History[0], 1e-12)
	assert.Len(t, res.Final, 6)

	day, ok := TippingPoint(res.History)
	require.True(t, ok)
	assert.Equal(t, 1, day)
}

func TestStep_SynchronousUpdate(t *testing.T) {
	// Chain hub -> b -> c. Influence needs one round per hop, so c must not
	// convert in the same round as b.
	g := network.NewInteractionGraph()
	g.AddUser("hub", network.KindInfluencer)
	g.AddUser("b", network.KindRegular)
	g.AddUser("c", network.KindRegular)
	g.SetEdge("hub", "b", 4)
	g.SetEdge("b", "c", 4)

	s := NewSimulator(g, []string{"hub"}, DefaultConfig())

	first := s.step(map[string]bool{"hub": true})
	assert.True(t, first["hub"])
	assert.True(t, first["b"])
	assert.False(t, first["c"])

	second := s.step(first)
	assert.True(t, second["c"])
}

func TestStep_HubNeverDefects(t *testing.T) {
	g := network.NewInteractionGraph()
	g.AddUser("hub", network.KindInfluencer)
	g.AddUser("a", network.KindRegular)
	g.SetEdge("a", "hub", 1)

	s := NewSimulator(g, []string{"hub"}, DefaultConfig())

	// The hub's only neighbor defects, yet the hub stays in.
	next := s.step(map[string]bool{"hub": true})
	assert.True(t, next["hub"])
}

func TestStep_IsolatedNodesAreFrozen(t *testing.T) {
	g := network.NewInteractionGraph()
	g.AddUser("lone_holder", network.KindRegular)
	g.AddUser("lone_skeptic", network.KindRegular)

	s := NewSimulator(g, nil, DefaultConfig())

	next := s.step(map[string]bool{"lone_holder": true})
	assert.True(t, next["lone_holder"])
	assert.False(t, next["lone_skeptic"])
}

func TestStep_HysteresisBand(t *testing.T) {
	// x has ten regular neighbors, five of them cooperating: ratio 0.5 sits
	// inside the (0.4, 0.5] band, so only a previous cooperator stays in.
	build := func() (*Simulator, map[string]bool) {
		g := network.NewInteractionGraph()
		g.AddUser("x", network.KindRegular)
		prev := make(map[string]bool)
		for i := 0; i < 10; i++ {
			name := string(rune('a' + i))
			g.AddUser(name, network.KindRegular)
			g.SetEdge("x", name, 1)
			if i < 5 {
				prev[name] = true
			}
		}
		return NewSimulator(g, nil, DefaultConfig()), prev
	}

	s, prev := build()
	next := s.step(prev)
	assert.False(t, next["x"], "a defector at the boundary stays out")

	s, prev = build()
	prev["x"] = true
	next = s.step(prev)
	assert.True(t, next["x"], "a cooperator at the boundary holds")
}

func TestRun_Deterministic(t *testing.T) {
	builder := network.NewBuilder(network.DefaultBuilderConfig())
	hubs := []string{"hub_a", "hub_b", "hub_c"}
	g, err := builder.Build(120, hubs, randvar.New(11))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Steps = 6

	run := func(seed int64) *Result {
		return NewSimulator(g, hubs, cfg).Run(randvar.New(seed))
	}

	first, second := run(99), run(99)
	assert.Equal(t, first.History, second.History)
	assert.Equal(t, first.Final, second.Final)
	assert.Equal(t, first.InitialCount, second.InitialCount)

	require.Len(t, first.History, 6)
	for _, rate := range first.History {
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 1.0)
	}
	assert.LessOrEqual(t, len(first.Final), g.NumUsers())
}

func TestTippingPoint(t *testing.T) {
	tests := []struct {
		name    string
		history []float64
		day     int
		ok      bool
	}{
		{"crosses on day three", []float64{0.2, 0.5, 0.7, 0.9}, 3, true},
		{"exactly half never tips", []float64{0.5, 0.5}, 0, false},
		{"never crosses", []float64{0.1, 0.2, 0.3}, 0, false},
		{"empty history", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := TippingPoint(tt.history)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.day, day)
		})
	}
}

func TestAnalyze(t *testing.T) {
	res := &Result{
		History: []float64{0.2, 0.6, 0.55},
		Final:   map[string]bool{"a": true, "b": true},
	}

	a := Analyze(res)
	assert.InDelta(t, 0.2, a.InitialRate, 1e-12)
	assert.InDelta(t, 0.55, a.FinalRate, 1e-12)
	assert.InDelta(t, 0.6, a.MaxRate, 1e-12)
	assert.True(t, a.TippingReached)
	assert.Equal(t, 2, a.TippingDay)
	assert.Equal(t, 2, a.FinalCooperators)
	assert.InDelta(t, 0.35, a.Growth, 1e-12)
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	a := Analyze(&Result{})
	assert.Zero(t, a.FinalRate)
	assert.False(t, a.TippingReached)
}
