package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/config"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
)

func testService(t *testing.T) *AnalysisService {
	t.Helper()

	runCfg := pipeline.NewConfig()
	runCfg.Set("hubs.catalyst_connections", 40)
	runCfg.Set("hubs.min_connections", 5)
	runCfg.Set("hubs.max_connections", 25)
	runCfg.Set("bipartite.posts", 40)
	runCfg.Set("logging.level", "error")

	s, err := NewAnalysisService(config.RunConfig{
		CacheSize:      8,
		MinNetworkSize: 50,
		MaxNetworkSize: 400,
		MaxSteps:       20,
		MaxKThreshold:  5,
	}, runCfg)
	require.NoError(t, err)
	return s
}

func testParams() pipeline.Params {
	return pipeline.Params{NetworkSize: 100, Seed: 42, TFTSteps: 5, KThreshold: 2}
}

// waitCompleted polls until the run leaves the queued/running states.
func waitCompleted(t *testing.T, s *AnalysisService, id string) Run {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		run, ok := s.Get(id)
		require.True(t, ok)
		if run.Status == StatusCompleted || run.Status == StatusFailed {
			return run
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("run did not finish in time")
	return Run{}
}

func TestValidateParams(t *testing.T) {
	s := testService(t)

	assert.NoError(t, s.ValidateParams(testParams()))

	tests := []struct {
		name   string
		mutate func(*pipeline.Params)
	}{
		{"network size below minimum", func(p *pipeline.Params) { p.NetworkSize = 10 }},
		{"network size above maximum", func(p *pipeline.Params) { p.NetworkSize = 5000 }},
		{"zero steps", func(p *pipeline.Params) { p.TFTSteps = 0 }},
		{"too many steps", func(p *pipeline.Params) { p.TFTSteps = 100 }},
		{"zero k threshold", func(p *pipeline.Params) { p.KThreshold = 0 }},
		{"k threshold above maximum", func(p *pipeline.Params) { p.KThreshold = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			assert.Error(t, s.ValidateParams(p))
		})
	}
}

func TestSubmit_RejectsInvalidParams(t *testing.T) {
	s := testService(t)
	p := testParams()
	p.NetworkSize = 1

	_, err := s.Submit(p)
	assert.Error(t, err)
}

func TestSubmit_RunsToCompletion(t *testing.T) {
	s := testService(t)

	run, err := s.Submit(testParams())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.Cached)

	done := waitCompleted(t, s, run.ID)
	require.Equal(t, StatusCompleted, done.Status)
	assert.Empty(t, done.Error)

	res, err := s.Result(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Graph.NumUsers())
}

func TestSubmit_CacheHit(t *testing.T) {
	s := testService(t)
	params := testParams()

	first, err := s.Submit(params)
	require.NoError(t, err)
	waitCompleted(t, s, first.ID)
	firstRes, err := s.Result(first.ID)
	require.NoError(t, err)

	second, err := s.Submit(params)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, second.Status, "a cache hit completes synchronously")
	assert.True(t, second.Cached)

	secondRes, err := s.Result(second.ID)
	require.NoError(t, err)
	assert.Same(t, firstRes, secondRes, "the cached result is shared, not recomputed")
}

func TestSubmit_DifferentParamsMissCache(t *testing.T) {
	s := testService(t)

	first, err := s.Submit(testParams())
	require.NoError(t, err)
	waitCompleted(t, s, first.ID)

	other := testParams()
	other.Seed = 7
	second, err := s.Submit(other)
	require.NoError(t, err)
	assert.False(t, second.Cached)
	waitCompleted(t, s, second.ID)
}

func TestResult_Errors(t *testing.T) {
	s := testService(t)

	_, err := s.Result("no-such-run")
	assert.Error(t, err)

	run, err := s.Submit(testParams())
	require.NoError(t, err)
	if r, ok := s.Get(run.ID); ok && r.Status != StatusCompleted {
		_, err = s.Result(run.ID)
		assert.Error(t, err, "a run still in flight has no result")
	}
	waitCompleted(t, s, run.ID)
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	s := testService(t)

	submitted, err := s.Submit(testParams())
	require.NoError(t, err)

	// A caller-side mutation must not reach the service's run record, and
	// the service's own status updates must not reach earlier snapshots.
	first, ok := s.Get(submitted.ID)
	require.True(t, ok)
	first.Status = StatusFailed
	first.Error = "mutated by caller"

	second, ok := s.Get(submitted.ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated by caller", second.Error)
	assert.NotEqual(t, StatusFailed, second.Status)

	waitCompleted(t, s, submitted.ID)
	assert.Equal(t, StatusQueued, submitted.Status,
		"the Submit snapshot stays at its submission-time state")
}

func TestGet_UnknownRun(t *testing.T) {
	s := testService(t)
	_, ok := s.Get("missing")
	assert.False(t, ok)
}
