// Package service runs analysis jobs for the dashboard API: asynchronous
// execution, status tracking, and an LRU cache of completed results keyed
// by the full parameter tuple so repeated requests never recompute.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/config"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
)

// RunStatus is the lifecycle state of an analysis run.
type RunStatus string

const (
	StatusQueued    RunStatus = "queued"
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// Run tracks one submitted analysis.
type Run struct {
	ID        string          `json:"id"`
	Params    pipeline.Params `json:"params"`
	Status    RunStatus       `json:"status"`
	Error     string          `json:"error,omitempty"`
	Cached    bool            `json:"cached"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	result *pipeline.Result
}

// AnalysisService owns run bookkeeping and the result cache. Every run gets
// its own isolated random source inside the pipeline, so concurrent runs
// share no mutable state.
type AnalysisService struct {
	mu     sync.RWMutex
	runs   map[string]*Run
	cache  *lru.Cache[pipeline.Params, *pipeline.Result]
	cfg    config.RunConfig
	runCfg *pipeline.Config
}

// NewAnalysisService creates the service with the given bounds and cache
// size.
func NewAnalysisService(cfg config.RunConfig, runCfg *pipeline.Config) (*AnalysisService, error) {
	cache, err := lru.New[pipeline.Params, *pipeline.Result](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("service: create result cache: %w", err)
	}
	return &AnalysisService{
		runs:   make(map[string]*Run),
		cache:  cache,
		cfg:    cfg,
		runCfg: runCfg,
	}, nil
}

// ValidateParams enforces the configured parameter bounds.
func (s *AnalysisService) ValidateParams(p pipeline.Params) error {
	if p.NetworkSize < s.cfg.MinNetworkSize || p.NetworkSize > s.cfg.MaxNetworkSize {
		return fmt.Errorf("network_size must be in [%d, %d]", s.cfg.MinNetworkSize, s.cfg.MaxNetworkSize)
	}
	if p.TFTSteps < 1 || p.TFTSteps > s.cfg.MaxSteps {
		return fmt.Errorf("tft_steps must be in [1, %d]", s.cfg.MaxSteps)
	}
	if p.KThreshold < 1 || p.KThreshold > s.cfg.MaxKThreshold {
		return fmt.Errorf("k_threshold must be in [1, %d]", s.cfg.MaxKThreshold)
	}
	return nil
}

// Submit starts an analysis run. A cache hit completes immediately with the
// cached result; otherwise the pipeline executes in the background. The
// returned Run is a snapshot: the background execution never mutates it.
func (s *AnalysisService) Submit(params pipeline.Params) (Run, error) {
	if err := s.ValidateParams(params); err != nil {
		return Run{}, err
	}

	now := time.Now()
	run := &Run{
		ID:        uuid.New().String(),
		Params:    params,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if cached, ok := s.cache.Get(params); ok {
		run.Status = StatusCompleted
		run.Cached = true
		run.result = cached
		s.store(run)
		log.Info().Str("run_id", run.ID).Msg("Analysis served from cache")
		return *run, nil
	}

	s.store(run)
	log.Info().
		Str("run_id", run.ID).
		Int("network_size", params.NetworkSize).
		Int64("seed", params.Seed).
		Msg("Analysis run submitted")

	snapshot := *run
	go s.execute(run.ID, params)
	return snapshot, nil
}

func (s *AnalysisService) execute(id string, params pipeline.Params) {
	s.update(id, func(r *Run) { r.Status = StatusRunning })

	logger := s.runCfg.CreateLogger()
	result, err := pipeline.Run(s.runCfg, params, logger)
	if err != nil {
		log.Error().Err(err).Str("run_id", id).Msg("Analysis run failed")
		s.update(id, func(r *Run) {
			r.Status = StatusFailed
			r.Error = err.Error()
		})
		return
	}

	s.cache.Add(params, result)
	s.update(id, func(r *Run) {
		r.Status = StatusCompleted
		r.result = result
	})
	log.Info().
		Str("run_id", id).
		Dur("elapsed", result.Elapsed).
		Msg("Analysis run completed")
}

func (s *AnalysisService) store(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
}

func (s *AnalysisService) update(id string, fn func(*Run)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok {
		fn(run)
		run.UpdatedAt = time.Now()
	}
}

// Get returns a snapshot of the run with the given ID. The copy is taken
// under the service lock, so callers can read it freely while the run keeps
// executing.
func (s *AnalysisService) Get(id string) (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

// Result returns the completed result of a run.
func (s *AnalysisService) Result(id string) (*pipeline.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("unknown run %q", id)
	}
	if run.Status != StatusCompleted {
		return nil, fmt.Errorf("run %q is %s", id, run.Status)
	}
	return run.result, nil
}
