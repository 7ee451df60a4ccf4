package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/analysis"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/cascade"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/projection"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/randvar"
)

// Params is the tuple that fully determines a run (together with the static
// Config). It is comparable, so it doubles as the result-cache key.
type Params struct {
	NetworkSize int
	Seed        int64
	TFTSteps    int
	KThreshold  int
}

// ParamsFromConfig reads the default parameter tuple from a Config.
func ParamsFromConfig(c *Config) Params {
	return Params{
		NetworkSize: c.NetworkSize(),
		Seed:        c.Seed(),
		TFTSteps:    c.CascadeSteps(),
		KThreshold:  c.KThreshold(),
	}
}

// Result bundles every output of one analysis run for the reporting and
// serving layers. All structures are in-memory; persistence is the export
// package's concern.
type Result struct {
	Params   Params
	HubNames []string

	Graph *network.InteractionGraph
	Stats network.Stats

	Centralities *analysis.Centralities

	Density             float64
	DensityLabel        string
	Centralization      float64
	CentralizationLabel string

	CascadeHistory []float64
	Cascade        cascade.Analysis

	Values      analysis.NetworkValues
	Communities analysis.CommunityStats

	PostIDs      []string
	Projection   *projection.Graph
	SharedMatrix *mat.Dense
	MatrixInfo   projection.Info
	EchoChamber  projection.EchoChamberAnalysis

	Elapsed time.Duration
}

// Run executes the complete pipeline for the given parameters. Every
// stochastic step draws from one Source seeded with params.Seed, so a fixed
// parameter tuple reproduces the result exactly. The call blocks until all
// stages complete; there is no cancellation, operations run to completion.
func Run(cfg *Config, params Params, logger zerolog.Logger) (*Result, error) {
	start := time.Now()
	src := randvar.New(params.Seed)
	hubNames := cfg.HubNames()

	logger.Info().
		Int("network_size", params.NetworkSize).
		Int64("seed", params.Seed).
		Int("hubs", len(hubNames)).
		Msg("Building scale-free interaction network")

	builder := network.NewBuilder(cfg.BuilderConfig())
	g, err := builder.Build(params.NetworkSize, hubNames, src)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build network: %w", err)
	}
	stats := network.ComputeStats(g)
	if !stats.IsWeaklyConnected {
		logger.Warn().
			Int("largest_wcc", stats.LargestWCCSize).
			Msg("Interaction graph is not weakly connected")
	}
	logger.Info().
		Int("nodes", stats.NumNodes).
		Int("edges", stats.NumEdges).
		Float64("density", stats.Density).
		Msg("Network constructed")

	logger.Info().Msg("Calculating centrality profile")
	centralities := analysis.CalculateAll(g)

	density := analysis.Density(g)
	centralization := analysis.FreemanCentralization(g, analysis.DegreeIn)

	logger.Info().Int("steps", params.TFTSteps).Msg("Running cooperation cascade")
	simCfg := cfg.CascadeConfig()
	simCfg.Steps = params.TFTSteps
	sim := cascade.NewSimulator(g, hubNames, simCfg)
	simRes := sim.Run(src)
	cascadeAnalysis := cascade.Analyze(simRes)
	logger.Info().
		Int("tipping_day", cascadeAnalysis.TippingDay).
		Float64("final_rate", cascadeAnalysis.FinalRate).
		Msg("Cascade finished")

	values := analysis.CompareNetworkValues(g.NumUsers())
	communities := analysis.DetectCommunities(g, params.Seed)

	logger.Info().Int("posts", cfg.NumPosts()).Msg("Building bipartite content graph")
	bb := network.NewBipartiteBuilder(cfg.BipartiteConfig())
	bip, postIDs, err := bb.Build(g, hubNames, cfg.NumPosts(), src)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build bipartite graph: %w", err)
	}

	logger.Info().Int("k_threshold", params.KThreshold).Msg("Projecting to user-similarity graph")
	proj, shared, info, err := projection.Project(bip, params.KThreshold)
	if err != nil {
		return nil, fmt.Errorf("pipeline: project bipartite graph: %w", err)
	}
	echo, _, _ := projection.AnalyzeEchoChamber(proj, src)
	logger.Info().
		Int("edges", info.EdgesCreated).
		Float64("largest_component_pct", echo.LargestComponentPct).
		Bool("echo_chamber", echo.Confirmed).
		Msg("Projection analyzed")

	return &Result{
		Params:              params,
		HubNames:            hubNames,
		Graph:               g,
		Stats:               stats,
		Centralities:        centralities,
		Density:             density,
		DensityLabel:        analysis.InterpretDensity(density, g.NumUsers()),
		Centralization:      centralization,
		CentralizationLabel: analysis.InterpretCentralization(centralization),
		CascadeHistory:      simRes.History,
		Cascade:             cascadeAnalysis,
		Values:              values,
		Communities:         communities,
		PostIDs:             postIDs,
		Projection:          proj,
		SharedMatrix:        shared,
		MatrixInfo:          info,
		EchoChamber:         echo,
		Elapsed:             time.Since(start),
	}, nil
}
