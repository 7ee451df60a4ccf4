// Command analyze runs the full GameStop network analysis once and writes
// the report plus export artifacts to an output directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/analysis"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/export"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		size       int
		seed       int64
		steps      int
		kThreshold int
		posts      int
		outDir     string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the GameStop short-squeeze social network analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := pipeline.NewConfig()
			if configFile != "" {
				if err := cfg.LoadFromFile(configFile); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			cfg.Set("bipartite.posts", posts)

			params := pipeline.Params{
				NetworkSize: size,
				Seed:        seed,
				TFTSteps:    steps,
				KThreshold:  kThreshold,
			}

			logger := cfg.CreateLogger()
			result, err := pipeline.Run(cfg, params, logger)
			if err != nil {
				return err
			}

			if err := report.Write(cmd.OutOrStdout(), result, cfg.TopK()); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if outDir != "" {
				if err := writeArtifacts(outDir, result, cfg.TopK()); err != nil {
					return err
				}
				logger.Info().Str("dir", outDir).Msg("Artifacts written")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1000, "total number of users")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().IntVar(&steps, "steps", 10, "cascade simulation days")
	cmd.Flags().IntVar(&kThreshold, "k", 2, "minimum shared posts for a projected edge")
	cmd.Flags().IntVar(&posts, "posts", 200, "number of posts in the bipartite graph")
	cmd.Flags().StringVar(&outDir, "out", "output", "artifact output directory (empty to skip)")
	cmd.Flags().StringVar(&configFile, "config", "", "optional config file")
	return cmd
}

func writeArtifacts(dir string, result *pipeline.Result, topK int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	writers := []struct {
		name string
		fn   func(f *os.File) error
	}{
		{"gamestop_network.gexf", func(f *os.File) error {
			return export.WriteGEXF(f, result.Graph)
		}},
		{"top_influencers.csv", func(f *os.File) error {
			return export.WriteRankedCSV(f, "weighted_in_degree",
				analysis.TopK(result.Centralities.InDegreeWeighted, topK))
		}},
		{"top_bridges.csv", func(f *os.File) error {
			return export.WriteRankedCSV(f, "betweenness",
				analysis.TopK(result.Centralities.Betweenness, topK))
		}},
		{"tft_history.csv", func(f *os.File) error {
			return export.WriteCooperationCSV(f, result.CascadeHistory)
		}},
		{"shared_posts_matrix.bin", func(f *os.File) error {
			return export.WriteMatrix(f, result.SharedMatrix)
		}},
	}

	for _, a := range writers {
		f, err := os.Create(filepath.Join(dir, a.name))
		if err != nil {
			return fmt.Errorf("create %s: %w", a.name, err)
		}
		if err := a.fn(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", a.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", a.name, err)
		}
	}
	return nil
}
