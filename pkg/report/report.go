// Package report renders a pipeline result as a sectioned plain-text
// analysis report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/analysis"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
)

const width = 80

// Write renders the full report. topK controls the length of the ranked
// influencer and bridge listings.
func Write(w io.Writer, res *pipeline.Result, topK int) error {
	var b strings.Builder

	header(&b, "GAMESTOP SHORT SQUEEZE - SOCIAL NETWORK ANALYSIS")
	fmt.Fprintf(&b, "Parameters: size=%d seed=%d steps=%d k=%d (elapsed %s)\n",
		res.Params.NetworkSize, res.Params.Seed, res.Params.TFTSteps,
		res.Params.KThreshold, res.Elapsed.Round(1e6))

	header(&b, "NETWORK CONSTRUCTION")
	fmt.Fprintf(&b, "Nodes:                %d\n", res.Stats.NumNodes)
	fmt.Fprintf(&b, "Edges:                %d\n", res.Stats.NumEdges)
	fmt.Fprintf(&b, "Density:              %.6f\n", res.Stats.Density)
	fmt.Fprintf(&b, "Weakly connected:     %v (largest WCC %.1f%%)\n",
		res.Stats.IsWeaklyConnected, res.Stats.LargestWCCPct)
	fmt.Fprintf(&b, "Strongly connected:   %v (largest SCC %.1f%%)\n",
		res.Stats.IsStronglyConnected, res.Stats.LargestSCCPct)

	header(&b, "CENTRALITY - TOP INFLUENCERS (weighted in-degree)")
	rankedList(&b, analysis.TopK(res.Centralities.InDegreeWeighted, topK), res.HubNames)

	header(&b, "CENTRALITY - TOP BRIDGES (betweenness)")
	rankedList(&b, analysis.TopK(res.Centralities.Betweenness, topK), res.HubNames)

	header(&b, "NETWORK STRUCTURE")
	fmt.Fprintf(&b, "Density:              %.6f  (%s)\n", res.Density, res.DensityLabel)
	fmt.Fprintf(&b, "Freeman score:        %.4f  (%s)\n", res.Centralization, res.CentralizationLabel)

	header(&b, "TIT-FOR-TAT COOPERATION CASCADE")
	for i, rate := range res.CascadeHistory {
		fmt.Fprintf(&b, "Day %2d: %6.1f%% holding\n", i+1, rate*100)
	}
	if res.Cascade.TippingReached {
		fmt.Fprintf(&b, "Tipping point: day %d (cooperation crossed 50%%)\n", res.Cascade.TippingDay)
	} else {
		fmt.Fprintf(&b, "Tipping point: not reached\n")
	}
	fmt.Fprintf(&b, "Final cooperators: %d (%.1f%%)\n",
		res.Cascade.FinalCooperators, res.Cascade.FinalRate*100)

	header(&b, "NETWORK VALUE LAWS")
	fmt.Fprintf(&b, "Sarnoff  (V=n):        %.0f\n", res.Values.Linear)
	fmt.Fprintf(&b, "Metcalfe (V=n^2):      %.0f\n", res.Values.Quadratic)
	fmt.Fprintf(&b, "Reed (truncated 2^n):  %.4g\n", res.Values.Combinatorial)
	fmt.Fprintf(&b, "Communities detected:  %d (largest %d)\n",
		res.Communities.NumCommunities, res.Communities.LargestSize)

	header(&b, "BIPARTITE PROJECTION & ECHO CHAMBER")
	fmt.Fprintf(&b, "Users x posts:        %d x %d (%d comments)\n",
		res.MatrixInfo.NumUsers, res.MatrixInfo.NumPosts, res.MatrixInfo.TotalComments)
	fmt.Fprintf(&b, "Edges (k>=%d):         %d / %d (density %.4f)\n",
		res.MatrixInfo.KThreshold, res.MatrixInfo.EdgesCreated,
		res.MatrixInfo.MaxPossibleEdges, res.MatrixInfo.Density)
	fmt.Fprintf(&b, "Components:           %d, largest %.1f%%\n",
		res.EchoChamber.NumComponents, res.EchoChamber.LargestComponentPct)
	fmt.Fprintf(&b, "Clustering:           %.4f", res.EchoChamber.Clustering)
	if res.EchoChamber.ClusteringSampled {
		fmt.Fprintf(&b, " (sampled)")
	}
	fmt.Fprintln(&b)
	if res.EchoChamber.Confirmed {
		fmt.Fprintln(&b, "Echo chamber:         CONFIRMED")
	} else {
		fmt.Fprintln(&b, "Echo chamber:         not confirmed")
	}

	header(&b, "SUMMARY")
	fmt.Fprintf(&b, "A %d-user scale-free network with %d designated influencers.\n",
		res.Stats.NumNodes, len(res.HubNames))
	fmt.Fprintf(&b, "Structure: %s\n", res.CentralizationLabel)
	if res.Cascade.TippingReached {
		fmt.Fprintf(&b, "Cooperation tipped on day %d and ended at %.1f%%.\n",
			res.Cascade.TippingDay, res.Cascade.FinalRate*100)
	} else {
		fmt.Fprintf(&b, "Cooperation never crossed 50%% within %d days.\n",
			res.Params.TFTSteps)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func header(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", strings.Repeat("=", width), title, strings.Repeat("=", width))
}

func rankedList(b *strings.Builder, rows []analysis.Ranked, hubNames []string) {
	hubs := make(map[string]bool, len(hubNames))
	for _, h := range hubNames {
		hubs[h] = true
	}
	for i, r := range rows {
		marker := " "
		if hubs[r.Name] {
			marker = "*"
		}
		fmt.Fprintf(b, "%2d. %s %-24s %12.4f\n", i+1, marker, r.Name, r.Score)
	}
	if len(rows) > 0 {
		fmt.Fprintln(b, "   (* designated influencer)")
	}
}
