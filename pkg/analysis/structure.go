package analysis

import (
	netpkg "github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/network"
)

// DegreeKind selects the degree variant used for centralization.
type DegreeKind int

const (
	DegreeTotal DegreeKind = iota
	DegreeIn
	DegreeOut
)

// Density returns the directed graph density e / (n * (n-1)), zero for
// degenerate graphs.
func Density(g *netpkg.InteractionGraph) float64 {
	n := g.NumUsers()
	if n < 2 {
		return 0
	}
	return float64(g.NumEdges()) / float64(n*(n-1))
}

// FreemanCentralization measures how concentrated the degree distribution
// is around its maximum: sum(C_max - C_i) / ((n-1)(n-2)). Zero means fully
// decentralized, one a perfect star.
func FreemanCentralization(g *netpkg.InteractionGraph, kind DegreeKind) float64 {
	users := g.SortedUsers()
	n := len(users)
	denom := (n - 1) * (n - 2)
	if denom == 0 {
		return 0
	}

	degrees := make([]int, 0, n)
	maxDeg := 0
	for _, u := range users {
		var d int
		switch kind {
		case DegreeIn:
			d = g.InDegree(u)
		case DegreeOut:
			d = g.OutDegree(u)
		default:
			d = g.Degree(u)
		}
		degrees = append(degrees, d)
		if d > maxDeg {
			maxDeg = d
		}
	}

	sum := 0
	for _, d := range degrees {
		sum += maxDeg - d
	}
	return float64(sum) / float64(denom)
}

// InterpretCentralization maps a Freeman score to the report wording.
func InterpretCentralization(score float64) string {
	switch {
	case score > 0.6:
		return "HIGHLY CENTRALIZED - Leader-driven movement"
	case score > 0.4:
		return "MODERATELY CENTRALIZED - Hybrid structure"
	case score > 0.2:
		return "SOMEWHAT CENTRALIZED - Mix of leaders and grassroots"
	default:
		return "DECENTRALIZED - Grassroots movement"
	}
}

// InterpretDensity maps a density value to the report wording. The sparse
// band scales with network size since density naturally falls as n grows.
func InterpretDensity(density float64, nNodes int) string {
	expectedLow := 0.0
	if nNodes > 0 {
		expectedLow = 1 / float64(nNodes)
	}
	switch {
	case density > 0.1:
		return "DENSE - Tight-knit community"
	case density > 0.01:
		return "MODERATE - Connected but not tight"
	case density > expectedLow*2:
		return "SPARSE - Loose community structure"
	default:
		return "VERY SPARSE - Highly fragmented"
	}
}

// DegreeHistogram counts nodes per total degree, the raw material of the
// power-law view of the degree distribution.
func DegreeHistogram(g *netpkg.InteractionGraph) map[int]int {
	hist := make(map[int]int)
	for _, u := range g.SortedUsers() {
		hist[g.Degree(u)]++
	}
	return hist
}
