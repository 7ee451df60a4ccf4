package analysis

import (
	"gonum.org/v1/gonum/stat/combin"
)

// maxGroupSize truncates the combinatorial value law to groups of at most
// this many members. The untruncated 2^n - n - 1 group count is numerically
// intractable for realistic n and does not change the relative comparison;
// downstream consumers are calibrated to this truncation, so it must not be
// "fixed" to the exact form.
const maxGroupSize = 10

// NetworkValues holds the three value-law scores for one network size.
type NetworkValues struct {
	Linear        float64 `json:"sarnoff"`
	Quadratic     float64 `json:"metcalfe"`
	Combinatorial float64 `json:"reed"`
}

// LinearValue is Sarnoff's law: V = n.
func LinearValue(n int) float64 {
	return float64(n)
}

// QuadraticValue is Metcalfe's law: V = n^2.
func QuadraticValue(n int) float64 {
	return float64(n) * float64(n)
}

// CombinatorialValue approximates Reed's law as the number of subgroups of
// size 2 through min(maxGroupSize, n): sum of C(n, k).
func CombinatorialValue(n int) float64 {
	limit := maxGroupSize
	if n < limit {
		limit = n
	}
	value := 0.0
	for k := 2; k <= limit; k++ {
		value += combin.GeneralizedBinomial(float64(n), float64(k))
	}
	return value
}

// CompareNetworkValues evaluates all three laws at n.
func CompareNetworkValues(n int) NetworkValues {
	return NetworkValues{
		Linear:        LinearValue(n),
		Quadratic:     QuadraticValue(n),
		Combinatorial: CombinatorialValue(n),
	}
}
