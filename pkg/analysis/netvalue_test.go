package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueLaws_SmallExactValues(t *testing.T) {
	assert.Equal(t, 3.0, LinearValue(3))
	assert.Equal(t, 9.0, QuadraticValue(3))
	// Below the truncation limit the combinatorial law is exactly
	// 2^n - n - 1.
	assert.InDelta(t, 4.0, CombinatorialValue(3), 1e-9)
	assert.InDelta(t, 26.0, CombinatorialValue(5), 1e-9)
	assert.InDelta(t, 1013.0, CombinatorialValue(10), 1e-6)
}

func TestCombinatorialValue_Truncation(t *testing.T) {
	// For n=12 only groups of size 2..10 count:
	// 2^12 - C(12,0) - C(12,1) - C(12,11) - C(12,12) = 4070.
	assert.InDelta(t, 4070.0, CombinatorialValue(12), 1e-6)
}

func TestValueLaws_Ordering(t *testing.T) {
	for _, n := range []int{5, 50, 500, 1000} {
		v := CompareNetworkValues(n)
		assert.Less(t, v.Linear, v.Quadratic, "n=%d", n)
		assert.Less(t, v.Quadratic, v.Combinatorial, "n=%d", n)
	}
}

func TestCompareNetworkValues_FullNetwork(t *testing.T) {
	v := CompareNetworkValues(1000)
	assert.Equal(t, 1000.0, v.Linear)
	assert.Equal(t, 1e6, v.Quadratic)
	// Dominated by the C(1000, 10) term, about 2.66e23.
	assert.Greater(t, v.Combinatorial, 1e23)
	assert.Less(t, v.Combinatorial, 1e24)
}

func TestValueLaws_Degenerate(t *testing.T) {
	assert.Zero(t, CombinatorialValue(0))
	assert.Zero(t, CombinatorialValue(1))
	assert.InDelta(t, 1.0, CombinatorialValue(2), 1e-12)
}
