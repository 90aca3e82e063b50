package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveIRR_SinglePeriod(t *testing.T) {
	// -1000 now, 1100 in a year: 10% return by construction.
	assert.InDelta(t, 0.10, SolveIRR([]float64{-1000, 1100}), 0.001)
}

func TestSolveIRR_MultiYear(t *testing.T) {
	// Whatever rate comes back must actually zero the NPV.
	flows := []float64{-87500, 41000, 40100, 39300, 38500, 37700, 37000, 36200}
	rate := SolveIRR(flows)
	assert.InDelta(t, 0, npvAt(flows, rate), 0.011)
}

func TestSolveIRR_NeverPanicsOnDegenerateFlows(t *testing.T) {
	cases := map[string][]float64{
		"empty":        {},
		"all zero":     {0, 0, 0},
		"all negative": {-1000, -50, -50},
		"all positive": {0, 100, 100},
	}
	for name, flows := range cases {
		rate := SolveIRR(flows)
		assert.False(t, math.IsNaN(rate), name)
		assert.False(t, math.IsInf(rate, 0), name)
	}
}

func TestSolveIRR_BestEffortOnNonConvergence(t *testing.T) {
	// Enormous return: the walk climbs by the fixed step and may exhaust the
	// iteration cap. The contract is a finite best-effort rate, not an error.
	rate := SolveIRR([]float64{-1, 1e9})
	assert.False(t, math.IsNaN(rate))
	assert.Greater(t, rate, 1.0)
}
