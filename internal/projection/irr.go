package projection

import "math"

const (
	irrStartRate    = 0.10
	irrStartStep    = 0.10
	irrMaxIter      = 100
	irrNPVTolerance = 0.01
)

// SolveIRR finds the discount rate that zeroes the NPV of the given
// year-indexed net cash flows.
//
// It uses a derivative-free step search: walk the rate up while NPV is
// positive, and on each overshoot step back and halve the step. For the
// single-sign-change shapes this engine produces (one outflow year, then
// inflows) the walk converges well inside the iteration cap. If the cap is
// hit the last trial rate is returned as a best-effort estimate; callers
// are expected to sanity-check implausible rates, not this function.
//
// Known limitation: the step never re-expands after shrinking, so sequences
// with multiple sign changes (a late debt-heavy negative year) may exhaust
// the cap without converging.
func SolveIRR(netCashFlows []float64) float64 {
	rate := irrStartRate
	step := irrStartStep

	for i := 0; i < irrMaxIter; i++ {
		npv := npvAt(netCashFlows, rate)
		if math.Abs(npv) < irrNPVTolerance {
			break
		}
		if npv > 0 {
			rate += step
		} else {
			rate -= step
			step /= 2
		}
	}
	return rate
}

func npvAt(flows []float64, rate float64) float64 {
	npv := 0.0
	for yr, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(yr))
	}
	return npv
}
