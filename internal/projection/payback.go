package projection

// SolvePayback finds the fractional year at which cumulative cash flow first
// turns positive, interpolating linearly within the crossing year.
//
// Both series are unrounded and indexed 0..N. If cumulative cash flow never
// crosses within the horizon the project does not pay back, and the horizon
// length itself is returned rather than a sentinel.
func SolvePayback(cumulative, net []float64, projectLifeYears int) float64 {
	for i := 1; i < len(cumulative); i++ {
		if cumulative[i] > 0 && cumulative[i-1] <= 0 {
			// A zero net flow at the crossing cannot move the cumulative
			// series, so the crossing happened at the year boundary.
			if net[i] == 0 {
				return float64(i - 1)
			}
			return float64(i-1) + (-cumulative[i-1] / net[i])
		}
	}
	return float64(projectLifeYears)
}
