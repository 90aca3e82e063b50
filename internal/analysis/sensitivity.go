package analysis

import (
	"golang.org/x/sync/errgroup"

	"bess-economics/internal/model"
	"bess-economics/internal/projection"
)

// SensitivityPoint is one entry of the capital-cost sweep: the summary
// metrics of a full projection run at that cost, all other inputs fixed.
type SensitivityPoint struct {
	CapitalCostPerKwh float64
	PaybackYears      float64
	IRRPercent        float64
}

// Sweep re-runs the projection across the capital-cost axis and returns one
// point per axis value, in axis order. A nil axis uses the default sweep.
//
// Each point is an independent projection (equity and debt service move with
// capital cost), so points are computed concurrently and written into their
// axis slot. There is no shared state between runs and no error surface in
// the engine, so the group never fails.
func Sweep(in model.ProjectInputs, capitalCostAxis []float64) []SensitivityPoint {
	if capitalCostAxis == nil {
		capitalCostAxis = model.DefaultCapitalCostAxis
	}

	points := make([]SensitivityPoint, len(capitalCostAxis))
	engine := projection.New()

	var g errgroup.Group
	for i, cost := range capitalCostAxis {
		i, cost := i, cost
		g.Go(func() error {
			probe := in
			probe.CapitalCostPerKwh = cost
			res := engine.Project(probe)
			points[i] = SensitivityPoint{
				CapitalCostPerKwh: cost,
				PaybackYears:      res.PaybackYears,
				IRRPercent:        res.IRR * 100,
			}
			return nil
		})
	}
	_ = g.Wait()

	return points
}
