package model

// Project-level financial constants. These are fixed assumptions shared by
// every projection run; per-scenario figures live in scenario.go.
// Units:
// - ProjectLifeYears: years
// - OMRate: fraction of total capex per year
// - DegradationRate: fraction of output lost per year, compounding
// - DischargeEfficiency: 0..1
// - PowerToEnergyRatio: kW of power per kWh of storage
const (
	ProjectLifeYears    = 12
	OMRate              = 0.025
	DegradationRate     = 0.02
	DischargeEfficiency = 0.96
	PowerToEnergyRatio  = 0.5
)

// DefaultCapitalCostAxis is the capital-cost sweep ($/kWh) used by the
// sensitivity analysis when the caller does not supply its own axis.
var DefaultCapitalCostAxis = []float64{200, 250, 300, 350, 400, 450, 500}
