package model

import "errors"

// ProjectInputs defines the sizing, cost, and financing assumptions for one
// projection run. The engine treats it as immutable.
// Units:
// - StorageCapacityKwh: kWh
// - CapitalCostPerKwh: $/kWh
// - DiscountRate, DebtRatio, InterestRate: fractions (0.08 = 8%)
// - LoanTenorYears: years
// - AggregatorFeePercent: percent 0..100, used only when the fee is enabled
type ProjectInputs struct {
	StorageCapacityKwh   float64
	CapitalCostPerKwh    float64
	RevenueScenario      Scenario
	DiscountRate         float64
	DebtRatio            float64
	InterestRate         float64
	LoanTenorYears       int
	AggregatorFeeEnabled bool
	AggregatorFeePercent float64
}

// PowerKw derives power capacity from storage capacity.
func (in ProjectInputs) PowerKw() float64 {
	return in.StorageCapacityKwh * PowerToEnergyRatio
}

// TotalCapex is the up-front capital cost of the system.
func (in ProjectInputs) TotalCapex() float64 {
	return in.StorageCapacityKwh * in.CapitalCostPerKwh
}

// FeeRate is the effective aggregator fee as a fraction of gross revenue.
// A disabled fee is a zero rate regardless of the percent field.
func (in ProjectInputs) FeeRate() float64 {
	if !in.AggregatorFeeEnabled {
		return 0
	}
	return in.AggregatorFeePercent / 100
}

// Validate checks caller-facing range constraints. The projection engine
// itself never calls this: it is total over its numeric domain and computes
// with whatever it is given. Config and API layers validate before invoking.
func (in ProjectInputs) Validate() error {
	if in.StorageCapacityKwh <= 0 {
		return errors.New("StorageCapacityKwh must be > 0")
	}
	if in.CapitalCostPerKwh < 0 {
		return errors.New("CapitalCostPerKwh must be >= 0")
	}
	if !in.RevenueScenario.Valid() {
		return errors.New("RevenueScenario must be one of downside/base/upside")
	}
	if in.DebtRatio < 0 || in.DebtRatio >= 1 {
		return errors.New("DebtRatio must be in [0, 1)")
	}
	if in.InterestRate < 0 {
		return errors.New("InterestRate must be >= 0")
	}
	if in.LoanTenorYears < 0 {
		return errors.New("LoanTenorYears must be >= 0")
	}
	if in.AggregatorFeeEnabled && (in.AggregatorFeePercent < 0 || in.AggregatorFeePercent > 100) {
		return errors.New("AggregatorFeePercent must be in [0, 100]")
	}
	return nil
}
