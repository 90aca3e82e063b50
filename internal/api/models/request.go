package models

// ProjectInputsPayload carries the user-adjustable fields for one projection.
type ProjectInputsPayload struct {
	StorageCapacityKwh   float64 `json:"storage_capacity_kwh" binding:"required"`
	CapitalCostPerKwh    float64 `json:"capital_cost_per_kwh"`
	RevenueScenario      string  `json:"revenue_scenario" binding:"required"`
	DiscountRate         float64 `json:"discount_rate"`
	DebtRatio            float64 `json:"debt_ratio"`
	InterestRate         float64 `json:"interest_rate"`
	LoanTenorYears       int     `json:"loan_tenor_years"`
	AggregatorFeeEnabled bool    `json:"aggregator_fee_enabled"`
	AggregatorFeePercent float64 `json:"aggregator_fee_percent,omitempty"`
}

// ProjectRequest represents the request body for running a projection
type ProjectRequest struct {
	Inputs ProjectInputsPayload `json:"inputs" binding:"required"`
}

// SensitivityRequest represents the request body for a capital-cost sweep
type SensitivityRequest struct {
	Inputs ProjectInputsPayload `json:"inputs" binding:"required"`
	// CapitalCostAxis overrides the default sweep axis ($/kWh). Optional.
	CapitalCostAxis []float64 `json:"capital_cost_axis,omitempty"`
}
