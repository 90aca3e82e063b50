package models

// ProjectResponse represents the response from a projection run
type ProjectResponse struct {
	Status  string            `json:"status"`
	Summary ProjectionSummary `json:"summary"`
	Years   []CashFlowYearRow `json:"years"`
	Market  MarketContextInfo `json:"market_context"`
}

// ProjectionSummary contains the headline investment metrics
type ProjectionSummary struct {
	TotalCapex        float64 `json:"total_capex"`
	Equity            float64 `json:"equity"`
	Debt              float64 `json:"debt"`
	AnnualDebtPayment float64 `json:"annual_debt_payment"`
	GrossRevenueYear1 float64 `json:"gross_revenue_year_1"`
	NPV               float64 `json:"npv"`
	IRRPercent        float64 `json:"irr_percent"`
	PaybackYears      float64 `json:"payback_years"`
	EBITDAMarginYear1 float64 `json:"ebitda_margin_year_1"`
}

// CashFlowYearRow represents one year in the cash-flow ledger
type CashFlowYearRow struct {
	Year               int     `json:"year"`
	Revenue            float64 `json:"revenue"`
	AggregatorFee      float64 `json:"aggregator_fee"`
	Opex               float64 `json:"opex"`
	EBITDA             float64 `json:"ebitda"`
	DebtService        float64 `json:"debt_service"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
}

// SensitivityResponse represents the response from a capital-cost sweep
type SensitivityResponse struct {
	Points []SensitivityPointRow `json:"points"`
}

// SensitivityPointRow represents one swept capital-cost value
type SensitivityPointRow struct {
	CapitalCostPerKwh float64 `json:"capital_cost_per_kwh"`
	PaybackYears      float64 `json:"payback_years"`
	IRRPercent        float64 `json:"irr_percent"`
}

// ScenarioInfo represents one revenue scenario and its reference figures
type ScenarioInfo struct {
	Name             string            `json:"name"`
	RevenuePerKwYear float64           `json:"revenue_per_kw_year"`
	Market           MarketContextInfo `json:"market_context"`
}

// MarketContextInfo carries the display-only market reference figures
type MarketContextInfo struct {
	DRIncentivePerKw    float64 `json:"dr_incentive_per_kw"`
	EligiblePeriods     int     `json:"eligible_periods"`
	ParticipationRate   float64 `json:"participation_rate"`
	ReferencePricePerKw float64 `json:"reference_price_per_kw"`
	ParticipatedPeriods int     `json:"participated_periods"`
}

// ScenariosResponse lists all scenarios
type ScenariosResponse struct {
	Scenarios []ScenarioInfo `json:"scenarios"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
