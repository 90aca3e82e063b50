package projection

// CashFlowYear is one row of the annual cash-flow ledger.
// This is the primary artifact for "what the investment does" year by year.
// All monetary fields are rounded to the nearest whole currency unit for
// display; the unrounded series live on Result for downstream math.
type CashFlowYear struct {
	Year int

	Revenue       float64
	AggregatorFee float64
	Opex          float64
	EBITDA        float64
	DebtService   float64

	NetCashFlow        float64
	CumulativeCashFlow float64
}

// Result is the full output of one projection run.
type Result struct {
	Years []CashFlowYear

	// Unrounded per-year series, index 0..ProjectLifeYears. These feed the
	// IRR solver and payback interpolation; the rounded ledger does not.
	NetCashFlows        []float64
	CumulativeCashFlows []float64

	TotalCapex        float64
	Equity            float64
	Debt              float64
	AnnualDebtPayment float64

	// GrossRevenueYear1 is year-1 revenue before degradation and fees.
	GrossRevenueYear1 float64

	NPV               float64
	IRR               float64
	PaybackYears      float64
	EBITDAMarginYear1 float64
}
