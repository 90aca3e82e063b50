package projection

import (
	"math"

	"bess-economics/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Project runs the annual cash-flow projection for one input set.
//
// Year 0 carries only the equity outlay; years 1..ProjectLifeYears carry
// degraded revenue, fees, O&M, and debt service inside the loan tenor. The
// function is total: degenerate inputs (zero capacity, 0% debt, zero tenor)
// produce degenerate but well-defined ledgers, never an error.
func (e *Engine) Project(in model.ProjectInputs) *Result {
	powerKw := in.PowerKw()
	totalCapex := in.TotalCapex()
	annualOm := totalCapex * model.OMRate
	grossRevenueYear1 := powerKw * in.RevenueScenario.Constants().RevenuePerKwYear * model.DischargeEfficiency
	feeRate := in.FeeRate()

	debt := totalCapex * in.DebtRatio
	equity := totalCapex - debt
	annualDebtPayment := AnnualDebtPayment(debt, in.InterestRate, in.LoanTenorYears)

	nYears := model.ProjectLifeYears + 1
	res := &Result{
		Years:               make([]CashFlowYear, 0, nYears),
		NetCashFlows:        make([]float64, 0, nYears),
		CumulativeCashFlows: make([]float64, 0, nYears),
		TotalCapex:          totalCapex,
		Equity:              equity,
		Debt:                debt,
		AnnualDebtPayment:   annualDebtPayment,
		GrossRevenueYear1:   grossRevenueYear1,
	}

	cum := 0.0
	npv := 0.0

	for yr := 0; yr <= model.ProjectLifeYears; yr++ {
		var grossRevenue, fee, revenue, opex, debtService float64
		var net float64

		if yr == 0 {
			net = -equity
		} else {
			degradation := math.Pow(1-model.DegradationRate, float64(yr-1))
			grossRevenue = grossRevenueYear1 * degradation
			fee = grossRevenue * feeRate
			revenue = grossRevenue - fee
			opex = annualOm
			if yr <= in.LoanTenorYears {
				debtService = annualDebtPayment
			}
			net = (revenue - opex) - debtService
		}
		ebitda := revenue - opex

		cum += net
		npv += net / math.Pow(1+in.DiscountRate, float64(yr))

		res.NetCashFlows = append(res.NetCashFlows, net)
		res.CumulativeCashFlows = append(res.CumulativeCashFlows, cum)
		res.Years = append(res.Years, CashFlowYear{
			Year:               yr,
			Revenue:            math.Round(revenue),
			AggregatorFee:      math.Round(fee),
			Opex:               math.Round(opex),
			EBITDA:             math.Round(ebitda),
			DebtService:        math.Round(debtService),
			NetCashFlow:        math.Round(net),
			CumulativeCashFlow: math.Round(cum),
		})
	}

	res.NPV = npv
	res.IRR = SolveIRR(res.NetCashFlows)
	res.PaybackYears = SolvePayback(res.CumulativeCashFlows, res.NetCashFlows, model.ProjectLifeYears)

	// Year-1 margin from the unrounded figures; zero revenue means no margin.
	if yearOneRevenue := grossRevenueYear1 * (1 - feeRate); yearOneRevenue != 0 {
		res.EBITDAMarginYear1 = (yearOneRevenue - annualOm) / yearOneRevenue
	}

	return res
}
