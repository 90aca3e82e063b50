package main

import (
	"flag"
	"fmt"

	"bess-economics/internal/analysis"
	"bess-economics/internal/model"
	"bess-economics/internal/projection"
)

// Demo:
// - Build a canonical 250 kWh project on the base revenue scenario
// - Run the projection and print the cash-flow ledger + summary metrics
// - Run the default capital-cost sweep to show how the pieces fit together
func main() {
	capacity := flag.Float64("capacity", 250, "Storage capacity (kWh)")
	cost := flag.Float64("cost", 350, "Capital cost ($/kWh)")
	scenario := flag.String("scenario", "base", "Revenue scenario (downside/base/upside)")
	flag.Parse()

	sc, err := model.ParseScenario(*scenario)
	if err != nil {
		panic(err)
	}

	inputs := model.ProjectInputs{
		StorageCapacityKwh: *capacity,
		CapitalCostPerKwh:  *cost,
		RevenueScenario:    sc,
		DiscountRate:       0.08,
		DebtRatio:          0.5,
		InterestRate:       0.04,
		LoanTenorYears:     7,
	}
	if err := inputs.Validate(); err != nil {
		panic(err)
	}

	res := projection.New().Project(inputs)

	fmt.Printf("BESS project: %.0f kWh / %.0f kW, $%.0f/kWh, %s scenario\n",
		inputs.StorageCapacityKwh, inputs.PowerKw(), inputs.CapitalCostPerKwh, sc)
	fmt.Printf("Capex $%.0f = equity $%.0f + debt $%.0f (payment $%.0f/yr over %d yrs)\n\n",
		res.TotalCapex, res.Equity, res.Debt, res.AnnualDebtPayment, inputs.LoanTenorYears)

	fmt.Printf("%-5s %-10s %-8s %-8s %-10s %-10s %-10s %-10s\n",
		"year", "revenue", "fee", "opex", "ebitda", "debt_svc", "net", "cum")
	for _, y := range res.Years {
		fmt.Printf("%-5d %-10.0f %-8.0f %-8.0f %-10.0f %-10.0f %-10.0f %-10.0f\n",
			y.Year, y.Revenue, y.AggregatorFee, y.Opex, y.EBITDA, y.DebtService,
			y.NetCashFlow, y.CumulativeCashFlow)
	}

	fmt.Printf("\nNPV=$%.0f  IRR=%.2f%%  Payback=%.2f yrs\n\n", res.NPV, res.IRR*100, res.PaybackYears)

	fmt.Println("Capital-cost sensitivity:")
	fmt.Printf("%-10s %-12s %-8s\n", "$/kWh", "payback_yrs", "irr_%")
	for _, p := range analysis.Sweep(inputs, nil) {
		fmt.Printf("%-10.0f %-12.2f %-8.2f\n", p.CapitalCostPerKwh, p.PaybackYears, p.IRRPercent)
	}
}
