package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"bess-economics/internal/analysis"
	"bess-economics/internal/config"
	"bess-economics/internal/model"
	"bess-economics/internal/projection"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/config.yaml --out results/cash_flow.csv")
	fmt.Println("  cli sweep --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project outputs the year-by-year cash-flow ledger plus NPV/IRR/payback")
	fmt.Println("  - sweep recomputes payback and IRR across a capital-cost axis")
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: output CSV path for the cash-flow ledger")
	capacity := fs.Float64("capacity", 0, "Optional: override storage capacity (kWh)")
	cost := fs.Float64("cost", 0, "Optional: override capital cost ($/kWh)")
	scenario := fs.String("scenario", "", "Optional: override revenue scenario (downside/base/upside)")
	_ = fs.Parse(args)

	inputs := loadInputs(*cfgPath, *capacity, *cost, *scenario)

	res := projection.New().Project(inputs)
	printReport(inputs, res)

	if *outPath != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := projection.WriteCashFlowCSVFile(*outPath, res.Years); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(res.Years), *outPath)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	inputs, err := cfg.Project.ToModelInputs()
	if err != nil {
		fatal(err)
	}

	points := analysis.Sweep(inputs, cfg.Sensitivity.CapitalCostAxis)

	fmt.Printf("%-14s %-14s %-10s\n", "$/kWh", "payback_yrs", "irr_%")
	for _, p := range points {
		fmt.Printf("%-14.0f %-14.2f %-10.2f\n", p.CapitalCostPerKwh, p.PaybackYears, p.IRRPercent)
	}
}

func loadInputs(cfgPath string, capacity, cost float64, scenario string) model.ProjectInputs {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.LoadUnchecked(cfgPath)
	if err != nil {
		fatal(err)
	}

	// Flag overrides beat config values, same precedence as project_file merging.
	override := config.ProjectConfig{
		StorageCapacityKwh: capacity,
		CapitalCostPerKwh:  cost,
		RevenueScenario:    scenario,
	}
	cfg.Project = config.MergeProject(cfg.Project, override)
	if cfg.Project.RevenueScenario == "" {
		cfg.Project.RevenueScenario = string(model.ScenarioBase)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	inputs, err := cfg.Project.ToModelInputs()
	if err != nil {
		fatal(err)
	}
	return inputs
}

func printReport(inputs model.ProjectInputs, res *projection.Result) {
	fmt.Printf("Scenario=%s Capacity=%.0fkWh Power=%.0fkW\n",
		inputs.RevenueScenario, inputs.StorageCapacityKwh, inputs.PowerKw())
	fmt.Printf("Capex=$%.0f Equity=$%.0f Debt=$%.0f DebtPayment=$%.0f/yr\n",
		res.TotalCapex, res.Equity, res.Debt, res.AnnualDebtPayment)
	fmt.Printf("NPV=$%.0f IRR=%.2f%% Payback=%.2fyrs EBITDA margin (yr1)=%.1f%%\n",
		res.NPV, res.IRR*100, res.PaybackYears, res.EBITDAMarginYear1*100)
	fmt.Println()

	fmt.Printf("%-5s %-12s %-10s %-10s %-12s %-12s %-12s %-12s\n",
		"year", "revenue", "fee", "opex", "ebitda", "debt_svc", "net", "cumulative")
	for _, y := range res.Years {
		fmt.Printf("%-5d %-12.0f %-10.0f %-10.0f %-12.0f %-12.0f %-12.0f %-12.0f\n",
			y.Year, y.Revenue, y.AggregatorFee, y.Opex, y.EBITDA, y.DebtService,
			y.NetCashFlow, y.CumulativeCashFlow)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
