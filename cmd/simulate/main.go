// Command simulate is a CLI entrypoint: it loads a scenario file, runs the
// engine the scenario selects, and prints a summary to stdout. Grounded on
// cmd/api/main.go's godotenv + yaml config-loading pattern, generalized from
// a long-running server into a single-shot CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"zngsim/pkg/core/cfgio"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
	"zngsim/pkg/core/report"
	"zngsim/pkg/core/validate"
	"zngsim/pkg/models"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario file (.yaml, .yml, or .hjson)")
	chargerIndex := flag.Int("charger-index", 0, "index into the scenario's charger_variants to run")
	reportPath := flag.String("report", "", "optional path to write a Markdown investor report")
	envPath := flag.String("env", "", "optional .env file for process-level defaults")
	flag.Parse()

	if *scenarioPath == "" {
		fmt.Println("[FATAL] -scenario is required")
		os.Exit(1)
	}

	cfgio.LoadEnv(*envPath)

	scenario, err := cfgio.LoadScenario(*scenarioPath)
	if err != nil {
		fmt.Printf("[FATAL] failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	if *chargerIndex < 0 || *chargerIndex >= len(scenario.ChargerVariants) {
		fmt.Printf("[FATAL] charger-index %d out of range (scenario has %d variants)\n", *chargerIndex, len(scenario.ChargerVariants))
		os.Exit(1)
	}
	charger := scenario.ChargerVariants[*chargerIndex]

	fmt.Printf("[INFO] Running %q engine for charger variant %q over %d months...\n",
		scenario.Simulation.Engine, charger.Name, scenario.Simulation.HorizonMonths)

	result := engine.Run(scenario, charger)

	salvage := float64(result.Derived.TotalPacks) * scenario.Pack.SecondLifeSalvageValue
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, salvage)

	printSummary(result, dcf)

	if *reportPath != "" {
		md := report.BuildReport(scenarioName(*scenarioPath), result, dcf, report.Options{})
		if err := os.WriteFile(*reportPath, []byte(md), 0644); err != nil {
			fmt.Printf("[WARNING] failed to write report to %s: %v\n", *reportPath, err)
		} else {
			fmt.Printf("[INFO] report written to %s\n", *reportPath)
		}
	}
}

func printSummary(result models.SimulationResult, dcf models.DCFResult) {
	s := result.Summary
	fmt.Printf("[INFO] engine: %s\n", result.EngineType)
	fmt.Printf("[INFO] total revenue: %.2f, total opex: %.2f, total capex: %.2f\n", s.TotalRevenue, s.TotalOpex, s.TotalCapex)
	fmt.Printf("[INFO] total net cash flow: %.2f\n", s.TotalNetCashFlow)
	fmt.Printf("[INFO] average cost per cycle: %.2f\n", s.AvgCostPerCycle)
	if s.BreakEvenMonth != nil {
		fmt.Printf("[INFO] break-even month: %d\n", *s.BreakEvenMonth)
	} else {
		fmt.Println("[INFO] break-even month: not reached within the horizon")
	}
	fmt.Printf("[INFO] NPV: %.2f\n", dcf.NPV)
	if dcf.IRR != nil {
		fmt.Printf("[INFO] IRR (annual): %.2f%%\n", *dcf.IRR*100)
	}

	if len(result.Months) >= 24 {
		year1Revenue := sumRevenue(result.Months[:12])
		lastYearRevenue := sumRevenue(result.Months[len(result.Months)-12:])
		years := len(result.Months) / 12
		cagr := validate.CalculateCAGR(year1Revenue, lastYearRevenue, years-1)
		fmt.Printf("[INFO] revenue CAGR (year 1 -> year %d): %.1f%%\n", years, cagr)
	}

	if result.MonteCarlo != nil {
		mc := *result.MonteCarlo
		fmt.Printf("[INFO] Monte Carlo (%d runs): NCF P10/P50/P90 = %.2f / %.2f / %.2f\n", mc.NumRuns, mc.NCFP10, mc.NCFP50, mc.NCFP90)
	}
}

func sumRevenue(months []models.MonthlySnapshot) float64 {
	var total float64
	for _, m := range months {
		total += m.Revenue
	}
	return total
}

func scenarioName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
