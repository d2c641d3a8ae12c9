// Package report renders a SimulationResult (plus optional DCF,
// sensitivity, and pilot-sizing results) as an investor-facing Markdown
// report. Grounded on pkg/core/utils/markdown.go's goldmark-backed
// CleanMarkdown/ValidateMarkdown helpers, which this package reuses to
// self-check its own generated output before returning it.
package report

import (
	"fmt"
	"strings"

	"zngsim/pkg/core/utils"
	"zngsim/pkg/models"
)

// Options controls which optional sections BuildReport includes.
type Options struct {
	Sensitivity *models.SensitivityResult
	PilotSizing *models.PilotSizingResult
	DSCR        *models.DSCRResult
}

// BuildReport renders result (and, if present, the DCF table attached to
// it via a separate call) into a Markdown investor report. dcf is passed
// separately since DCF computation lives in pkg/core/finance, not on
// SimulationResult itself.
func BuildReport(scenarioName string, result models.SimulationResult, dcf models.DCFResult, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — simulation report\n\n", scenarioName)
	fmt.Fprintf(&b, "Engine: `%s` · Horizon: %d months\n\n", result.EngineType, len(result.Months))

	writeSummarySection(&b, result)
	writeCPCSection(&b, result)
	writeDCFSection(&b, dcf)
	if opts.DSCR != nil {
		writeDSCRSection(&b, *opts.DSCR)
	}
	if result.MonteCarlo != nil {
		writeMonteCarloSection(&b, *result.MonteCarlo)
	}
	if opts.Sensitivity != nil {
		writeSensitivitySection(&b, *opts.Sensitivity)
	}
	if opts.PilotSizing != nil {
		writePilotSizingSection(&b, *opts.PilotSizing)
	}

	cleaned := utils.CleanMarkdown(b.String())
	if !utils.ValidateMarkdown(cleaned) {
		// goldmark is extremely permissive; this should never trigger for
		// report output built entirely from fmt.Fprintf, but keep the
		// caller honest if a future section emits something unparsable.
		return cleaned + "\n\n<!-- warning: report markdown failed validation -->\n"
	}
	return cleaned
}

func writeSummarySection(b *strings.Builder, result models.SimulationResult) {
	s := result.Summary
	fmt.Fprintf(b, "## Summary\n\n")
	fmt.Fprintf(b, "- Total net cash flow: ₹%.2f\n", s.TotalNetCashFlow)
	fmt.Fprintf(b, "- Average cost per cycle: ₹%.2f\n", s.AvgCostPerCycle)
	if s.BreakEvenMonth != nil {
		fmt.Fprintf(b, "- Break-even month: %d\n", *s.BreakEvenMonth)
	} else {
		fmt.Fprintf(b, "- Break-even month: not reached within the horizon\n")
	}
	fmt.Fprintf(b, "\n")
}

func writeCPCSection(b *strings.Builder, result models.SimulationResult) {
	w := result.CPCWaterfall
	fmt.Fprintf(b, "## Cost-per-cycle waterfall\n\n")
	fmt.Fprintf(b, "| Component | ₹/cycle |\n|---|---|\n")
	fmt.Fprintf(b, "| Battery degradation | %.2f |\n", w.Degradation)
	fmt.Fprintf(b, "| Charger | %.2f |\n", w.Charger)
	fmt.Fprintf(b, "| Electricity | %.2f |\n", w.Electricity)
	fmt.Fprintf(b, "| Real estate | %.2f |\n", w.RealEstate)
	fmt.Fprintf(b, "| Maintenance | %.2f |\n", w.Maintenance)
	fmt.Fprintf(b, "| Insurance | %.2f |\n", w.Insurance)
	fmt.Fprintf(b, "| Sabotage | %.2f |\n", w.Sabotage)
	fmt.Fprintf(b, "| Logistics | %.2f |\n", w.Logistics)
	fmt.Fprintf(b, "| Overhead | %.2f |\n", w.Overhead)
	fmt.Fprintf(b, "| **Total** | **%.2f** |\n\n", w.Total)
}

func writeDCFSection(b *strings.Builder, dcf models.DCFResult) {
	fmt.Fprintf(b, "## Discounted cash flow\n\n")
	fmt.Fprintf(b, "- NPV: ₹%.2f\n", dcf.NPV)
	if dcf.IRR != nil {
		fmt.Fprintf(b, "- IRR (annual): %.2f%%\n", *dcf.IRR*100)
	} else {
		fmt.Fprintf(b, "- IRR (annual): not resolvable (no sign change in cash flows)\n")
	}
	if dcf.DiscountedPaybackMonth != nil {
		fmt.Fprintf(b, "- Discounted payback: month %d\n", *dcf.DiscountedPaybackMonth)
	}
	fmt.Fprintf(b, "- Terminal value: ₹%.2f (method: `%s`)\n\n", dcf.TerminalValue, dcf.TerminalValueMethodUsed)
}

func writeDSCRSection(b *strings.Builder, dscr models.DSCRResult) {
	fmt.Fprintf(b, "## Debt service coverage\n\n")
	fmt.Fprintf(b, "- Minimum DSCR: %.2f\n", dscr.MinDSCR)
	fmt.Fprintf(b, "- Covenant breach months: %d\n\n", len(dscr.BreachMonths))
}

func writeMonteCarloSection(b *strings.Builder, mc models.MonteCarloSummary) {
	fmt.Fprintf(b, "## Monte Carlo (%d runs)\n\n", mc.NumRuns)
	fmt.Fprintf(b, "| Percentile | Net cash flow | Cost per cycle |\n|---|---|---|\n")
	fmt.Fprintf(b, "| P10 | ₹%.2f | ₹%.2f |\n", mc.NCFP10, mc.CPCP10)
	fmt.Fprintf(b, "| P50 | ₹%.2f | ₹%.2f |\n", mc.NCFP50, mc.CPCP50)
	fmt.Fprintf(b, "| P90 | ₹%.2f | ₹%.2f |\n\n", mc.NCFP90, mc.CPCP90)
}

func writeSensitivitySection(b *strings.Builder, sens models.SensitivityResult) {
	fmt.Fprintf(b, "## Sensitivity (tornado, base NPV ₹%.2f)\n\n", sens.BaseNPV)
	fmt.Fprintf(b, "| Parameter | Low | High | ΔNPV |\n|---|---|---|---|\n")
	for _, bar := range sens.Bars {
		fmt.Fprintf(b, "| %s | ₹%.2f | ₹%.2f | ₹%.2f |\n", bar.ParamName, bar.NPVAtLow, bar.NPVAtHigh, bar.DeltaNPV)
	}
	fmt.Fprintf(b, "\n")
}

func writePilotSizingSection(b *strings.Builder, pilot models.PilotSizingResult) {
	fmt.Fprintf(b, "## Pilot sizing\n\n")
	fmt.Fprintf(b, "- Target: `%s` at %.0f%% confidence\n", pilot.TargetMetric, pilot.TargetConfidencePct)
	fmt.Fprintf(b, "- Recommended fleet size: %d\n", pilot.RecommendedFleetSize)
	fmt.Fprintf(b, "- Achieved: %v\n\n", pilot.Achieved)
}
