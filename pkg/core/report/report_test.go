package report

import (
	"strings"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
)

func TestBuildReportIncludesCoreSections(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, 0)

	out := BuildReport("pilot-scenario", result, dcf, Options{})

	for _, want := range []string{"# pilot-scenario", "## Summary", "## Cost-per-cycle waterfall", "## Discounted cash flow"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
}

func TestBuildReportOmitsMonteCarloSectionForStaticRuns(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, 0)

	out := BuildReport("pilot-scenario", result, dcf, Options{})

	if strings.Contains(out, "## Monte Carlo") {
		t.Error("expected no Monte Carlo section for a static-engine run")
	}
}
