package narrative

import (
	"strings"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
)

func TestBuildExecutiveSummaryPromptIncludesKeyFigures(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, 0)

	prompt, systemPrompt := BuildExecutiveSummaryPrompt("pilot-scenario", result, dcf)

	if !strings.Contains(prompt, "pilot-scenario") {
		t.Error("expected prompt to include the scenario name")
	}
	if !strings.Contains(prompt, "Total net cash flow") {
		t.Error("expected prompt to include total net cash flow")
	}
	if !strings.Contains(prompt, "NPV") {
		t.Error("expected prompt to include NPV")
	}
	if systemPrompt == "" {
		t.Error("expected a non-empty system prompt")
	}
}

func TestBuildExecutiveSummaryPromptOmitsMonteCarloForStaticRuns(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, 0)

	prompt, _ := BuildExecutiveSummaryPrompt("pilot-scenario", result, dcf)

	if strings.Contains(prompt, "Monte Carlo") {
		t.Error("expected no Monte Carlo section for a static-engine run")
	}
}

func TestGeminiProviderAdaptInstructionsIsPassthrough(t *testing.T) {
	p := &GeminiProvider{}
	if got := p.AdaptInstructions("raw text"); got != "raw text" {
		t.Errorf("expected pass-through, got %q", got)
	}
}
