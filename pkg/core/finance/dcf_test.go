package finance

import (
	"math"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/models"
)

func TestComputeNPVOfAllZeroCashFlowsIsZero(t *testing.T) {
	cashFlows := make([]float64, 12)
	if got := ComputeNPV(cashFlows, 0.12); got != 0 {
		t.Errorf("expected NPV of all-zero cash flows to be 0, got %v", got)
	}
}

func TestComputeIRRRequiresSignChange(t *testing.T) {
	allNegative := []float64{-100, -50, -25}
	if irr := ComputeIRR(allNegative); irr != nil {
		t.Errorf("expected nil IRR for all-negative cash flows, got %v", *irr)
	}

	investAndReturn := []float64{-1000, 200, 300, 400, 500, 600}
	irr := ComputeIRR(investAndReturn)
	if irr == nil {
		t.Fatal("expected a resolvable IRR for a classic invest-then-return series")
	}
	if npv := ComputeNPV(investAndReturn, *irr); math.Abs(npv) > 1.0 {
		t.Errorf("IRR %v should produce ~zero NPV, got %v", *irr, npv)
	}
}

func TestComputeTerminalValueGordonGrowthFallsBackWhenRateBelowGrowth(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	cfg.TerminalValueMethod = config.TerminalValueGordonGrowth
	cfg.TerminalGrowthRate = 0.10

	_, method := ComputeTerminalValue(cfg, 100_000, 500_000, 0.05, 60)
	if method != terminalValueMethodGordonFallback {
		t.Errorf("expected fallback to salvage when r <= g, got method=%q", method)
	}

	_, method = ComputeTerminalValue(cfg, 100_000, 500_000, 0.20, 60)
	if method != config.TerminalValueGordonGrowth {
		t.Errorf("expected gordon_growth to be used when r > g, got method=%q", method)
	}
}

func TestBuildDCFTableOnStaticEngineRun(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])

	dcf := BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, 0)

	if len(dcf.MonthlyDCF) != len(result.Months) {
		t.Fatalf("expected one DCF row per month, got %d for %d months", len(dcf.MonthlyDCF), len(result.Months))
	}
	if dcf.TerminalValueMethodUsed == "" {
		t.Error("expected TerminalValueMethodUsed to be set")
	}
	for i := 1; i < len(dcf.MonthlyDCF); i++ {
		if dcf.MonthlyDCF[i].DiscountFactor >= dcf.MonthlyDCF[i-1].DiscountFactor {
			t.Errorf("expected discount factor to strictly decrease month over month at month %d", i+1)
		}
	}
}

func TestBuildDCFTableEmptyMonthsIsZero(t *testing.T) {
	dcf := BuildDCFTable([]models.MonthlySnapshot{}, config.DefaultFinanceConfig(), 0.12, 0)
	if dcf.NPV != 0 || dcf.TerminalValue != 0 || len(dcf.MonthlyDCF) != 0 {
		t.Errorf("expected zero-valued DCF result for empty input, got %+v", dcf)
	}
}
