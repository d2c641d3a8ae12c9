package engine

import (
	"testing"

	"zngsim/pkg/config"
)

func TestRunStaticProducesOneRowPerMonth(t *testing.T) {
	scenario := config.DefaultScenario()
	result := RunStatic(scenario, scenario.ChargerVariants[0])

	if len(result.Months) != scenario.Simulation.HorizonMonths {
		t.Fatalf("expected %d monthly rows, got %d", scenario.Simulation.HorizonMonths, len(result.Months))
	}
	if result.EngineType != config.EngineStatic {
		t.Errorf("expected engine_type %q, got %q", config.EngineStatic, result.EngineType)
	}
	first := result.Months[0]
	if first.CapexThisMonth <= 0 {
		t.Errorf("expected month 1 CapEx to include the initial build-out, got %v", first.CapexThisMonth)
	}
	last := result.Months[len(result.Months)-1]
	if last.Month != scenario.Simulation.HorizonMonths {
		t.Errorf("expected last row's Month to equal horizon %d, got %d", scenario.Simulation.HorizonMonths, last.Month)
	}
}

func TestRunStaticFlatFleetHasConstantCycles(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Revenue.MonthlyFleetAdditions = 0
	result := RunStatic(scenario, scenario.ChargerVariants[0])

	want := result.Months[1].TotalCycles
	for _, m := range result.Months[1:] {
		if m.TotalCycles != want {
			t.Errorf("month %d: expected constant total_cycles %d with a flat fleet, got %d", m.Month, want, m.TotalCycles)
		}
	}
}

func TestRunStaticGrowingFleetIncreasesCycles(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Revenue.MonthlyFleetAdditions = 10
	result := RunStatic(scenario, scenario.ChargerVariants[0])

	if result.Months[len(result.Months)-1].TotalCycles <= result.Months[0].TotalCycles {
		t.Errorf("expected total_cycles to grow with monthly fleet additions, first=%d last=%d",
			result.Months[0].TotalCycles, result.Months[len(result.Months)-1].TotalCycles)
	}
}
