package sensitivity

import (
	"math"
	"testing"

	"zngsim/pkg/config"
)

func TestRunProducesOneBarPerDefaultSweep(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Simulation.HorizonMonths = 24
	charger := scenario.ChargerVariants[0]

	result := Run(scenario, charger)

	if len(result.Bars) != len(DefaultSweeps) {
		t.Fatalf("expected %d tornado bars, got %d", len(DefaultSweeps), len(result.Bars))
	}
}

func TestRunSortsBarsByDeltaNPVDescending(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Simulation.HorizonMonths = 24
	charger := scenario.ChargerVariants[0]

	result := Run(scenario, charger)

	for i := 1; i < len(result.Bars); i++ {
		if result.Bars[i].DeltaNPV > result.Bars[i-1].DeltaNPV {
			t.Errorf("bar %d (delta %v) should not exceed bar %d (delta %v)",
				i, result.Bars[i].DeltaNPV, i-1, result.Bars[i-1].DeltaNPV)
		}
	}
}

func TestRunSweepsOffsetsMatchConfiguredPercentages(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Simulation.HorizonMonths = 24
	charger := scenario.ChargerVariants[0]

	result := RunSweeps(scenario, charger, DefaultSweeps)

	for i, bar := range result.Bars {
		_ = i
		sweep := findSweep(bar.ParamName)
		if sweep == nil {
			t.Fatalf("bar %q does not match any configured sweep", bar.ParamName)
		}
		wantLow := bar.BaseValue * (1 + sweep.lowPct)
		wantHigh := bar.BaseValue * (1 + sweep.highPct)
		if math.Abs(bar.LowValue-wantLow) > 0.5 {
			t.Errorf("%s: low value %v does not match expected %v", bar.ParamName, bar.LowValue, wantLow)
		}
		if math.Abs(bar.HighValue-wantHigh) > 0.5 {
			t.Errorf("%s: high value %v does not match expected %v", bar.ParamName, bar.HighValue, wantHigh)
		}
	}
}

func findSweep(name string) *sweepParam {
	for i := range DefaultSweeps {
		if DefaultSweeps[i].name == name {
			return &DefaultSweeps[i]
		}
	}
	return nil
}

func TestRunBaseNPVIsFinite(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Simulation.HorizonMonths = 24
	charger := scenario.ChargerVariants[0]

	result := Run(scenario, charger)

	if math.IsNaN(result.BaseNPV) || math.IsInf(result.BaseNPV, 0) {
		t.Errorf("expected a finite base NPV, got %v", result.BaseNPV)
	}
}
