package tco

import (
	"math"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/derived"
)

func TestComputeChargerTCOZeroMTBFHasNoExpectedFailures(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	charger.MTBFHours = 0
	charger.MTTRHours = 0

	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	out := ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)

	if out.ExpectedFailuresOverHorizon != 0 {
		t.Errorf("expected zero failures with zero MTBF, got %v", out.ExpectedFailuresOverHorizon)
	}
	if out.Availability != 1.0 {
		t.Errorf("expected availability 1.0 when MTBF+MTTR is zero, got %v", out.Availability)
	}
}

func TestComputeChargerTCOAccumulatesFailureAndPurchaseCost(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]

	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	out := ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)

	if out.ExpectedFailuresOverHorizon <= 0 {
		t.Error("expected positive expected failures over the horizon for a populated scenario")
	}
	if out.FleetPurchaseCost != charger.PurchaseCostPerSlot*float64(d.TotalDocks) {
		t.Errorf("fleet purchase cost = %v, want %v", out.FleetPurchaseCost, charger.PurchaseCostPerSlot*float64(d.TotalDocks))
	}
	wantTotal := out.FleetPurchaseCost + out.TotalRepairCost + out.TotalReplacementCost + out.LostRevenue + out.FleetSpareCost
	if math.Abs(out.TotalTCO-wantTotal) > 1e-9 {
		t.Errorf("TotalTCO = %v, want %v", out.TotalTCO, wantTotal)
	}
}

func TestComputePackTCOExcludesPurchaseCost(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]

	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	out := ComputePackTCO(scenario.Pack, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station, d.TotalPacks)

	wantTCO := out.TotalRepairCost + out.TotalReplacementCost
	if math.Abs(out.TotalFailureTCO-wantTCO) > 1e-9 {
		t.Errorf("TotalFailureTCO = %v, want %v (repair+replacement only, no purchase cost)", out.TotalFailureTCO, wantTCO)
	}
}

func TestComputePackTCOZeroReplacementThresholdSkipsReplacements(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	pack := scenario.Pack
	pack.ReplacementThreshold = 0

	d := derived.Compute(scenario.Vehicle, pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	out := ComputePackTCO(pack, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station, d.TotalPacks)

	if out.NumReplacements != 0 {
		t.Errorf("expected zero replacements when threshold is zero, got %d", out.NumReplacements)
	}
	if out.TotalReplacementCost != 0 {
		t.Errorf("expected zero replacement cost when threshold is zero, got %v", out.TotalReplacementCost)
	}
}
