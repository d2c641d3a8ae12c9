package finance

import (
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/derived"
	"zngsim/pkg/core/tco"
)

func TestComputeChargerNPVProducesOneRowPerMonth(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	chargerTCO := tco.ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)

	npv := ComputeChargerNPV(charger, chargerTCO, scenario.Simulation)

	if len(npv.MonthlyDiscountedCPC) != scenario.Simulation.HorizonMonths {
		t.Fatalf("expected %d monthly discounted CPC entries, got %d", scenario.Simulation.HorizonMonths, len(npv.MonthlyDiscountedCPC))
	}
	if npv.NPVTCO <= 0 {
		t.Errorf("expected a positive NPV TCO for a charger with real purchase cost, got %v", npv.NPVTCO)
	}
	if npv.ChargerName != charger.Name {
		t.Errorf("expected charger name to round-trip, got %q", npv.ChargerName)
	}
}
