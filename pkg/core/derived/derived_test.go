package derived

import (
	"math"
	"testing"

	"zngsim/pkg/config"
)

func closeEnough(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", name, got, want, tol)
	}
}

// S1 from SPEC_FULL.md §8 / spec.md §8: two packs, 1.28kWh, 100km/day,
// 30Wh/km, 20% buffer, 1kW/0.90-eff charger, 5 stations x 8 docks, 18h/day,
// 200-vehicle fleet.
func TestComputeScenarioS1(t *testing.T) {
	vehicle := config.VehicleConfig{
		PacksPerVehicle:          2,
		PackCapacityKWh:          1.28,
		AvgDailyKM:               100,
		EnergyConsumptionWhPerKM: 30,
		RangeAnxietyBufferPct:    0.20,
	}
	pack := config.PackSpec{NominalCapacityKWh: 1.28}
	charger := config.ChargerVariant{RatedPowerW: 1000, ChargingEfficiencyPct: 0.90}
	station := config.StationConfig{NumStations: 5, DocksPerStation: 8, OperatingHoursPerDay: 18}
	revenue := config.RevenueConfig{InitialFleetSize: 200}

	d := Compute(vehicle, pack, charger, station, nil, &revenue)

	closeEnough(t, "EnergyPerSwapCyclePerPackKWh", d.EnergyPerSwapCyclePerPackKWh, 1.024, 1e-6)
	closeEnough(t, "EnergyPerSwapCyclePerVehicleKWh", d.EnergyPerSwapCyclePerVehicleKWh, 2.048, 1e-6)
	closeEnough(t, "DailyEnergyNeedWh", d.DailyEnergyNeedWh, 3000, 1e-6)
	closeEnough(t, "SwapVisitsPerVehiclePerDay", d.SwapVisitsPerVehiclePerDay, 1.4648, 1e-3)
	closeEnough(t, "ChargeTimeMinutes", d.ChargeTimeMinutes, 85.33, 1e-2)
	closeEnough(t, "EffectiveCRate", d.EffectiveCRate, 0.78, 1e-2)
	closeEnough(t, "CyclesPerDayPerDock", d.CyclesPerDayPerDock, 12.66, 1e-2)

	if d.TotalDocks != 40 {
		t.Errorf("TotalDocks = %d, want 40", d.TotalDocks)
	}
	if d.PacksOnVehicles != 400 {
		t.Errorf("PacksOnVehicles = %d, want 400", d.PacksOnVehicles)
	}
	if d.PacksInDocks != 40 {
		t.Errorf("PacksInDocks = %d, want 40", d.PacksInDocks)
	}
	if d.TotalPacks != 440 {
		t.Errorf("TotalPacks = %d, want 440", d.TotalPacks)
	}
}

func TestComputeGuardsZeroDenominators(t *testing.T) {
	vehicle := config.VehicleConfig{PacksPerVehicle: 1, RangeAnxietyBufferPct: 1.0}
	pack := config.PackSpec{NominalCapacityKWh: 1.0}
	charger := config.ChargerVariant{RatedPowerW: 1000, ChargingEfficiencyPct: 0.9}
	station := config.StationConfig{NumStations: 1, DocksPerStation: 1, OperatingHoursPerDay: 10}

	d := Compute(vehicle, pack, charger, station, nil, nil)

	if d.SwapVisitsPerVehiclePerDay != 0 {
		t.Errorf("expected zero swap visits when energy_per_visit is zero, got %v", d.SwapVisitsPerVehiclePerDay)
	}
	if d.PackLifetimeCycles != sentinelPackLifetimeCycles {
		t.Errorf("expected sentinel pack lifetime when beta is zero, got %v", d.PackLifetimeCycles)
	}
}
