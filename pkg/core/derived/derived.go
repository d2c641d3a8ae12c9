// Package derived computes the L1 operational parameters shared by every
// downstream layer (TCO, cost-per-cycle, engines) from a scenario's raw
// physical inputs. Grounded on engine/derived.py.
package derived

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// sentinelPackLifetimeCycles is returned when the effective degradation
// rate is zero (a pack that never degrades), matching the Python
// engine's 999_999-cycle sentinel for "effectively infinite".
const sentinelPackLifetimeCycles = 999_999

// Compute derives L1 parameters for one (vehicle, pack, charger, station)
// combination, optionally adjusted by chaos (aggressiveness) and revenue
// (initial fleet size) inputs.
func Compute(vehicle config.VehicleConfig, pack config.PackSpec, charger config.ChargerVariant, station config.StationConfig, chaos *config.ChaosConfig, revenue *config.RevenueConfig) models.DerivedParams {
	var d models.DerivedParams

	energyPerPack := pack.NominalCapacityKWh * (1 - vehicle.RangeAnxietyBufferPct)
	d.EnergyPerSwapCyclePerPackKWh = round4(energyPerPack)
	energyPerVehicle := float64(vehicle.PacksPerVehicle) * energyPerPack
	d.EnergyPerSwapCyclePerVehicleKWh = round4(energyPerVehicle)
	totalEnergyPerVehicle := float64(vehicle.PacksPerVehicle) * pack.NominalCapacityKWh
	d.TotalEnergyPerVehicleKWh = round4(totalEnergyPerVehicle)

	dailyNeedWh := vehicle.AvgDailyKM * vehicle.EnergyConsumptionWhPerKM
	d.DailyEnergyNeedWh = round1(dailyNeedWh)
	energyPerVisitWh := energyPerVehicle * 1000
	d.EnergyPerVisitWh = round1(energyPerVisitWh)

	if energyPerVisitWh > 0 {
		d.SwapVisitsPerVehiclePerDay = round4(dailyNeedWh / energyPerVisitWh)
	}

	ratedPowerKW := charger.RatedPowerW / 1000
	d.RatedPowerKW = round4(ratedPowerKW)

	denom := ratedPowerKW * charger.ChargingEfficiencyPct
	if denom > 0 {
		d.ChargeTimeMinutes = round2((pack.NominalCapacityKWh / denom) * 60)
	} else {
		d.ChargeTimeMinutes = math.Inf(1)
	}

	if pack.NominalCapacityKWh > 0 {
		d.EffectiveCRate = round4(ratedPowerKW / pack.NominalCapacityKWh)
	}

	if d.ChargeTimeMinutes > 0 && !math.IsInf(d.ChargeTimeMinutes, 1) {
		d.CyclesPerDayPerDock = round2((station.OperatingHoursPerDay * 60) / d.ChargeTimeMinutes)
	}

	betaFraction := pack.CycleDegradationRatePct / 100
	d.BetaFraction = round6(betaFraction)

	aggressiveness := 1.0
	if chaos != nil {
		aggressiveness = chaos.AggressivenessIndex
	}
	effectiveBeta := betaFraction * aggressiveness
	d.EffectiveBeta = round6(effectiveBeta)

	sohBudget := 1 - pack.RetirementSOHPct
	d.SOHBudget = round4(sohBudget)

	if effectiveBeta > 0 {
		d.PackLifetimeCycles = int(math.Floor(sohBudget / effectiveBeta))
	} else {
		d.PackLifetimeCycles = sentinelPackLifetimeCycles
	}

	d.TotalDocks = station.NumStations * station.DocksPerStation
	d.CyclesPerMonthPerStation = round2(d.CyclesPerDayPerDock * float64(station.DocksPerStation) * 30)
	d.TotalNetworkCyclesPerMonth = round2(d.CyclesPerMonthPerStation * float64(station.NumStations))

	if revenue != nil {
		d.InitialFleetSize = revenue.InitialFleetSize
	}
	d.PacksOnVehicles = vehicle.PacksPerVehicle * d.InitialFleetSize
	d.PacksInDocks = d.TotalDocks
	d.TotalPacks = d.PacksOnVehicles + d.PacksInDocks

	return d
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round6(v float64) float64 { return math.Round(v*1_000_000) / 1_000_000 }
