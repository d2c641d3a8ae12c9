// Package cpc builds the L3 nine-component cost-per-cycle waterfall from
// derived params, component TCOs, and monthly operating costs. Grounded on
// engine/cost_per_cycle.py.
package cpc

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// ComputeWaterfall builds the steady-state cost-per-cycle breakdown. If
// derived.TotalNetworkCyclesPerMonth <= 0 the result is an all-zero
// waterfall (no cycles to amortize costs over).
func ComputeWaterfall(d models.DerivedParams, pack config.PackSpec, charger config.ChargerVariant, opex config.OpExConfig, chaos config.ChaosConfig, station config.StationConfig, vehicle config.VehicleConfig, chargerTCO models.ChargerTCOBreakdown, packTCO models.PackTCOBreakdown) models.CostPerCycleWaterfall {
	var w models.CostPerCycleWaterfall

	cyclesPerMonth := d.CyclesPerMonthPerStation
	if cyclesPerMonth <= 0 {
		return w
	}

	if d.PackLifetimeCycles > 0 {
		w.Degradation = (pack.UnitCost - pack.SecondLifeSalvageValue) / float64(d.PackLifetimeCycles)
	}
	w.Degradation += packTCO.FailureCostPerCycle

	w.Charger = chargerTCO.CostPerCycle

	var energyDrawnKWh float64
	if charger.ChargingEfficiencyPct > 0 {
		energyDrawnKWh = pack.NominalCapacityKWh / charger.ChargingEfficiencyPct
	}
	w.Electricity = energyDrawnKWh * opex.ElectricityTariffPerKWh

	w.RealEstate = opex.RentPerMonthPerStation / cyclesPerMonth

	maintenance := opex.PreventiveMaintenancePerMonthPerStation + opex.CorrectiveMaintenancePerMonthPerStation
	w.Maintenance = maintenance / cyclesPerMonth

	w.Insurance = opex.InsurancePerMonthPerStation / cyclesPerMonth

	// Sabotage uses docks_per_station as a steady-state proxy for the
	// number of packs exposed at a station — NOT pack.AggressivenessMultiplier
	// and NOT the live active pack count the stochastic engine uses (see
	// DESIGN.md Open Question resolution #2: this is one of two
	// intentionally different sabotage formulas in the codebase).
	sabotageMonthlyLossPerStation := chaos.SabotagePctPerMonth * float64(station.DocksPerStation) * pack.UnitCost
	w.Sabotage = sabotageMonthlyLossPerStation / cyclesPerMonth

	w.Logistics = opex.LogisticsPerMonthPerStation / cyclesPerMonth

	if d.TotalNetworkCyclesPerMonth > 0 {
		w.Overhead = opex.OverheadPerMonth / d.TotalNetworkCyclesPerMonth
	}

	w.Total = w.Degradation + w.Charger + w.Electricity + w.RealEstate + w.Maintenance + w.Insurance + w.Sabotage + w.Logistics + w.Overhead

	w.Degradation = round4(w.Degradation)
	w.Charger = round4(w.Charger)
	w.Electricity = round4(w.Electricity)
	w.RealEstate = round4(w.RealEstate)
	w.Maintenance = round4(w.Maintenance)
	w.Insurance = round4(w.Insurance)
	w.Sabotage = round4(w.Sabotage)
	w.Logistics = round4(w.Logistics)
	w.Overhead = round4(w.Overhead)
	w.Total = round4(w.Total)

	return w
}
