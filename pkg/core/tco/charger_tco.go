// Package tco computes the L2 component-level total-cost-of-ownership
// breakdowns for chargers and packs from their MTBF/MTTR failure models.
// Grounded on engine/charger_tco.py and engine/pack_tco.py.
package tco

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// ComputeChargerTCO computes the charger fleet's expected failure,
// replacement, downtime, and lost-revenue costs over the simulation
// horizon, plus the steady-state purchase and spares CapEx.
func ComputeChargerTCO(charger config.ChargerVariant, d models.DerivedParams, vehicle config.VehicleConfig, revenue config.RevenueConfig, simulation config.SimulationConfig, station config.StationConfig) models.ChargerTCOBreakdown {
	var out models.ChargerTCOBreakdown

	horizonYears := float64(simulation.HorizonMonths) / 12.0
	scheduledHoursPerYearPerDock := station.OperatingHoursPerDay * 365
	fleetOperatingHours := scheduledHoursPerYearPerDock * horizonYears * float64(d.TotalDocks)

	if charger.MTBFHours > 0 {
		out.ExpectedFailuresOverHorizon = fleetOperatingHours / charger.MTBFHours
	}

	if charger.MTBFHours+charger.MTTRHours > 0 {
		out.Availability = charger.MTBFHours / (charger.MTBFHours + charger.MTTRHours)
	} else {
		out.Availability = 1.0
	}

	out.TotalRepairCost = out.ExpectedFailuresOverHorizon * charger.RepairCostPerEvent

	if charger.ReplacementThreshold > 0 {
		out.NumReplacements = int(math.Floor(out.ExpectedFailuresOverHorizon / float64(charger.ReplacementThreshold)))
	}
	out.TotalReplacementCost = float64(out.NumReplacements) * charger.FullReplacementCost

	out.TotalDowntimeHours = out.ExpectedFailuresOverHorizon * charger.MTTRHours

	var cyclesPerHour float64
	if station.OperatingHoursPerDay > 0 {
		cyclesPerHour = d.CyclesPerDayPerDock / station.OperatingHoursPerDay
	}

	var revenuePerCycle float64
	if vehicle.PacksPerVehicle > 0 {
		revenuePerCycle = revenue.PricePerSwap / float64(vehicle.PacksPerVehicle)
	}
	out.LostRevenue = out.TotalDowntimeHours * cyclesPerHour * revenuePerCycle

	out.FleetPurchaseCost = charger.PurchaseCostPerSlot * float64(d.TotalDocks)
	out.FleetSpareCost = charger.SpareInventoryCost * float64(station.NumStations)

	out.TotalTCO = out.FleetPurchaseCost + out.TotalRepairCost + out.TotalReplacementCost + out.LostRevenue + out.FleetSpareCost

	out.FleetUptimeHours = fleetOperatingHours - out.TotalDowntimeHours
	if cyclesPerHour > 0 {
		out.FleetCyclesServed = cyclesPerHour * out.FleetUptimeHours
	}
	if out.FleetCyclesServed > 0 {
		out.CostPerCycle = out.TotalTCO / out.FleetCyclesServed
	}

	return out
}
