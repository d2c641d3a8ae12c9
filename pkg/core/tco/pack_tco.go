package tco

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// ComputePackTCO computes the pack fleet's expected failure, repair, and
// replacement costs over the simulation horizon. Unlike charger TCO,
// purchase cost is excluded — pack purchase CapEx is booked via the
// cost-per-cycle degradation component instead (see pkg/core/cpc).
func ComputePackTCO(pack config.PackSpec, d models.DerivedParams, vehicle config.VehicleConfig, revenue config.RevenueConfig, simulation config.SimulationConfig, station config.StationConfig, initialPacks int) models.PackTCOBreakdown {
	var out models.PackTCOBreakdown

	horizonYears := float64(simulation.HorizonMonths) / 12.0
	// Packs operate whenever the network does — use station operating
	// hours as the fleet-wide proxy for pack duty cycle, same as the
	// charger calculation.
	scheduledHoursPerYearPerPack := station.OperatingHoursPerDay * 365
	fleetOperatingHours := scheduledHoursPerYearPerPack * horizonYears * float64(initialPacks)

	if pack.MTBFHours > 0 {
		out.ExpectedFailures = fleetOperatingHours / pack.MTBFHours
	}

	out.TotalRepairCost = out.ExpectedFailures * pack.RepairCostPerEvent

	if pack.ReplacementThreshold > 0 {
		out.NumReplacements = int(math.Floor(out.ExpectedFailures / float64(pack.ReplacementThreshold)))
	}
	out.TotalReplacementCost = float64(out.NumReplacements) * pack.FullReplacementCost

	out.TotalFailureTCO = out.TotalRepairCost + out.TotalReplacementCost

	var cyclesPerHour float64
	if station.OperatingHoursPerDay > 0 {
		cyclesPerHour = d.CyclesPerDayPerDock / station.OperatingHoursPerDay
	}
	downtimeHours := out.ExpectedFailures * pack.MTTRHours
	fleetUptimeHours := fleetOperatingHours - downtimeHours
	var fleetCycles float64
	if cyclesPerHour > 0 {
		fleetCycles = cyclesPerHour * fleetUptimeHours
	}
	if fleetCycles > 0 {
		out.FailureCostPerCycle = out.TotalFailureTCO / fleetCycles
	}

	return out
}
