// Package engine implements the L4a deterministic and L4b stochastic
// monthly simulation engines, plus the L5 Monte-Carlo orchestrator.
// Grounded on engine/cashflow.py (static), engine/orchestrator.py
// (stochastic + Monte Carlo), engine/demand.py, engine/degradation.py, and
// engine/charger_reliability.py.
package engine

import (
	"math"

	"github.com/google/uuid"

	"zngsim/pkg/config"
	"zngsim/pkg/core/cpc"
	"zngsim/pkg/core/derived"
	"zngsim/pkg/core/tco"
	"zngsim/pkg/models"
)

// DaysPerMonth is the fixed month length used by the static and stochastic
// monthly loops (see SPEC_FULL.md §6 constants).
const DaysPerMonth = 30

// initialCapex bundles the one-time, month-1 CapEx components shared by
// both engines.
type initialCapex struct {
	Station float64
	Charger float64
	Pack    float64
	Total   float64
}

func computeInitialCapex(station config.StationConfig, charger config.ChargerVariant, pack config.PackSpec, totalDocks, initialPacks int) initialCapex {
	c := initialCapex{}
	c.Station = station.PerStationCapex()*float64(station.NumStations) + station.SoftwareCost
	c.Charger = charger.PurchaseCostPerSlot * float64(totalDocks)
	c.Pack = float64(initialPacks) * pack.UnitCost
	c.Total = c.Station + c.Charger + c.Pack
	return c
}

// RunStatic runs the deterministic monthly engine (L4a): CapEx for charger
// and pack failures is spread uniformly across the horizon, the fleet ramps
// linearly, and demand is fully deterministic.
func RunStatic(scenario config.Scenario, charger config.ChargerVariant) models.SimulationResult {
	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	chargerTCO := tco.ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)
	initialPacks := d.TotalPacks
	capex := computeInitialCapex(scenario.Station, charger, scenario.Pack, d.TotalDocks, initialPacks)
	packTCO := tco.ComputePackTCO(scenario.Pack, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station, initialPacks)
	waterfall := cpc.ComputeWaterfall(d, scenario.Pack, charger, scenario.OpEx, scenario.Chaos, scenario.Station, scenario.Vehicle, chargerTCO, packTCO)

	horizon := scenario.Simulation.HorizonMonths
	months := make([]models.MonthlySnapshot, 0, horizon)

	var cumulativeCF float64
	var breakEvenMonth *int
	var totalRevenue, totalOpex, totalCapex, totalCycles, totalCycleWeightedCPC float64

	stationOpexPerMonth := (scenario.OpEx.RentPerMonthPerStation + scenario.OpEx.AuxiliaryPowerPerMonth +
		scenario.OpEx.PreventiveMaintenancePerMonthPerStation + scenario.OpEx.CorrectiveMaintenancePerMonthPerStation +
		scenario.OpEx.InsurancePerMonthPerStation + scenario.OpEx.LogisticsPerMonthPerStation) * float64(scenario.Station.NumStations)

	var energyPerCycleKWh float64
	if charger.ChargingEfficiencyPct > 0 {
		energyPerCycleKWh = scenario.Pack.NominalCapacityKWh / charger.ChargingEfficiencyPct
	}

	horizonF := float64(horizon)

	for m := 1; m <= horizon; m++ {
		fleetSize := scenario.Revenue.InitialFleetSize + scenario.Revenue.MonthlyFleetAdditions*(m-1)
		visitsPerDay := d.SwapVisitsPerVehiclePerDay * float64(fleetSize)
		swapVisits := int(math.Round(visitsPerDay * DaysPerMonth))
		monthCycles := swapVisits * scenario.Vehicle.PacksPerVehicle

		revenue := float64(swapVisits) * scenario.Revenue.PricePerSwap

		electricityCost := float64(monthCycles) * energyPerCycleKWh * scenario.OpEx.ElectricityTariffPerKWh
		laborCost := float64(monthCycles) * scenario.OpEx.PackHandlingLaborPerSwap
		overhead := scenario.OpEx.OverheadPerMonth
		sabotageCost := scenario.Chaos.SabotagePctPerMonth * float64(initialPacks) * scenario.Pack.UnitCost
		monthlyOpex := stationOpexPerMonth + electricityCost + laborCost + overhead + sabotageCost

		var capexThisMonth float64
		if m == 1 {
			capexThisMonth = capex.Total
		} else if scenario.Revenue.MonthlyFleetAdditions > 0 {
			capexThisMonth += float64(scenario.Vehicle.PacksPerVehicle*scenario.Revenue.MonthlyFleetAdditions) * scenario.Pack.UnitCost
		}
		if chargerTCO.ExpectedFailuresOverHorizon > 0 && horizon > 0 {
			capexThisMonth += (chargerTCO.TotalRepairCost + chargerTCO.TotalReplacementCost) / horizonF
		}
		if packTCO.ExpectedFailures > 0 && horizon > 0 {
			capexThisMonth += (packTCO.TotalRepairCost + packTCO.TotalReplacementCost) / horizonF
		}

		netCF := revenue - monthlyOpex - capexThisMonth
		cumulativeCF += netCF
		if breakEvenMonth == nil && m > 1 && cumulativeCF >= 0 {
			mm := m
			breakEvenMonth = &mm
		}

		months = append(months, models.MonthlySnapshot{
			Month:              m,
			FleetSize:          fleetSize,
			SwapVisits:         swapVisits,
			TotalCycles:        monthCycles,
			Revenue:            revenue,
			OpexTotal:          monthlyOpex,
			CapexThisMonth:     capexThisMonth,
			NetCashFlow:        netCF,
			CumulativeCashFlow: cumulativeCF,
			CostPerCycle:       waterfall.Total,
		})

		totalRevenue += revenue
		totalOpex += monthlyOpex
		totalCapex += capexThisMonth
		totalCycles += float64(monthCycles)
		totalCycleWeightedCPC += float64(monthCycles) * waterfall.Total
	}

	var avgCPC float64
	if totalCycles > 0 {
		avgCPC = totalCycleWeightedCPC / totalCycles
	}

	summary := models.RunSummary{
		ChargerVariantName: charger.Name,
		TotalRevenue:       totalRevenue,
		TotalOpex:          totalOpex,
		TotalCapex:         totalCapex,
		TotalNetCashFlow:   totalRevenue - totalOpex - totalCapex,
		AvgCostPerCycle:    avgCPC,
		BreakEvenMonth:     breakEvenMonth,
	}

	return models.SimulationResult{
		ScenarioID:       uuid.NewString(),
		ChargerVariantID: charger.Name,
		EngineType:       config.EngineStatic,
		Months:           months,
		Summary:          summary,
		Derived:          d,
		CPCWaterfall:     waterfall,
		ChargerTCO:       chargerTCO,
		PackTCO:          packTCO,
	}
}
