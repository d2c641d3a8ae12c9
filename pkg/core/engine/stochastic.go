package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"zngsim/pkg/config"
	"zngsim/pkg/core/cpc"
	"zngsim/pkg/core/derived"
	"zngsim/pkg/core/tco"
	"zngsim/pkg/models"
)

// defaultSeed matches the reference implementation's fallback when
// scenario.Simulation.RandomSeed is nil.
const defaultSeed int64 = 42

// Run dispatches to the static or stochastic engine (and, when
// MonteCarloRuns > 1, the Monte-Carlo orchestrator) per
// scenario.Simulation.Engine. This is the single entry point callers use.
func Run(scenario config.Scenario, charger config.ChargerVariant) models.SimulationResult {
	if scenario.Simulation.Engine == config.EngineStatic {
		return RunStatic(scenario, charger)
	}
	if scenario.Simulation.MonteCarloRuns > 1 {
		return RunMonteCarlo(scenario, charger)
	}
	seed := defaultSeed
	if scenario.Simulation.RandomSeed != nil {
		seed = *scenario.Simulation.RandomSeed
	}
	return RunSingleStochastic(scenario, charger, seed)
}

// RunSingleStochastic executes one stochastic simulation: noisy demand,
// cohort-based battery degradation with lumpy replacement CapEx, and
// per-dock charger failure simulation. Grounded on
// orchestrator.py's _run_single_stochastic.
func RunSingleStochastic(scenario config.Scenario, charger config.ChargerVariant, seed int64) models.SimulationResult {
	v := scenario.Vehicle
	p := scenario.Pack
	st := scenario.Station
	op := scenario.OpEx
	rev := scenario.Revenue
	ch := scenario.Chaos
	sim := scenario.Simulation
	demandCfg := scenario.Demand

	rng := rand.New(rand.NewSource(seed))

	d := derived.Compute(v, p, charger, st, &ch, &rev)
	chargerTCO := tco.ComputeChargerTCO(charger, d, v, rev, sim, st)

	capex := computeInitialCapex(st, charger, p, d.TotalDocks, d.TotalPacks)
	initialPacks := d.TotalPacks

	packTCO := tco.ComputePackTCO(p, d, v, rev, sim, st, initialPacks)
	waterfall := cpc.ComputeWaterfall(d, p, charger, op, ch, st, v, chargerTCO, packTCO)

	degradation := newDegradationTracker(p, ch)
	degradation.addCohort(initialPacks, 1)

	chargerRel := newChargerReliabilityTracker(charger, d.TotalDocks, st.OperatingHoursPerDay, rng)

	horizon := sim.HorizonMonths
	months := make([]models.MonthlySnapshot, 0, horizon)
	cohortHistory := make([][]models.CohortStatus, 0, horizon)

	var cumulativeCF float64
	var breakEvenMonth *int

	totalRevenue := 0.0
	totalOpex := 0.0
	totalCapex := capex.Total
	totalCycles := 0
	totalCPCWeighted := 0.0

	var totalPacksRetired, totalChargerFailures int
	var totalReplacementCapex, totalSalvageCredit float64

	for m := 1; m <= horizon; m++ {
		fleetSize := rev.InitialFleetSize + rev.MonthlyFleetAdditions*(m-1)

		swapVisits, monthCycles := generateMonthlyDemand(demandCfg, d, fleetSize, m, v.PacksPerVehicle, rng)

		degResult := degradation.step(m, monthCycles)

		replacementCapex := float64(degResult.packsRetired) * p.UnitCost
		salvageCredit := float64(degResult.packsRetired) * p.SecondLifeSalvageValue
		netReplacementCost := replacementCapex - salvageCredit

		charResult := chargerRel.step(m)

		monthlyRevenue := float64(swapVisits) * rev.PricePerSwap

		stationOpex := (op.RentPerMonthPerStation + op.AuxiliaryPowerPerMonth +
			op.PreventiveMaintenancePerMonthPerStation + op.CorrectiveMaintenancePerMonthPerStation +
			op.InsurancePerMonthPerStation + op.LogisticsPerMonthPerStation) * float64(st.NumStations)

		var energyPerCycleKWh float64
		if charger.ChargingEfficiencyPct > 0 {
			energyPerCycleKWh = p.NominalCapacityKWh / charger.ChargingEfficiencyPct
		}
		electricityCost := float64(monthCycles) * energyPerCycleKWh * op.ElectricityTariffPerKWh
		laborCost := float64(monthCycles) * op.PackHandlingLaborPerSwap
		overhead := op.OverheadPerMonth
		sabotageCost := ch.SabotagePctPerMonth * float64(degradation.activePackCount()) * p.UnitCost

		monthlyOpex := stationOpex + electricityCost + laborCost + overhead + sabotageCost + charResult.repairCost

		var capexThisMonth float64
		if m == 1 {
			capexThisMonth = capex.Total
		}
		if m > 1 && rev.MonthlyFleetAdditions > 0 {
			newPacks := v.PacksPerVehicle * rev.MonthlyFleetAdditions
			capexThisMonth += float64(newPacks) * p.UnitCost
			degradation.addCohort(newPacks, m)
		}
		capexThisMonth += netReplacementCost
		capexThisMonth += charResult.replacementCost

		netCF := monthlyRevenue - monthlyOpex - capexThisMonth
		cumulativeCF += netCF
		if breakEvenMonth == nil && m > 1 && cumulativeCF >= 0 {
			mm := m
			breakEvenMonth = &mm
		}

		totalRevenue += monthlyRevenue
		totalOpex += monthlyOpex
		if m > 1 {
			totalCapex += capexThisMonth
		}
		totalCycles += monthCycles
		totalCPCWeighted += waterfall.Total * float64(monthCycles)
		totalPacksRetired += degResult.packsRetired
		totalChargerFailures += charResult.failures
		totalReplacementCapex += replacementCapex
		totalSalvageCredit += salvageCredit

		cohortHistory = append(cohortHistory, degResult.snapshots)

		months = append(months, models.MonthlySnapshot{
			Month:                     m,
			FleetSize:                 fleetSize,
			SwapVisits:                swapVisits,
			TotalCycles:               monthCycles,
			Revenue:                   round2(monthlyRevenue),
			OpexTotal:                 round2(monthlyOpex),
			CapexThisMonth:            round2(capexThisMonth),
			NetCashFlow:               round2(netCF),
			CumulativeCashFlow:        round2(cumulativeCF),
			CostPerCycle:              waterfall.Total,
			AvgSOH:                    degResult.avgSOH,
			PacksRetiredThisMonth:     degResult.packsRetired,
			PacksReplacedThisMonth:    degResult.packsReplaced,
			ReplacementCapexThisMonth: round2(netReplacementCost),
			SalvageCreditThisMonth:    round2(salvageCredit),
			ChargerFailuresThisMonth:  charResult.failures,
		})
	}

	var avgCPC float64
	if totalCycles > 0 {
		avgCPC = totalCPCWeighted / float64(totalCycles)
	}
	var meanSOHAtEnd float64
	if len(months) > 0 {
		meanSOHAtEnd = months[len(months)-1].AvgSOH
	}

	summary := models.RunSummary{
		ChargerVariantName:    charger.Name,
		TotalRevenue:          round2(totalRevenue),
		TotalOpex:             round2(totalOpex),
		TotalCapex:            round2(totalCapex),
		TotalNetCashFlow:      round2(totalRevenue - totalOpex - totalCapex),
		AvgCostPerCycle:       round4(avgCPC),
		BreakEvenMonth:        breakEvenMonth,
		TotalPacksRetired:     totalPacksRetired,
		TotalChargerFailures:  totalChargerFailures,
		MeanSOHAtEnd:          meanSOHAtEnd,
		TotalReplacementCapex: round2(totalReplacementCapex),
		TotalSalvageCredit:    round2(totalSalvageCredit),
		// TotalFailureToServe is left unset: this engine has no
		// dock-capacity/unmet-demand model, so it stays zero.
	}

	return models.SimulationResult{
		ScenarioID:       uuid.NewString(),
		ChargerVariantID: charger.Name,
		EngineType:       config.EngineStochastic,
		Months:           months,
		Summary:          summary,
		Derived:          d,
		CPCWaterfall:     waterfall,
		ChargerTCO:       chargerTCO,
		PackTCO:          packTCO,
		CohortHistory:    cohortHistory,
	}
}
