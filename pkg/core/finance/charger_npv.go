package finance

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// ComputeChargerNPV re-expresses a charger's TCO in present-value terms:
// purchase and spares are upfront (month 0), repairs/replacements/lost
// revenue are spread uniformly across the horizon and discounted monthly.
// Grounded on finance/charger_npv.py's compute_charger_npv.
func ComputeChargerNPV(charger config.ChargerVariant, tco models.ChargerTCOBreakdown, simulation config.SimulationConfig) models.ChargerNPVResult {
	horizon := simulation.HorizonMonths
	rMonthly := monthlyRate(simulation.DiscountRateAnnual)

	pvPurchase := tco.FleetPurchaseCost
	pvSpares := tco.FleetSpareCost

	var monthlyRepair, monthlyReplace, monthlyLostRev, monthlyCycles float64
	if horizon > 0 {
		monthlyRepair = tco.TotalRepairCost / float64(horizon)
		monthlyReplace = tco.TotalReplacementCost / float64(horizon)
		monthlyLostRev = tco.LostRevenue / float64(horizon)
		monthlyCycles = tco.FleetCyclesServed / float64(horizon)
	}

	var pvRepairs, pvReplacements, pvLostRevenue, pvCycles float64
	runningPVTCO := pvPurchase + pvSpares
	var runningPVCycles float64
	monthlyDCPC := make([]float64, 0, horizon)

	for t := 1; t <= horizon; t++ {
		df := 1 / math.Pow(1+rMonthly, float64(t))
		pvRepairs += monthlyRepair * df
		pvReplacements += monthlyReplace * df
		pvLostRevenue += monthlyLostRev * df
		pvCycles += monthlyCycles * df

		runningPVTCO += (monthlyRepair + monthlyReplace + monthlyLostRev) * df
		runningPVCycles += monthlyCycles * df

		var dcpc float64
		if runningPVCycles > 0 {
			dcpc = runningPVTCO / runningPVCycles
		}
		monthlyDCPC = append(monthlyDCPC, round4(dcpc))
	}

	npvTCO := pvPurchase + pvRepairs + pvReplacements + pvLostRevenue + pvSpares
	var discountedCPC float64
	if pvCycles > 0 {
		discountedCPC = npvTCO / pvCycles
	}

	return models.ChargerNPVResult{
		ChargerName:          charger.Name,
		UndiscountedTCO:      round2(tco.TotalTCO),
		PVPurchase:           round2(pvPurchase),
		PVRepairs:            round2(pvRepairs),
		PVReplacements:       round2(pvReplacements),
		PVLostRevenue:        round2(pvLostRevenue),
		PVSpares:             round2(pvSpares),
		NPVTCO:               round2(npvTCO),
		DiscountedCPC:        round4(discountedCPC),
		MonthlyDiscountedCPC: monthlyDCPC,
	}
}
