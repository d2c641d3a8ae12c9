package invariant

import (
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/cpc"
	"zngsim/pkg/core/derived"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
	"zngsim/pkg/core/tco"
)

func TestCheckWaterfallBalancesAgainstRealWaterfall(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	chargerTCO := tco.ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)
	packTCO := tco.ComputePackTCO(scenario.Pack, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station, d.TotalPacks)
	w := cpc.ComputeWaterfall(d, scenario.Pack, charger, scenario.OpEx, scenario.Chaos, scenario.Station, scenario.Vehicle, chargerTCO, packTCO)

	check := CheckWaterfall(w.Degradation, w.Charger, w.Electricity, w.RealEstate, w.Maintenance, w.Insurance, w.Sabotage, w.Logistics, w.Overhead, w.Total, 0.01)
	if !check.IsBalanced {
		t.Errorf("expected the waterfall components to sum to the reported total, off by %v", check.Difference)
	}
}

func TestCheckChargerTCOBalancesAgainstRealTCO(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	d := derived.Compute(scenario.Vehicle, scenario.Pack, charger, scenario.Station, &scenario.Chaos, &scenario.Revenue)
	breakdown := tco.ComputeChargerTCO(charger, d, scenario.Vehicle, scenario.Revenue, scenario.Simulation, scenario.Station)

	check := CheckChargerTCO(breakdown.FleetPurchaseCost, breakdown.FleetSpareCost, breakdown.TotalRepairCost, breakdown.TotalReplacementCost, breakdown.LostRevenue, breakdown.TotalTCO, 0.01)
	if !check.IsBalanced {
		t.Errorf("expected charger TCO components to sum to total_tco, off by %v", check.Difference)
	}
}

func TestCheckCashFlowReconciliationOnEngineOutput(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])

	var totalInitialCapex float64
	for _, m := range result.Months {
		if m.Month == 1 {
			totalInitialCapex = m.CapexThisMonth
		}
	}
	debt := finance.BuildDebtSchedule(totalInitialCapex, scenario.Finance, scenario.Simulation.HorizonMonths)
	statements := finance.BuildFinancialStatements(result.Months, debt, scenario.Finance, scenario.OpEx, scenario.Pack, scenario.ChargerVariants[0], totalInitialCapex)

	for _, row := range statements.CashFlow {
		check := CheckCashFlowReconciliation(row.Month, row.OperatingCF, row.InvestingCF, row.FinancingCF, row.NetCF, 0.01)
		if !check.IsBalanced {
			t.Fatalf("month %d: cash flow reconciliation off by %v", row.Month, check.Difference)
		}
	}
}

func TestCheckWaterfallFlagsAnImbalance(t *testing.T) {
	check := CheckWaterfall(1, 1, 1, 1, 1, 1, 1, 1, 1, 100, 0.01)
	if check.IsBalanced {
		t.Error("expected an obviously mismatched total to be flagged unbalanced")
	}
}
