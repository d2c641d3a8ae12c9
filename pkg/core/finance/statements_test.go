package finance

import (
	"math"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
)

func TestBuildFinancialStatementsBalanceAgainstEngineCashFlow(t *testing.T) {
	scenario := config.DefaultScenario()
	result := engine.RunStatic(scenario, scenario.ChargerVariants[0])

	var totalInitialCapex float64
	for _, m := range result.Months {
		if m.Month == 1 {
			totalInitialCapex = m.CapexThisMonth
		}
	}

	debt := BuildDebtSchedule(totalInitialCapex, scenario.Finance, scenario.Simulation.HorizonMonths)
	statements := BuildFinancialStatements(result.Months, debt, scenario.Finance, scenario.OpEx, scenario.Pack, scenario.ChargerVariants[0], totalInitialCapex)

	if len(statements.PnL) != len(result.Months) || len(statements.CashFlow) != len(result.Months) {
		t.Fatalf("expected one P&L and cash-flow row per month")
	}

	for _, row := range statements.PnL {
		if row.EBITDA < row.EBIT-1.0 {
			t.Errorf("month %d: EBIT %v should not exceed EBITDA %v (depreciation can't be negative)", row.Month, row.EBIT, row.EBITDA)
		}
	}

	for i, row := range statements.CashFlow {
		engineNetCF := result.Months[i].NetCashFlow
		if math.Abs(row.OperatingCF+row.InvestingCF-engineNetCF) > 0.05 {
			t.Errorf("month %d: operating+investing CF %v does not match engine net cash flow %v", row.Month, row.OperatingCF+row.InvestingCF, engineNetCF)
		}
	}

	last := statements.CashFlow[len(statements.CashFlow)-1]
	if math.IsNaN(last.CumulativeCF) {
		t.Error("expected a finite cumulative cash flow at the end of the horizon")
	}
}
