package finance

import (
	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// computeMonthlyDepreciation implements straight-line or written-down-value
// depreciation for one month.
func computeMonthlyDepreciation(totalDepreciableAssets float64, financeCfg config.FinanceConfig, month int, bookValue float64) float64 {
	if month > financeCfg.AssetUsefulLifeMonths {
		return 0
	}
	if financeCfg.DepreciationMethod == config.DepreciationStraightLine {
		return totalDepreciableAssets / float64(financeCfg.AssetUsefulLifeMonths)
	}
	monthlyRate := financeCfg.WDVRateAnnual / 12
	return bookValue * monthlyRate
}

// BuildFinancialStatements produces monthly P&L and cash-flow statements
// from an engine run plus its debt schedule. Grounded on
// finance/statements.py's build_financial_statements.
func BuildFinancialStatements(months []models.MonthlySnapshot, debt models.DebtSchedule, financeCfg config.FinanceConfig, opexCfg config.OpExConfig, pack config.PackSpec, charger config.ChargerVariant, totalInitialCapex float64) models.FinancialStatements {
	debtRowsByMonth := make(map[int]models.DebtScheduleRow, len(debt.Rows))
	for _, r := range debt.Rows {
		debtRowsByMonth[r.Month] = r
	}

	eff := charger.ChargingEfficiencyPct
	if eff <= 0 {
		eff = 0.90
	}
	energyPerCycleKWh := pack.NominalCapacityKWh / eff

	pnlList := make([]models.MonthlyPnL, 0, len(months))
	cfList := make([]models.MonthlyCashFlowStatement, 0, len(months))

	var cumulativeCF float64
	bookValue := totalInitialCapex

	for _, snap := range months {
		m := snap.Month
		revenue := snap.Revenue

		electricity := float64(snap.TotalCycles) * energyPerCycleKWh * opexCfg.ElectricityTariffPerKWh
		labor := float64(snap.TotalCycles) * opexCfg.PackHandlingLaborPerSwap

		stationOpex := snap.OpexTotal - electricity - labor
		if stationOpex < 0 {
			stationOpex = 0
		}

		grossProfit := revenue - electricity - labor
		ebitda := grossProfit - stationOpex

		depreciation := computeMonthlyDepreciation(totalInitialCapex, financeCfg, m, bookValue)
		if depreciation > bookValue {
			depreciation = bookValue
		}
		bookValue -= depreciation
		if bookValue < 0 {
			bookValue = 0
		}

		ebit := ebitda - depreciation

		var interest float64
		if row, ok := debtRowsByMonth[m]; ok {
			interest = row.Interest
		}
		ebt := ebit - interest

		var tax float64
		if ebt > 0 {
			tax = ebt * financeCfg.TaxRate
		}
		netIncome := ebt - tax

		pnlList = append(pnlList, models.MonthlyPnL{
			Month:           m,
			Revenue:         round2(revenue),
			ElectricityCost: round2(electricity),
			LaborCost:       round2(labor),
			GrossProfit:     round2(grossProfit),
			StationOpex:     round2(stationOpex),
			EBITDA:          round2(ebitda),
			Depreciation:    round2(depreciation),
			EBIT:            round2(ebit),
			Interest:        round2(interest),
			EBT:             round2(ebt),
			Tax:             round2(tax),
			NetIncome:       round2(netIncome),
		})

		operatingCF := revenue - snap.OpexTotal
		investingCF := -snap.CapexThisMonth

		var financingCF float64
		if m == 1 {
			financingCF = debt.LoanAmount
		}
		if row, ok := debtRowsByMonth[m]; ok {
			financingCF -= row.EMI
		}

		netCF := operatingCF + investingCF + financingCF
		cumulativeCF += netCF

		cfList = append(cfList, models.MonthlyCashFlowStatement{
			Month:        m,
			OperatingCF:  round2(operatingCF),
			InvestingCF:  round2(investingCF),
			FinancingCF:  round2(financingCF),
			NetCF:        round2(netCF),
			CumulativeCF: round2(cumulativeCF),
		})
	}

	return models.FinancialStatements{PnL: pnlList, CashFlow: cfList}
}
