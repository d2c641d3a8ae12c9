package finance

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// BuildDebtSchedule amortizes a loan sized as debtPctOfCapex of the initial
// CapEx, with an interest-only grace period followed by level-EMI
// amortization. Grounded on finance/dscr.py's build_debt_schedule.
func BuildDebtSchedule(totalInitialCapex float64, financeCfg config.FinanceConfig, horizonMonths int) models.DebtSchedule {
	loan := totalInitialCapex * financeCfg.DebtPctOfCapex
	if loan <= 0 {
		return models.DebtSchedule{}
	}

	rate := financeCfg.InterestRateAnnual / 12
	grace := financeCfg.GracePeriodMonths
	tenor := financeCfg.LoanTenorMonths
	amortMonths := tenor - grace

	var emi float64
	switch {
	case rate > 0 && amortMonths > 0:
		factor := math.Pow(1+rate, float64(amortMonths))
		emi = loan * rate * factor / (factor - 1)
	case amortMonths > 0:
		emi = loan / float64(amortMonths)
	}

	numMonths := tenor
	if horizonMonths < numMonths {
		numMonths = horizonMonths
	}

	rows := make([]models.DebtScheduleRow, 0, numMonths)
	balance := loan
	var totalInterest, totalPrincipal float64

	for m := 1; m <= numMonths; m++ {
		interest := balance * rate
		var principal, payment float64
		if m <= grace {
			payment = interest
		} else {
			principal = emi - interest
			if principal > balance {
				principal = balance
			}
			payment = interest + principal
		}
		closing := balance - principal
		if closing < 0 {
			closing = 0
		}

		rows = append(rows, models.DebtScheduleRow{
			Month:          m,
			OpeningBalance: round2(balance),
			Interest:       round2(interest),
			Principal:      round2(principal),
			EMI:            round2(payment),
			ClosingBalance: round2(closing),
		})

		totalInterest += interest
		totalPrincipal += principal
		balance = closing
	}

	return models.DebtSchedule{
		LoanAmount:         round2(loan),
		MonthlyRate:        round6(rate),
		Rows:               rows,
		TotalInterestPaid:  round2(totalInterest),
		TotalPrincipalPaid: round2(totalPrincipal),
	}
}

// ComputeDSCR tracks monthly debt-service coverage (NOI / debt service)
// against the configured covenant threshold. Grounded on
// finance/dscr.py's compute_dscr.
func ComputeDSCR(months []models.MonthlySnapshot, debt models.DebtSchedule, financeCfg config.FinanceConfig, remainingAssetValue *float64) models.DSCRResult {
	if debt.LoanAmount <= 0 || len(debt.Rows) == 0 {
		return models.DSCRResult{
			AvgDSCR:           math.Inf(1),
			MinDSCR:           math.Inf(1),
			CovenantThreshold: financeCfg.DSCRCovenantThreshold,
		}
	}

	debtRowsByMonth := make(map[int]models.DebtScheduleRow, len(debt.Rows))
	for _, r := range debt.Rows {
		debtRowsByMonth[r.Month] = r
	}

	monthlyDSCR := make([]float64, 0, len(months))
	var breachMonths []int

	for _, snap := range months {
		noi := snap.Revenue - snap.OpexTotal
		var dscrVal float64
		if row, ok := debtRowsByMonth[snap.Month]; ok && row.EMI > 0 {
			dscrVal = noi / row.EMI
		} else {
			dscrVal = math.Inf(1)
		}
		monthlyDSCR = append(monthlyDSCR, round4(dscrVal))
		if !math.IsInf(dscrVal, 1) && dscrVal < financeCfg.DSCRCovenantThreshold {
			breachMonths = append(breachMonths, snap.Month)
		}
	}

	var finite []float64
	for _, d := range monthlyDSCR {
		if !math.IsInf(d, 1) {
			finite = append(finite, d)
		}
	}

	avg, min := math.Inf(1), math.Inf(1)
	var minMonth int
	if len(finite) > 0 {
		var sum float64
		min = finite[0]
		for _, d := range finite {
			sum += d
			if d < min {
				min = d
			}
		}
		avg = sum / float64(len(finite))
		for i, d := range monthlyDSCR {
			if d == min {
				minMonth = i + 1
				break
			}
		}
	}

	var assetCoverRatio *float64
	if remainingAssetValue != nil && len(debt.Rows) > 0 {
		lastBalance := debt.Rows[len(debt.Rows)-1].ClosingBalance
		if lastBalance > 0 {
			acr := round4(*remainingAssetValue / lastBalance)
			assetCoverRatio = &acr
		}
	}

	return models.DSCRResult{
		MonthlyDSCR:       monthlyDSCR,
		AvgDSCR:           round4(avg),
		MinDSCR:           round4(min),
		MinDSCRMonth:      minMonth,
		BreachMonths:      breachMonths,
		CovenantThreshold: financeCfg.DSCRCovenantThreshold,
		AssetCoverRatio:   assetCoverRatio,
	}
}
