// Package finance builds the L6 investor-facing overlay on top of an
// engine run: discounted cash flow (NPV/IRR/payback), debt amortization and
// DSCR, monthly P&L and cash-flow statements, and discounted charger TCO.
// Grounded on finance/dcf.py, finance/dscr.py, finance/statements.py, and
// finance/charger_npv.py.
package finance

import (
	"math"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// terminalValueMethodGordonFallback is reported in DCFResult.TerminalValueMethodUsed
// when the configured "gordon_growth" method falls back to the salvage
// formula because r <= g (see DESIGN.md Open Question resolution #3).
const terminalValueMethodGordonFallback = "salvage_fallback"

// monthlyRate converts an annual rate to its monthly-compounding equivalent.
func monthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12.0) - 1
}

// ComputeNPV discounts monthly net cash flows (index 0 = month 1) at the
// given annual rate.
func ComputeNPV(cashFlows []float64, annualRate float64) float64 {
	if len(cashFlows) == 0 {
		return 0
	}
	rMonthly := monthlyRate(annualRate)
	var npv float64
	for i, cf := range cashFlows {
		t := float64(i + 1)
		npv += cf / math.Pow(1+rMonthly, t)
	}
	return npv
}

// ComputeIRR finds the annual rate at which NPV = 0 via bisection between
// -50% and 1000%. Returns nil if there are fewer than two cash flows or they
// never change sign; otherwise returns the bracket midpoint after at most
// 200 iterations, whether or not a root lies inside the bracket.
func ComputeIRR(cashFlows []float64) *float64 {
	if len(cashFlows) < 2 {
		return nil
	}
	var hasPositive, hasNegative bool
	for _, cf := range cashFlows {
		if cf > 0 {
			hasPositive = true
		}
		if cf < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return nil
	}

	const maxIter = 200
	const tol = 1e-8
	low, high := -0.50, 10.0

	for i := 0; i < maxIter; i++ {
		mid := (low + high) / 2
		npvMid := ComputeNPV(cashFlows, mid)
		if math.Abs(npvMid) < tol {
			return &mid
		}
		npvLow := ComputeNPV(cashFlows, low)
		if npvLow*npvMid < 0 {
			high = mid
		} else {
			low = mid
		}
		if high-low < tol {
			return &mid
		}
	}
	result := (low + high) / 2
	return &result
}

// ComputeTerminalValue returns the horizon-end terminal value, already
// discounted to present, per finance.TerminalValueMethod. It also reports
// which method actually produced the number — "gordon_growth" falls back to
// the salvage formula and reports "salvage_fallback" when r <= g (see
// DESIGN.md Open Question resolution #3).
func ComputeTerminalValue(cfg config.FinanceConfig, lastYearNCF, totalSalvage, annualDiscountRate float64, horizonMonths int) (value float64, methodUsed string) {
	if cfg.TerminalValueMethod == config.TerminalValueNone {
		return 0, config.TerminalValueNone
	}

	rMonthly := monthlyRate(annualDiscountRate)
	discountToPresent := 1 / math.Pow(1+rMonthly, float64(horizonMonths))

	if cfg.TerminalValueMethod == config.TerminalValueSalvage {
		return totalSalvage * discountToPresent, config.TerminalValueSalvage
	}

	if cfg.TerminalValueMethod == config.TerminalValueGordonGrowth {
		r := annualDiscountRate
		g := cfg.TerminalGrowthRate
		if r <= g {
			return totalSalvage * discountToPresent, terminalValueMethodGordonFallback
		}
		perpetuity := lastYearNCF * (1 + g) / (r - g)
		return perpetuity * discountToPresent, config.TerminalValueGordonGrowth
	}

	return 0, cfg.TerminalValueMethod
}

// ComputeDiscountedPayback returns the first month (1-indexed) after month 1
// at which cumulative discounted cash flow is zero or above, or nil if it
// never is. Month 1 itself is never reported.
func ComputeDiscountedPayback(cashFlows []float64, annualRate float64) *int {
	if len(cashFlows) == 0 {
		return nil
	}
	rMonthly := monthlyRate(annualRate)
	var cumulativePV float64
	for i, cf := range cashFlows {
		t := i + 1
		cumulativePV += cf / math.Pow(1+rMonthly, float64(t))
		if cumulativePV >= 0 && t > 1 {
			mm := t
			return &mm
		}
	}
	return nil
}

// BuildDCFTable runs the full DCF analysis over one engine run's monthly
// snapshots: the monthly discounted trajectory, NPV, IRR, terminal value,
// and discounted payback month.
func BuildDCFTable(months []models.MonthlySnapshot, financeCfg config.FinanceConfig, annualDiscountRate float64, totalSalvage float64) models.DCFResult {
	cashFlows := make([]float64, len(months))
	for i, m := range months {
		cashFlows[i] = m.NetCashFlow
	}
	horizon := len(months)
	rMonthly := monthlyRate(annualDiscountRate)

	dcfRows := make([]models.MonthlyDCFRow, 0, horizon)
	var cumulativePV float64
	for i, cf := range cashFlows {
		t := i + 1
		df := 1 / math.Pow(1+rMonthly, float64(t))
		pv := cf * df
		cumulativePV += pv
		dcfRows = append(dcfRows, models.MonthlyDCFRow{
			Month:          t,
			DiscountFactor: round6(df),
			NominalNetCF:   round2(cf),
			PVNetCF:        round2(pv),
			CumulativePV:   round2(cumulativePV),
		})
	}

	var lastYearNCF float64
	if horizon >= 12 {
		for _, cf := range cashFlows[horizon-12:] {
			lastYearNCF += cf
		}
	} else {
		for _, cf := range cashFlows {
			lastYearNCF += cf
		}
	}
	tv, methodUsed := ComputeTerminalValue(financeCfg, lastYearNCF, totalSalvage, annualDiscountRate, horizon)

	npv := cumulativePV + tv

	irrFlows := append([]float64(nil), cashFlows...)
	if tv > 0 && horizon > 0 {
		undiscountedTV := tv / (1 / math.Pow(1+rMonthly, float64(horizon)))
		irrFlows[len(irrFlows)-1] += undiscountedTV
	}
	irr := ComputeIRR(irrFlows)
	if irr != nil {
		rounded := round4(*irr)
		irr = &rounded
	}

	payback := ComputeDiscountedPayback(cashFlows, annualDiscountRate)

	var undiscountedTotal float64
	for _, cf := range cashFlows {
		undiscountedTotal += cf
	}

	return models.DCFResult{
		NPV:                     round2(npv),
		IRR:                     irr,
		DiscountedPaybackMonth:  payback,
		TerminalValue:           round2(tv),
		TerminalValueMethodUsed: methodUsed,
		MonthlyDCF:              dcfRows,
		UndiscountedTotal:       round2(undiscountedTotal),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round6(v float64) float64 { return math.Round(v*1_000_000) / 1_000_000 }
