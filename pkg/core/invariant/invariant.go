// Package invariant provides tolerance-based result-reconciliation checks:
// a struct pairing a computed value, a reported value, and a tolerance.
// These checks re-verify that a computed result's parts sum to its
// reported total, catching drift between a breakdown's components and its
// headline figure.
package invariant

import "math"

// WaterfallCheck verifies that a cost-per-cycle waterfall's nine components
// sum to its reported total.
type WaterfallCheck struct {
	ReportedTotal float64
	ComputedTotal float64
	Difference    float64
	IsBalanced    bool
	Tolerance     float64
}

// CheckWaterfall validates that the sum of the nine waterfall components
// matches the reported total within tolerance.
func CheckWaterfall(degradation, charger, electricity, realEstate, maintenance, insurance, sabotage, logistics, overhead, reportedTotal, tolerance float64) *WaterfallCheck {
	computed := degradation + charger + electricity + realEstate + maintenance + insurance + sabotage + logistics + overhead
	diff := reportedTotal - computed
	return &WaterfallCheck{
		ReportedTotal: reportedTotal,
		ComputedTotal: computed,
		Difference:    diff,
		IsBalanced:    math.Abs(diff) <= tolerance,
		Tolerance:     tolerance,
	}
}

// TCOCheck verifies that a TCO breakdown's components sum to its reported
// total TCO. Used for both charger TCO (purchase + spares + repairs +
// replacements + lost revenue) and pack TCO (repairs + replacements).
type TCOCheck struct {
	Label         string
	ReportedTotal float64
	ComputedTotal float64
	Difference    float64
	IsBalanced    bool
	Tolerance     float64
}

// CheckChargerTCO validates fleet_purchase + fleet_spare + repair +
// replacement + lost_revenue against total_tco.
func CheckChargerTCO(purchaseCost, spareCost, repairCost, replacementCost, lostRevenue, totalTCO, tolerance float64) *TCOCheck {
	computed := purchaseCost + spareCost + repairCost + replacementCost + lostRevenue
	diff := totalTCO - computed
	return &TCOCheck{
		Label:         "charger_tco",
		ReportedTotal: totalTCO,
		ComputedTotal: computed,
		Difference:    diff,
		IsBalanced:    math.Abs(diff) <= tolerance,
		Tolerance:     tolerance,
	}
}

// CheckPackTCO validates repair + replacement cost against total_failure_tco.
func CheckPackTCO(repairCost, replacementCost, totalFailureTCO, tolerance float64) *TCOCheck {
	computed := repairCost + replacementCost
	diff := totalFailureTCO - computed
	return &TCOCheck{
		Label:         "pack_tco",
		ReportedTotal: totalFailureTCO,
		ComputedTotal: computed,
		Difference:    diff,
		IsBalanced:    math.Abs(diff) <= tolerance,
		Tolerance:     tolerance,
	}
}

// CashFlowReconciliation verifies that NetCF = OperatingCF + InvestingCF +
// FinancingCF for one month of a cash-flow statement.
type CashFlowReconciliation struct {
	Month         int
	OperatingCF   float64
	InvestingCF   float64
	FinancingCF   float64
	ReportedNetCF float64
	ComputedNetCF float64
	Difference    float64
	IsBalanced    bool
	Tolerance     float64
}

// CheckCashFlowReconciliation validates one month's NetCF against the sum
// of its three components.
func CheckCashFlowReconciliation(month int, operatingCF, investingCF, financingCF, reportedNetCF, tolerance float64) *CashFlowReconciliation {
	computed := operatingCF + investingCF + financingCF
	diff := reportedNetCF - computed
	return &CashFlowReconciliation{
		Month:         month,
		OperatingCF:   operatingCF,
		InvestingCF:   investingCF,
		FinancingCF:   financingCF,
		ReportedNetCF: reportedNetCF,
		ComputedNetCF: computed,
		Difference:    diff,
		IsBalanced:    math.Abs(diff) <= tolerance,
		Tolerance:     tolerance,
	}
}
