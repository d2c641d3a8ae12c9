package engine

import (
	"math"
	"math/rand"

	"zngsim/pkg/config"
)

// avgDaysPerMonth is 365.25/12 — used only by the per-dock reliability
// simulation, which tracks continuous dock age in hours (as opposed to the
// fixed-30-day month the demand and cashflow loops use).
const avgDaysPerMonth = 30.4375

// chargerReliabilityStepResult is one month's stochastic charger-failure
// outcome across every dock.
type chargerReliabilityStepResult struct {
	failures            int
	replacements         int
	repairCost           float64
	replacementCost      float64
	downtimeHours        float64
	availableDockHours   float64
}

// chargerReliabilityTracker simulates per-dock Weibull or exponential
// failures month by month, tracking each dock's age and cumulative failure
// count independently. Grounded on engine/charger_reliability.py.
type chargerReliabilityTracker struct {
	charger       config.ChargerVariant
	totalDocks    int
	hoursPerMonth float64
	rng           *rand.Rand

	beta float64 // Weibull shape
	eta  float64 // Weibull scale, derived from MTBF

	ageHours            []float64
	cumulativeFailures []int
}

func newChargerReliabilityTracker(charger config.ChargerVariant, totalDocks int, operatingHoursPerDay float64, rng *rand.Rand) *chargerReliabilityTracker {
	beta := charger.WeibullShape
	if charger.FailureDistribution == config.FailureDistributionExponential {
		beta = 1.0
	}
	eta := charger.MTBFHours / math.Gamma(1+1/beta)

	return &chargerReliabilityTracker{
		charger:            charger,
		totalDocks:         totalDocks,
		hoursPerMonth:      operatingHoursPerDay * avgDaysPerMonth,
		rng:                rng,
		beta:               beta,
		eta:                eta,
		ageHours:           make([]float64, totalDocks),
		cumulativeFailures: make([]int, totalDocks),
	}
}

func (t *chargerReliabilityTracker) step(month int) chargerReliabilityStepResult {
	if t.totalDocks <= 0 {
		return chargerReliabilityStepResult{}
	}

	h := t.hoursPerMonth
	totalFailures := 0
	needsReplacement := make([]bool, t.totalDocks)
	numReplacements := 0

	for i := 0; i < t.totalDocks; i++ {
		tStart := t.ageHours[i]
		tEnd := tStart + h

		hStart := math.Pow(tStart/t.eta, t.beta)
		hEnd := math.Pow(tEnd/t.eta, t.beta)
		deltaH := hEnd - hStart
		if deltaH < 0 {
			deltaH = 0
		}
		if deltaH > 100 {
			deltaH = 100
		}

		failures := poissonSample(t.rng, deltaH)
		totalFailures += failures
		t.cumulativeFailures[i] += failures

		if t.cumulativeFailures[i] >= t.charger.ReplacementThreshold {
			needsReplacement[i] = true
			numReplacements++
			t.ageHours[i] = 0
			t.cumulativeFailures[i] = 0
		} else {
			t.ageHours[i] += h
		}
	}

	repairCost := float64(totalFailures) * t.charger.RepairCostPerEvent
	replacementCost := float64(numReplacements) * t.charger.FullReplacementCost
	downtimeHours := float64(totalFailures) * t.charger.MTTRHours

	totalDockHours := float64(t.totalDocks) * h
	availableDockHours := totalDockHours - downtimeHours
	if availableDockHours < 0 {
		availableDockHours = 0
	}

	return chargerReliabilityStepResult{
		failures:           totalFailures,
		replacements:       numReplacements,
		repairCost:         round2(repairCost),
		replacementCost:    round2(replacementCost),
		downtimeHours:      round2(downtimeHours),
		availableDockHours: round2(availableDockHours),
	}
}
