package engine

import (
	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// retirementEpsilon absorbs IEEE-754 float noise around the retirement
// threshold (e.g. 1.0 - 0.1 - 0.1 - 0.1 = 0.7000000000000001, not 0.7).
const retirementEpsilon = 1e-9

// cohort is the mutable internal state of one pack cohort.
type cohort struct {
	id               int
	bornMonth        int
	packCount        int
	currentSOH       float64
	cumulativeCycles int
	isRetired        bool
	retiredMonth     *int
}

func (c *cohort) snapshot() models.CohortStatus {
	return models.CohortStatus{
		CohortID:         c.id,
		BornMonth:        c.bornMonth,
		PackCount:        c.packCount,
		CurrentSOH:       round6(c.currentSOH),
		CumulativeCycles: c.cumulativeCycles,
		IsRetired:        c.isRetired,
		RetiredMonth:     c.retiredMonth,
	}
}

// degradationStepResult is the output of one month's degradation step; the
// stochastic engine uses PacksRetired/PacksReplaced to compute lumpy CapEx.
type degradationStepResult struct {
	packsRetired    int
	packsReplaced   int
	activePackCount int
	avgSOH          float64
	snapshots       []models.CohortStatus
}

// degradationTracker manages pack cohorts through monthly SOH decay,
// retirement, and auto-replacement. Grounded on engine/degradation.py.
type degradationTracker struct {
	betaPerCycle    float64
	calendarPerMonth float64
	retirementSOH    float64
	autoReplace      bool

	cohorts []*cohort
	nextID  int
}

func newDegradationTracker(pack config.PackSpec, chaos config.ChaosConfig) *degradationTracker {
	return &degradationTracker{
		betaPerCycle:     (pack.CycleDegradationRatePct / 100.0) * chaos.AggressivenessIndex,
		calendarPerMonth: pack.CalendarAgingRatePctPerMonth / 100.0,
		retirementSOH:    pack.RetirementSOHPct,
		autoReplace:      true,
	}
}

func (t *degradationTracker) addCohort(packCount, bornMonth int) int {
	id := t.nextID
	t.nextID++
	t.cohorts = append(t.cohorts, &cohort{
		id:         id,
		bornMonth:  bornMonth,
		packCount:  packCount,
		currentSOH: 1.0,
	})
	return id
}

// activePackCount is the live pack census used by the stochastic engine's
// sabotage cost formula (see DESIGN.md Open Question resolution #2 — the
// static waterfall instead uses a docks_per_station proxy).
func (t *degradationTracker) activePackCount() int {
	total := 0
	for _, c := range t.cohorts {
		if !c.isRetired {
			total += c.packCount
		}
	}
	return total
}

func (t *degradationTracker) avgSOH() float64 {
	var totalPacks int
	var weightedSOH float64
	for _, c := range t.cohorts {
		if !c.isRetired {
			totalPacks += c.packCount
			weightedSOH += c.currentSOH * float64(c.packCount)
		}
	}
	if totalPacks == 0 {
		return 0
	}
	return weightedSOH / float64(totalPacks)
}

func (t *degradationTracker) snapshots() []models.CohortStatus {
	out := make([]models.CohortStatus, len(t.cohorts))
	for i, c := range t.cohorts {
		out[i] = c.snapshot()
	}
	return out
}

func (t *degradationTracker) step(month int, totalFleetCycles int) degradationStepResult {
	activePacks := t.activePackCount()
	if activePacks <= 0 {
		return degradationStepResult{snapshots: t.snapshots()}
	}

	cyclesPerPack := float64(totalFleetCycles) / float64(activePacks)
	totalSOHLoss := t.betaPerCycle*cyclesPerPack + t.calendarPerMonth

	var packsRetired int
	var newlyRetired []*cohort
	for _, c := range t.cohorts {
		if c.isRetired {
			continue
		}
		c.currentSOH -= totalSOHLoss
		c.cumulativeCycles += roundToInt(cyclesPerPack)

		if c.currentSOH <= t.retirementSOH+retirementEpsilon {
			c.isRetired = true
			m := month
			c.retiredMonth = &m
			packsRetired += c.packCount
			newlyRetired = append(newlyRetired, c)
		}
	}

	var packsReplaced int
	if t.autoReplace && packsRetired > 0 {
		for _, retiredCohort := range newlyRetired {
			t.addCohort(retiredCohort.packCount, month)
			packsReplaced += retiredCohort.packCount
		}
	}

	return degradationStepResult{
		packsRetired:    packsRetired,
		packsReplaced:   packsReplaced,
		activePackCount: t.activePackCount(),
		avgSOH:          round6(t.avgSOH()),
		snapshots:       t.snapshots(),
	}
}
