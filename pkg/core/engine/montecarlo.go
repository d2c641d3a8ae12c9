package engine

import (
	"math"
	"sort"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// RunMonteCarlo runs N independent stochastic simulations with sequential
// seeds, aggregates P10/P50/P90 percentiles, and re-runs the run closest to
// the median net cash flow to serve as the representative full result.
// Grounded on orchestrator.py's _run_monte_carlo.
func RunMonteCarlo(scenario config.Scenario, charger config.ChargerVariant) models.SimulationResult {
	return RunMonteCarloAtPercentile(scenario, charger, 50)
}

// RunMonteCarloAtPercentile is RunMonteCarlo generalized to pick the
// representative full run by proximity to an arbitrary NCF percentile
// instead of always the median — used by pkg/core/optimizer to resolve a
// pilot-sizing search against the P10 or P90 outcome rather than P50.
func RunMonteCarloAtPercentile(scenario config.Scenario, charger config.ChargerVariant, targetPercentile float64) models.SimulationResult {
	baseSeed := defaultSeed
	if scenario.Simulation.RandomSeed != nil {
		baseSeed = *scenario.Simulation.RandomSeed
	}
	numRuns := scenario.Simulation.MonteCarloRuns

	summaries := make([]models.RunSummary, numRuns)
	for i := 0; i < numRuns; i++ {
		result := RunSingleStochastic(scenario, charger, baseSeed+int64(i))
		summaries[i] = result.Summary
	}

	ncfs := make([]float64, numRuns)
	cpcs := make([]float64, numRuns)
	retired := make([]float64, numRuns)
	failures := make([]float64, numRuns)
	fts := make([]float64, numRuns)
	var beMonths []float64

	for i, s := range summaries {
		ncfs[i] = s.TotalNetCashFlow
		cpcs[i] = s.AvgCostPerCycle
		retired[i] = float64(s.TotalPacksRetired)
		failures[i] = float64(s.TotalChargerFailures)
		fts[i] = s.TotalFailureToServe
		if s.BreakEvenMonth != nil {
			beMonths = append(beMonths, float64(*s.BreakEvenMonth))
		}
	}

	mc := &models.MonteCarloSummary{
		NumRuns:            numRuns,
		NCFP10:             percentile(ncfs, 10),
		NCFP50:             percentile(ncfs, 50),
		NCFP90:             percentile(ncfs, 90),
		CPCP10:             percentile(cpcs, 10),
		CPCP50:             percentile(cpcs, 50),
		CPCP90:             percentile(cpcs, 90),
		AvgPacksRetired:    mean(retired),
		MaxPacksRetired:    int(maxOf(retired)),
		AvgChargerFailures: mean(failures),
		AvgFailureToServe:  mean(fts),
		MaxFailureToServe:  maxOf(fts),
	}
	if len(beMonths) > 0 {
		p10 := int(percentile(beMonths, 10))
		p50 := int(percentile(beMonths, 50))
		p90 := int(percentile(beMonths, 90))
		mc.BreakEvenP10, mc.BreakEvenP50, mc.BreakEvenP90 = &p10, &p50, &p90
	}

	target := percentile(ncfs, targetPercentile)
	repIdx := 0
	best := math.Abs(ncfs[0] - target)
	for i := 1; i < len(ncfs); i++ {
		diff := math.Abs(ncfs[i] - target)
		if diff < best {
			best = diff
			repIdx = i
		}
	}

	representative := RunSingleStochastic(scenario, charger, baseSeed+int64(repIdx))
	representative.MonteCarlo = mc
	return representative
}

// percentile implements the "linear" (numpy default, type 7) interpolation
// method over a copy of values (input is not mutated).
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := (float64(n) - 1) * p / 100
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
