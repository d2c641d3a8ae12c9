// Package sensitivity runs automated one-at-a-time parameter sweeps,
// producing tornado-chart data sorted by NPV impact. Grounded on
// finance/sensitivity.py. Python's dot-path reflection (getattr/setattr)
// has no clean Go equivalent; this package replaces it with a small table
// of named get/set closures (see DESIGN.md Open Question resolution #7).
package sensitivity

import (
	"math"
	"sort"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
	"zngsim/pkg/models"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// sweepParam names one swept input and how to read/write it on a
// (Scenario, ChargerVariant) trial pair.
type sweepParam struct {
	name    string
	path    string
	lowPct  float64
	highPct float64
	get     func(*config.Scenario, *config.ChargerVariant) float64
	set     func(*config.Scenario, *config.ChargerVariant, float64)
}

// DefaultSweeps is the standard tornado sweep set (±pct around the base
// scenario's value for each parameter), matching Python's DEFAULT_SWEEPS.
var DefaultSweeps = []sweepParam{
	{
		name: "Pack unit cost", path: "pack.unit_cost", lowPct: -0.15, highPct: 0.15,
		get: func(s *config.Scenario, _ *config.ChargerVariant) float64 { return s.Pack.UnitCost },
		set: func(s *config.Scenario, _ *config.ChargerVariant, v float64) { s.Pack.UnitCost = v },
	},
	{
		name: "Charger MTBF", path: "charger.mtbf_hours", lowPct: -0.20, highPct: 0.20,
		get: func(_ *config.Scenario, c *config.ChargerVariant) float64 { return c.MTBFHours },
		set: func(_ *config.Scenario, c *config.ChargerVariant, v float64) { c.MTBFHours = v },
	},
	{
		name: "Electricity tariff", path: "opex.electricity_tariff_per_kwh", lowPct: -0.10, highPct: 0.10,
		get: func(s *config.Scenario, _ *config.ChargerVariant) float64 { return s.OpEx.ElectricityTariffPerKWh },
		set: func(s *config.Scenario, _ *config.ChargerVariant, v float64) { s.OpEx.ElectricityTariffPerKWh = v },
	},
	{
		name: "Swap price", path: "revenue.price_per_swap", lowPct: -0.10, highPct: 0.10,
		get: func(s *config.Scenario, _ *config.ChargerVariant) float64 { return s.Revenue.PricePerSwap },
		set: func(s *config.Scenario, _ *config.ChargerVariant, v float64) { s.Revenue.PricePerSwap = v },
	},
	{
		name: "Degradation rate β", path: "pack.cycle_degradation_rate_pct", lowPct: -0.20, highPct: 0.20,
		get: func(s *config.Scenario, _ *config.ChargerVariant) float64 { return s.Pack.CycleDegradationRatePct },
		set: func(s *config.Scenario, _ *config.ChargerVariant, v float64) { s.Pack.CycleDegradationRatePct = v },
	},
	{
		name: "Initial fleet size", path: "revenue.initial_fleet_size", lowPct: -0.25, highPct: 0.25,
		get: func(s *config.Scenario, _ *config.ChargerVariant) float64 { return float64(s.Revenue.InitialFleetSize) },
		set: func(s *config.Scenario, _ *config.ChargerVariant, v float64) { s.Revenue.InitialFleetSize = roundToInt(v) },
	},
}

func roundToInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func npvFor(scenario config.Scenario, charger config.ChargerVariant) float64 {
	result := engine.Run(scenario, charger)
	salvage := float64(result.Derived.TotalPacks) * scenario.Pack.SecondLifeSalvageValue
	dcf := finance.BuildDCFTable(result.Months, scenario.Finance, scenario.Simulation.DiscountRateAnnual, salvage)
	return dcf.NPV
}

// Run executes the sensitivity sweep for one charger variant against
// DefaultSweeps, forcing the static engine for speed (matching the
// reference implementation).
func Run(scenario config.Scenario, charger config.ChargerVariant) models.SensitivityResult {
	return RunSweeps(scenario, charger, DefaultSweeps)
}

// RunSweeps runs a caller-supplied sweep table instead of DefaultSweeps.
func RunSweeps(scenario config.Scenario, charger config.ChargerVariant, sweeps []sweepParam) models.SensitivityResult {
	base := scenario.Clone()
	base.Simulation.Engine = config.EngineStatic
	base.Simulation.MonteCarloRuns = 1

	baseNPV := npvFor(base, charger)

	bars := make([]models.TornadoBar, 0, len(sweeps))
	for _, sweep := range sweeps {
		baseVal := sweep.get(&base, &charger)
		lowVal := baseVal * (1 + sweep.lowPct)
		highVal := baseVal * (1 + sweep.highPct)

		lowScenario := base.Clone()
		lowCharger := charger
		sweep.set(&lowScenario, &lowCharger, lowVal)
		npvLow := npvFor(lowScenario, lowCharger)

		highScenario := base.Clone()
		highCharger := charger
		sweep.set(&highScenario, &highCharger, highVal)
		npvHigh := npvFor(highScenario, highCharger)

		bars = append(bars, models.TornadoBar{
			ParamName: sweep.name,
			ParamPath: sweep.path,
			BaseValue: round4(baseVal),
			LowValue:  round4(lowVal),
			HighValue: round4(highVal),
			NPVAtLow:  round2(npvLow),
			NPVAtHigh: round2(npvHigh),
			DeltaNPV:  round2(absFloat(npvHigh - npvLow)),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].DeltaNPV > bars[j].DeltaNPV })

	return models.SensitivityResult{BaseNPV: round2(baseNPV), Bars: bars}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
