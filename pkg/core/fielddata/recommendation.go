package fielddata

import (
	"fmt"
	"sort"
	"strings"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
	"zngsim/pkg/core/finance"
	"zngsim/pkg/models"
)

// ApplyTunedParameters returns scenario/charger clones with every tuned
// parameter from result applied. Each parameter is set through a switch on
// its param path (applyParam) instead of Python's dot-path setattr.
func ApplyTunedParameters(scenario config.Scenario, charger config.ChargerVariant, result models.AutoTuneResult) (config.Scenario, config.ChargerVariant) {
	tunedScenario := scenario.Clone()
	tunedCharger := charger
	for _, p := range result.Parameters {
		applyParam(&tunedScenario, &tunedCharger, p)
	}
	return tunedScenario, tunedCharger
}

func applyParam(scenario *config.Scenario, charger *config.ChargerVariant, p models.TunedParameter) {
	switch p.ParamPath {
	case "pack.cycle_degradation_rate_pct":
		scenario.Pack.CycleDegradationRatePct = p.TunedValue
	case "pack.calendar_aging_rate_pct_per_month":
		scenario.Pack.CalendarAgingRatePctPerMonth = p.TunedValue
	case "charger.mtbf_hours":
		charger.MTBFHours = p.TunedValue
	}
}

// CheckChargerRecommendation re-runs the static engine with each charger
// variant's auto-tuned parameters applied and flags any variant whose NPV
// moved by at least thresholdPct, plus a ranking-change alert if the
// field-adjusted best charger differs from the original best. Grounded on
// field_data.py's check_charger_recommendation.
func CheckChargerRecommendation(scenario config.Scenario, chargerVariants []config.ChargerVariant, autoTuneResults map[string]models.AutoTuneResult, originalNPVs map[string]float64, thresholdPct float64) []models.ChargerRecommendationAlert {
	var alerts []models.ChargerRecommendationAlert
	revisedNPVs := make(map[string]float64, len(originalNPVs))
	for k, v := range originalNPVs {
		revisedNPVs[k] = v
	}

	for _, charger := range chargerVariants {
		tuneResult, ok := autoTuneResults[charger.Name]
		if !ok || len(tuneResult.Parameters) == 0 {
			continue
		}

		tunedScenario, tunedCharger := ApplyTunedParameters(scenario, charger, tuneResult)
		tunedScenario.Simulation.Engine = config.EngineStatic
		tunedScenario.Simulation.MonteCarloRuns = 1

		result := engine.Run(tunedScenario, tunedCharger)
		salvage := float64(result.Derived.TotalPacks) * tunedScenario.Pack.SecondLifeSalvageValue
		dcf := finance.BuildDCFTable(result.Months, tunedScenario.Finance, tunedScenario.Simulation.DiscountRateAnnual, salvage)
		revisedNPV := dcf.NPV

		originalNPV := originalNPVs[charger.Name]
		npvDelta := revisedNPV - originalNPV
		changePct := 0.0
		if originalNPV != 0 {
			changePct = absF(npvDelta / originalNPV * 100)
		}

		revisedNPVs[charger.Name] = revisedNPV

		if changePct < thresholdPct {
			continue
		}

		severity := models.AlertSeverityInfo
		switch {
		case changePct >= 30:
			severity = models.AlertSeverityCritical
		case changePct >= 15:
			severity = models.AlertSeverityWarning
		}

		direction := "better"
		if npvDelta < 0 {
			direction = "worse"
		}

		alertType := models.AlertTypeCostOverrun
		for _, p := range tuneResult.Parameters {
			if strings.Contains(p.ParamPath, "mtbf") {
				alertType = models.AlertTypeMTBFDrift
				break
			}
		}

		message := fmt.Sprintf(
			"Field data shows %s performing %s than spec. NPV changed by ₹%.0f (%+.1f%%). Parameter changes: %s",
			charger.Name, direction, npvDelta, signedPct(npvDelta, changePct), formatParamChanges(tuneResult.Parameters),
		)

		origNPV := originalNPV
		revNPV := revisedNPV
		delta := npvDelta
		alerts = append(alerts, models.ChargerRecommendationAlert{
			AlertType:       alertType,
			Severity:        severity,
			Message:         message,
			AffectedCharger: charger.Name,
			OriginalNPV:     &origNPV,
			RevisedNPV:      &revNPV,
			NPVDelta:        &delta,
		})
	}

	if len(originalNPVs) >= 2 && len(alerts) >= 1 {
		origBest := bestByNPV(originalNPVs)
		newBest := bestByNPV(revisedNPVs)
		if newBest != origBest {
			alerts = append(alerts, models.ChargerRecommendationAlert{
				AlertType:       models.AlertTypeRankingChange,
				Severity:        models.AlertSeverityCritical,
				Message:         fmt.Sprintf("Charger recommendation changed! Original best: %s. Field-data-adjusted best: %s.", origBest, newBest),
				AffectedCharger: newBest,
			})
		}
	}

	return alerts
}

func bestByNPV(npvs map[string]float64) string {
	names := make([]string, 0, len(npvs))
	for name := range npvs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return npvs[names[i]] > npvs[names[j]] })
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func formatParamChanges(params []models.TunedParameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s: %.4g → %.4g (%+.1f%%)", p.ParamPath, p.OriginalValue, p.TunedValue, p.ChangePct))
	}
	return strings.Join(parts, ", ")
}

func signedPct(delta, magnitude float64) float64 {
	if delta < 0 {
		return -magnitude
	}
	return magnitude
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
