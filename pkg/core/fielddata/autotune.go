package fielddata

import (
	"sort"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// AutoTuneParameters adjusts cycle degradation rate, calendar aging rate,
// and charger MTBF from field observations, excluding any tuned parameter
// whose sample-size confidence falls below minConfidence. Grounded on
// field_data.py's auto_tune_parameters.
func AutoTuneParameters(data models.FieldDataSet, scenario config.Scenario, charger config.ChargerVariant, minConfidence float64) models.AutoTuneResult {
	var tuned []models.TunedParameter

	if beta := tuneDegradationRate(data, scenario.Pack, &scenario.Chaos); beta != nil {
		confidence := minF(1.0, float64(data.NumUniquePacks())/50)
		if confidence >= minConfidence {
			original := scenario.Pack.CycleDegradationRatePct
			changePct := 0.0
			if original > 0 {
				changePct = (*beta - original) / original * 100
			}
			tuned = append(tuned, models.TunedParameter{
				ParamPath:     "pack.cycle_degradation_rate_pct",
				OriginalValue: original,
				TunedValue:    round6(*beta),
				ChangePct:     round2(changePct),
				Confidence:    round2(confidence),
			})
		}
	}

	if mtbf := tuneChargerMTBF(data, charger, &scenario.Station); mtbf != nil {
		confidence := minF(1.0, float64(len(data.ChargerFailureRecords))/10)
		if confidence >= minConfidence {
			original := charger.MTBFHours
			changePct := 0.0
			if original > 0 {
				changePct = (*mtbf - original) / original * 100
			}
			tuned = append(tuned, models.TunedParameter{
				ParamPath:     "charger.mtbf_hours",
				OriginalValue: original,
				TunedValue:    round2(*mtbf),
				ChangePct:     round2(changePct),
				Confidence:    round2(confidence),
			})
		}
	}

	if calendar := tuneCalendarAging(data); calendar != nil {
		confidence := minF(1.0, float64(data.NumUniquePacks())/50)
		if confidence >= minConfidence {
			original := scenario.Pack.CalendarAgingRatePctPerMonth
			changePct := 0.0
			if original > 0 {
				changePct = (*calendar - original) / original * 100
			}
			tuned = append(tuned, models.TunedParameter{
				ParamPath:     "pack.calendar_aging_rate_pct_per_month",
				OriginalValue: original,
				TunedValue:    round6(*calendar),
				ChangePct:     round2(changePct),
				Confidence:    round2(confidence),
			})
		}
	}

	return models.AutoTuneResult{
		Parameters:           tuned,
		DataMonthsUsed:       data.MaxMonth(),
		NumPacksUsed:         data.NumUniquePacks(),
		NumFailureEventsUsed: len(data.ChargerFailureRecords),
	}
}

// tuneDegradationRate estimates cycle_degradation_rate_pct (β) from BMS
// data via median implied β across all observations: SOH = 1 - β×cycles -
// calendar×months, solved for β.
func tuneDegradationRate(data models.FieldDataSet, pack config.PackSpec, chaos *config.ChaosConfig) *float64 {
	if len(data.BMSRecords) == 0 {
		return nil
	}

	aggressiveness := 1.0
	if chaos != nil {
		aggressiveness = chaos.AggressivenessIndex
	}
	calendarPerMonth := pack.CalendarAgingRatePctPerMonth / 100.0

	var betas []float64
	for _, rec := range data.BMSRecords {
		if rec.CumulativeCycles <= 0 {
			continue
		}
		calendarLoss := calendarPerMonth * float64(rec.Month)
		cyclingLoss := 1.0 - rec.SOH - calendarLoss
		if cyclingLoss < 0 {
			cyclingLoss = 0.0
		}
		betaEff := cyclingLoss / float64(rec.CumulativeCycles)
		betaRaw := betaEff
		if aggressiveness > 0 {
			betaRaw = betaEff / aggressiveness
		}
		betas = append(betas, betaRaw*100.0)
	}
	if len(betas) == 0 {
		return nil
	}
	m := median(betas)
	return &m
}

// tuneCalendarAging estimates monthly calendar aging from low-cycle (<50
// cumulative cycles) packs, where SOH loss is attributable almost entirely
// to age rather than usage.
func tuneCalendarAging(data models.FieldDataSet) *float64 {
	var lowCycle []models.BMSRecord
	for _, r := range data.BMSRecords {
		if r.CumulativeCycles < 50 && r.Month > 0 {
			lowCycle = append(lowCycle, r)
		}
	}
	if len(lowCycle) < 3 {
		return nil
	}

	var rates []float64
	for _, rec := range lowCycle {
		sohLoss := 1.0 - rec.SOH
		if sohLoss <= 0 {
			continue
		}
		rates = append(rates, sohLoss/float64(rec.Month)*100.0)
	}
	if len(rates) == 0 {
		return nil
	}
	m := median(rates)
	return &m
}

// tuneChargerMTBF estimates actual MTBF from failure-log data:
// total_operating_hours / total_failures.
func tuneChargerMTBF(data models.FieldDataSet, charger config.ChargerVariant, station *config.StationConfig) *float64 {
	if len(data.ChargerFailureRecords) == 0 {
		return nil
	}

	operatingHoursPerDay := 18.0
	if station != nil {
		operatingHoursPerDay = station.OperatingHoursPerDay
	}

	totalFailures := len(data.ChargerFailureRecords)
	maxMonth := 0
	docks := make(map[string]struct{})
	for _, f := range data.ChargerFailureRecords {
		if f.FailureMonth > maxMonth {
			maxMonth = f.FailureMonth
		}
		docks[f.DockID] = struct{}{}
	}

	totalOperatingHours := float64(len(docks)) * operatingHoursPerDay * 30 * float64(maxMonth)
	mtbf := totalOperatingHours / float64(totalFailures)
	return &mtbf
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
