package fielddata

import (
	"math"
	"sort"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// ComputeVarianceReport compares the model's SOH/MTBF projections against
// observed field data, producing a month-by-month degradation variance and
// a per-charger-variant MTBF variance. Grounded on
// field_data.py's compute_variance_report.
func ComputeVarianceReport(data models.FieldDataSet, pack config.PackSpec, charger config.ChargerVariant, chaos *config.ChaosConfig, station *config.StationConfig) models.VarianceReport {
	degMonthly := computeDegradationVariance(data, pack, chaos)
	mtbfList := computeMTBFVariance(data, charger, station)

	var sohDrift, mtbfDrift float64
	if len(degMonthly) > 0 {
		var sum float64
		for _, d := range degMonthly {
			sum += d.VariancePct
		}
		sohDrift = round4(sum / float64(len(degMonthly)))
	}
	if len(mtbfList) > 0 {
		var sum float64
		for _, m := range mtbfList {
			sum += m.VariancePct
		}
		mtbfDrift = round4(sum / float64(len(mtbfList)))
	}

	return models.VarianceReport{
		DegradationByMonth:  degMonthly,
		MTBFByVariant:       mtbfList,
		OverallSOHDriftPct:  sohDrift,
		OverallMTBFDriftPct: mtbfDrift,
	}
}

func computeDegradationVariance(data models.FieldDataSet, pack config.PackSpec, chaos *config.ChaosConfig) []models.DegradationVariance {
	if len(data.BMSRecords) == 0 {
		return nil
	}

	aggressiveness := 1.0
	if chaos != nil {
		aggressiveness = chaos.AggressivenessIndex
	}
	betaPerCycle := (pack.CycleDegradationRatePct / 100.0) * aggressiveness
	calendarPerMonth := pack.CalendarAgingRatePctPerMonth / 100.0

	byMonth := make(map[int][]models.BMSRecord)
	for _, rec := range data.BMSRecords {
		byMonth[rec.Month] = append(byMonth[rec.Month], rec)
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	results := make([]models.DegradationVariance, 0, len(months))
	for _, month := range months {
		recs := byMonth[month]
		var sohSum float64
		var cyclesSum float64
		for _, r := range recs {
			sohSum += r.SOH
			cyclesSum += float64(r.CumulativeCycles)
		}
		actualAvgSOH := sohSum / float64(len(recs))
		avgCycles := cyclesSum / float64(len(recs))

		projectedLossCycling := betaPerCycle * avgCycles
		projectedLossCalendar := calendarPerMonth * float64(month)
		projectedAvgSOH := math.Max(1.0-projectedLossCycling-projectedLossCalendar, 0.0)

		var variancePct float64
		if projectedAvgSOH > 0 {
			variancePct = (actualAvgSOH - projectedAvgSOH) / projectedAvgSOH * 100.0
		}

		results = append(results, models.DegradationVariance{
			Month:            month,
			ProjectedAvgSOH:  round6(projectedAvgSOH),
			ActualAvgSOH:     round6(actualAvgSOH),
			VariancePct:      round4(variancePct),
			NumPacksObserved: len(recs),
		})
	}
	return results
}

func computeMTBFVariance(data models.FieldDataSet, charger config.ChargerVariant, station *config.StationConfig) []models.MTBFVariance {
	if len(data.ChargerFailureRecords) == 0 {
		return nil
	}

	operatingHoursPerDay := 18.0
	if station != nil {
		operatingHoursPerDay = station.OperatingHoursPerDay
	}

	type key struct {
		name string
		has  bool
	}
	byVariant := make(map[key][]models.ChargerFailureRecord)
	var order []key
	for _, rec := range data.ChargerFailureRecords {
		k := key{}
		if rec.ChargerVariantName != nil {
			k = key{name: *rec.ChargerVariantName, has: true}
		}
		if _, ok := byVariant[k]; !ok {
			order = append(order, k)
		}
		byVariant[k] = append(byVariant[k], rec)
	}

	results := make([]models.MTBFVariance, 0, len(order))
	for _, k := range order {
		failures := byVariant[k]
		totalFailures := len(failures)
		if totalFailures == 0 {
			continue
		}

		maxMonth := 0
		docks := make(map[string]struct{})
		for _, f := range failures {
			if f.FailureMonth > maxMonth {
				maxMonth = f.FailureMonth
			}
			docks[f.DockID] = struct{}{}
		}

		totalOperatingHours := float64(len(docks)) * operatingHoursPerDay * 30 * float64(maxMonth)
		actualMTBF := math.Inf(1)
		if totalFailures > 0 {
			actualMTBF = totalOperatingHours / float64(totalFailures)
		}

		projectedMTBF := charger.MTBFHours
		var variancePct float64
		if projectedMTBF > 0 {
			variancePct = (actualMTBF - projectedMTBF) / projectedMTBF * 100.0
		}

		name := k.name
		if !k.has {
			name = charger.Name
		}

		results = append(results, models.MTBFVariance{
			ChargerVariantName:  name,
			ProjectedMTBFHours:  projectedMTBF,
			ActualMTBFHours:     round2(actualMTBF),
			VariancePct:         round4(variancePct),
			NumFailuresObserved: totalFailures,
		})
	}
	return results
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round6(v float64) float64 { return math.Round(v*1_000_000) / 1_000_000 }
