package fielddata

import (
	"strings"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

const sampleBMSCSV = `pack_id,month,soh,cumulative_cycles,temperature_avg_c
P001,1,0.99,500,32.5
P001,2,0.98,1000,33.1
P002,1,0.995,480,
`

const sampleChargerCSV = `dock_id,failure_month,downtime_hours,charger_variant_name,repair_cost,was_replaced
D01,3,4.5,StandardDC,1200,false
D02,5,12.0,StandardDC,0,true
bad_row,not_a_month,x,,,
`

func TestIngestBMSCSVParsesValidRowsAndSkipsMalformed(t *testing.T) {
	records, err := IngestBMSCSV(strings.NewReader(sampleBMSCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 parsed records, got %d", len(records))
	}
	if records[2].TemperatureAvgC != nil {
		t.Errorf("expected a nil temperature for an empty field, got %v", *records[2].TemperatureAvgC)
	}
}

func TestIngestChargerCSVParsesValidRowsAndSkipsMalformed(t *testing.T) {
	records, err := IngestChargerCSV(strings.NewReader(sampleChargerCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 parsed records (malformed row skipped), got %d", len(records))
	}
	if !records[1].WasReplaced {
		t.Error("expected the second record's was_replaced to parse true")
	}
}

func TestComputeVarianceReportWithNoDataIsEmpty(t *testing.T) {
	report := ComputeVarianceReport(models.FieldDataSet{}, config.DefaultPackSpec(), config.DefaultChargerVariant(), nil, nil)
	if len(report.DegradationByMonth) != 0 || len(report.MTBFByVariant) != 0 {
		t.Error("expected an empty variance report for empty field data")
	}
}

func TestComputeVarianceReportComputesMonthlyDegradation(t *testing.T) {
	data := models.FieldDataSet{
		BMSRecords: []models.BMSRecord{
			{PackID: "P1", Month: 6, SOH: 0.95, CumulativeCycles: 1000},
			{PackID: "P2", Month: 6, SOH: 0.93, CumulativeCycles: 1100},
		},
	}
	report := ComputeVarianceReport(data, config.DefaultPackSpec(), config.DefaultChargerVariant(), nil, nil)
	if len(report.DegradationByMonth) != 1 {
		t.Fatalf("expected one month of degradation variance, got %d", len(report.DegradationByMonth))
	}
	if report.DegradationByMonth[0].NumPacksObserved != 2 {
		t.Errorf("expected 2 packs observed, got %d", report.DegradationByMonth[0].NumPacksObserved)
	}
}

func TestAutoTuneParametersRequiresMinimumConfidence(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]

	data := models.FieldDataSet{
		BMSRecords: []models.BMSRecord{
			{PackID: "P1", Month: 3, SOH: 0.97, CumulativeCycles: 600},
		},
	}

	result := AutoTuneParameters(data, scenario, charger, 0.5)
	if len(result.Parameters) != 0 {
		t.Errorf("expected no tuned parameters with a single pack below the confidence threshold, got %d", len(result.Parameters))
	}

	resultLowConfidence := AutoTuneParameters(data, scenario, charger, 0.0)
	if len(resultLowConfidence.Parameters) == 0 {
		t.Error("expected at least one tuned parameter once the confidence floor is dropped to zero")
	}
}

func TestApplyTunedParametersAppliesEachPath(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]

	result := models.AutoTuneResult{
		Parameters: []models.TunedParameter{
			{ParamPath: "pack.cycle_degradation_rate_pct", TunedValue: 0.02},
			{ParamPath: "charger.mtbf_hours", TunedValue: 50_000},
		},
	}

	tunedScenario, tunedCharger := ApplyTunedParameters(scenario, charger, result)
	if tunedScenario.Pack.CycleDegradationRatePct != 0.02 {
		t.Errorf("expected tuned degradation rate to apply, got %v", tunedScenario.Pack.CycleDegradationRatePct)
	}
	if tunedCharger.MTBFHours != 50_000 {
		t.Errorf("expected tuned MTBF to apply, got %v", tunedCharger.MTBFHours)
	}
	if scenario.Pack.CycleDegradationRatePct == 0.02 {
		t.Error("expected the original scenario to be unmodified")
	}
}

func TestCheckChargerRecommendationFlagsLargeNPVShift(t *testing.T) {
	scenario := config.DefaultScenario()
	scenario.Simulation.HorizonMonths = 12
	charger := scenario.ChargerVariants[0]

	autoTune := map[string]models.AutoTuneResult{
		charger.Name: {
			Parameters: []models.TunedParameter{
				{ParamPath: "charger.mtbf_hours", OriginalValue: charger.MTBFHours, TunedValue: charger.MTBFHours / 5, ChangePct: -80},
			},
		},
	}
	originalNPVs := map[string]float64{charger.Name: 1_000_000}

	alerts := CheckChargerRecommendation(scenario, []config.ChargerVariant{charger}, autoTune, originalNPVs, 0.01)

	if len(alerts) == 0 {
		t.Fatal("expected at least one alert from a drastically worse MTBF")
	}
	if alerts[0].AlertType != models.AlertTypeMTBFDrift {
		t.Errorf("expected an mtbf_drift alert, got %q", alerts[0].AlertType)
	}
}
