package models

// BMSRecord is one battery-management-system reading ingested from a field
// CSV: pack_id, month, soh, cumulative_cycles[, temperature_avg_c].
type BMSRecord struct {
	PackID            string
	Month             int
	SOH               float64
	CumulativeCycles  int
	TemperatureAvgC   *float64
}

// ChargerFailureRecord is one field-reported charger failure event:
// dock_id, failure_month, downtime_hours[, charger_variant_name,
// repair_cost, was_replaced].
type ChargerFailureRecord struct {
	DockID              string
	ChargerVariantName  *string
	FailureMonth        int
	DowntimeHours       float64
	RepairCost          *float64
	WasReplaced         bool
}

// FieldDataSet bundles ingested BMS and charger-failure records for a
// variance/auto-tune pass.
type FieldDataSet struct {
	BMSRecords           []BMSRecord
	ChargerFailureRecords []ChargerFailureRecord
}

// NumUniquePacks returns the count of distinct pack IDs in the BMS records.
func (f FieldDataSet) NumUniquePacks() int {
	seen := make(map[string]struct{})
	for _, r := range f.BMSRecords {
		seen[r.PackID] = struct{}{}
	}
	return len(seen)
}

// NumUniqueDocks returns the count of distinct dock IDs in the charger
// failure records.
func (f FieldDataSet) NumUniqueDocks() int {
	seen := make(map[string]struct{})
	for _, r := range f.ChargerFailureRecords {
		seen[r.DockID] = struct{}{}
	}
	return len(seen)
}

// MaxMonth returns the highest month number seen across both record sets, or
// 0 if there are no records.
func (f FieldDataSet) MaxMonth() int {
	max := 0
	for _, r := range f.BMSRecords {
		if r.Month > max {
			max = r.Month
		}
	}
	for _, r := range f.ChargerFailureRecords {
		if r.FailureMonth > max {
			max = r.FailureMonth
		}
	}
	return max
}

// DegradationVariance compares one month's actual field SOH against the
// model's projected SOH.
type DegradationVariance struct {
	Month              int     `json:"month"`
	ActualAvgSOH       float64 `json:"actual_avg_soh"`
	ProjectedAvgSOH    float64 `json:"projected_avg_soh"`
	VariancePct        float64 `json:"variance_pct"`
	NumPacksObserved   int     `json:"num_packs_observed"`
}

// MTBFVariance compares one charger variant's actual field MTBF against the
// model's configured MTBF.
type MTBFVariance struct {
	ChargerVariantName string  `json:"charger_variant_name"`
	ActualMTBFHours    float64 `json:"actual_mtbf_hours"`
	ProjectedMTBFHours float64 `json:"projected_mtbf_hours"`
	VariancePct        float64 `json:"variance_pct"`
	NumFailuresObserved int    `json:"num_failures_observed"`
}

// VarianceReport bundles degradation and MTBF variance across the field
// data window.
type VarianceReport struct {
	DegradationByMonth   []DegradationVariance `json:"degradation_by_month"`
	MTBFByVariant        []MTBFVariance        `json:"mtbf_by_variant"`
	OverallSOHDriftPct   float64               `json:"overall_soh_drift_pct"`
	OverallMTBFDriftPct  float64               `json:"overall_mtbf_drift_pct"`
}

// TunedParameter is one auto-tuned scenario field: its path, original and
// tuned values, and a confidence score in [0, 1].
type TunedParameter struct {
	ParamPath     string  `json:"param_path"`
	OriginalValue float64 `json:"original_value"`
	TunedValue    float64 `json:"tuned_value"`
	ChangePct     float64 `json:"change_pct"`
	Confidence    float64 `json:"confidence"`
}

// AutoTuneResult bundles every parameter auto-tune accepted this pass (i.e.
// whose confidence met the caller's minimum).
type AutoTuneResult struct {
	Parameters          []TunedParameter `json:"parameters"`
	DataMonthsUsed      int              `json:"data_months_used"`
	NumPacksUsed        int              `json:"num_packs_used"`
	NumFailureEventsUsed int             `json:"num_failure_events_used"`
}

// Alert severities for ChargerRecommendationAlert.
const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

// Alert types for ChargerRecommendationAlert.
const (
	AlertTypeMTBFDrift     = "mtbf_drift"
	AlertTypeCostOverrun   = "cost_overrun"
	AlertTypeRankingChange = "ranking_change"
)

// ChargerRecommendationAlert flags that re-running the model with
// auto-tuned (field-calibrated) parameters moved a charger's NPV, or the
// overall best-charger ranking, by enough to warrant attention.
type ChargerRecommendationAlert struct {
	AlertType        string   `json:"alert_type"`
	Severity         string   `json:"severity"`
	Message          string   `json:"message"`
	AffectedCharger  string   `json:"affected_charger"`
	OriginalNPV      *float64 `json:"original_npv,omitempty"`
	RevisedNPV       *float64 `json:"revised_npv,omitempty"`
	NPVDelta         *float64 `json:"npv_delta,omitempty"`
}

// PilotSizingResult is the L7 pilot-sizing recommendation, produced by
// either the binary-search or the list-evaluation mode.
type PilotSizingResult struct {
	RecommendedFleetSize         int               `json:"recommended_fleet_size"`
	RecommendedNumStations       int               `json:"recommended_num_stations"`
	RecommendedDocksPerStation   int               `json:"recommended_docks_per_station"`
	TargetConfidencePct          float64           `json:"target_confidence_pct"`
	TargetMetric                 string            `json:"target_metric"`
	Achieved                     bool              `json:"achieved"`
	BestNPV                      *float64          `json:"best_npv,omitempty"`
	BestBreakEvenMonth           *int              `json:"best_break_even_month,omitempty"`
	BestMonthlyNCFAtTarget       *float64          `json:"best_monthly_ncf_at_target,omitempty"`
	SearchIterations             int               `json:"search_iterations"`
	SearchLog                    []PilotSearchStep `json:"search_log"`
}

// PilotSearchStep is one evaluated fleet-size candidate in a pilot-sizing
// search log.
type PilotSearchStep struct {
	FleetSize      int      `json:"fleet_size"`
	NPV            *float64 `json:"npv,omitempty"`
	NCF            *float64 `json:"ncf,omitempty"`
	BreakEvenMonth *int     `json:"break_even_month,omitempty"`
	Passed         bool     `json:"passed"`
}

// TornadoBar is one sensitivity-sweep result: the NPV delta from moving one
// parameter from its low to high perturbation.
type TornadoBar struct {
	ParamName  string  `json:"param_name"`
	ParamPath  string  `json:"param_path"`
	BaseValue  float64 `json:"base_value"`
	LowValue   float64 `json:"low_value"`
	HighValue  float64 `json:"high_value"`
	NPVAtLow   float64 `json:"npv_at_low"`
	NPVAtHigh  float64 `json:"npv_at_high"`
	DeltaNPV   float64 `json:"delta_npv"`
}

// SensitivityResult bundles the base-case NPV and every swept parameter's
// tornado bar, sorted by DeltaNPV descending.
type SensitivityResult struct {
	BaseNPV float64      `json:"base_npv"`
	Bars    []TornadoBar `json:"bars"`
}
