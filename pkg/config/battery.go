package config

// PackSpec describes one battery pack variant, fixed for the duration of a run.
type PackSpec struct {
	Name             string  `json:"name" yaml:"name"`
	NominalCapacityKWh float64 `json:"nominal_capacity_kwh" yaml:"nominal_capacity_kwh"`
	Chemistry        string  `json:"chemistry" yaml:"chemistry"`
	UnitCost         float64 `json:"unit_cost" yaml:"unit_cost"`
	WeightKg         float64 `json:"weight_kg" yaml:"weight_kg"`

	// --- Degradation model ---
	CycleLifeToRetirement         int     `json:"cycle_life_to_retirement" yaml:"cycle_life_to_retirement"`
	CycleDegradationRatePct       float64 `json:"cycle_degradation_rate_pct" yaml:"cycle_degradation_rate_pct"`
	CalendarAgingRatePctPerMonth  float64 `json:"calendar_aging_rate_pct_per_month" yaml:"calendar_aging_rate_pct_per_month"`
	DepthOfDischargePct           float64 `json:"depth_of_discharge_pct" yaml:"depth_of_discharge_pct"`
	RetirementSOHPct              float64 `json:"retirement_soh_pct" yaml:"retirement_soh_pct"`
	SecondLifeSalvageValue        float64 `json:"second_life_salvage_value" yaml:"second_life_salvage_value"`
	// AggressivenessMultiplier is carried for config compatibility but is not
	// read by any degradation formula — those read Chaos.AggressivenessIndex
	// instead (see DESIGN.md Open Question resolution #5).
	AggressivenessMultiplier float64 `json:"aggressiveness_multiplier" yaml:"aggressiveness_multiplier"`

	// --- Failure model (MTBF / MTTR) — random/unexpected failures,
	// separate from cycle degradation.
	MTBFHours              float64 `json:"mtbf_hours" yaml:"mtbf_hours"`
	MTTRHours              float64 `json:"mttr_hours" yaml:"mttr_hours"`
	RepairCostPerEvent     float64 `json:"repair_cost_per_event" yaml:"repair_cost_per_event"`
	ReplacementThreshold   int     `json:"replacement_threshold" yaml:"replacement_threshold"`
	FullReplacementCost    float64 `json:"full_replacement_cost" yaml:"full_replacement_cost"`
	SparePacksCostPerStation float64 `json:"spare_packs_cost_per_station" yaml:"spare_packs_cost_per_station"`
}

// DefaultPackSpec returns the "1.28 kWh LFP" reference pack.
func DefaultPackSpec() PackSpec {
	return PackSpec{
		Name:                         "1.28 kWh LFP",
		NominalCapacityKWh:           1.28,
		Chemistry:                    "LFP",
		UnitCost:                     18_000.0,
		WeightKg:                     8.5,
		CycleLifeToRetirement:        3_000,
		CycleDegradationRatePct:      0.01,
		CalendarAgingRatePctPerMonth: 0.15,
		DepthOfDischargePct:          0.95,
		RetirementSOHPct:             0.70,
		SecondLifeSalvageValue:       6_000.0,
		AggressivenessMultiplier:     1.0,
		MTBFHours:                   50_000.0,
		MTTRHours:                   4.0,
		RepairCostPerEvent:          2_000.0,
		ReplacementThreshold:        3,
		FullReplacementCost:         15_000.0,
		SparePacksCostPerStation:    30_000.0,
	}
}

func (p PackSpec) validate(path string, errs *ValidationErrors) {
	errs.checkGT(path+".nominal_capacity_kwh", p.NominalCapacityKWh, 0)
	errs.checkGE(path+".unit_cost", p.UnitCost, 0)
	errs.checkGT(path+".weight_kg", p.WeightKg, 0)
	errs.checkIntGE(path+".cycle_life_to_retirement", p.CycleLifeToRetirement, 1)
	errs.checkGT(path+".cycle_degradation_rate_pct", p.CycleDegradationRatePct, 0)
	errs.checkGE(path+".calendar_aging_rate_pct_per_month", p.CalendarAgingRatePctPerMonth, 0)
	errs.checkRange(path+".depth_of_discharge_pct", p.DepthOfDischargePct, 0, 1.0)
	errs.checkRange(path+".retirement_soh_pct", p.RetirementSOHPct, 0, 1.0)
	errs.checkGE(path+".second_life_salvage_value", p.SecondLifeSalvageValue, 0)
	errs.checkGE(path+".aggressiveness_multiplier", p.AggressivenessMultiplier, 0.1)
	errs.checkGT(path+".mtbf_hours", p.MTBFHours, 0)
	errs.checkGT(path+".mttr_hours", p.MTTRHours, 0)
	errs.checkGE(path+".repair_cost_per_event", p.RepairCostPerEvent, 0)
	errs.checkIntGE(path+".replacement_threshold", p.ReplacementThreshold, 1)
	errs.checkGE(path+".full_replacement_cost", p.FullReplacementCost, 0)
	errs.checkGE(path+".spare_packs_cost_per_station", p.SparePacksCostPerStation, 0)
}
