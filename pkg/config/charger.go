package config

const (
	FailureDistributionExponential = "exponential"
	FailureDistributionWeibull     = "weibull"
)

// ChargerVariant describes one charger option. Scenarios carry one or more
// variants so callers can compare TCO/NPV across choices.
type ChargerVariant struct {
	Name                       string  `json:"name" yaml:"name"`
	PurchaseCostPerSlot        float64 `json:"purchase_cost_per_slot" yaml:"purchase_cost_per_slot"`
	RatedPowerW                float64 `json:"rated_power_w" yaml:"rated_power_w"`
	ChargingEfficiencyPct      float64 `json:"charging_efficiency_pct" yaml:"charging_efficiency_pct"`
	EfficiencyDecayPctPerYear  float64 `json:"efficiency_decay_pct_per_year" yaml:"efficiency_decay_pct_per_year"`
	MTBFHours                 float64 `json:"mtbf_hours" yaml:"mtbf_hours"`
	MTTRHours                 float64 `json:"mttr_hours" yaml:"mttr_hours"`
	RepairCostPerEvent        float64 `json:"repair_cost_per_event" yaml:"repair_cost_per_event"`
	ReplacementThreshold      int     `json:"replacement_threshold" yaml:"replacement_threshold"`
	FullReplacementCost       float64 `json:"full_replacement_cost" yaml:"full_replacement_cost"`
	SpareInventoryCost        float64 `json:"spare_inventory_cost" yaml:"spare_inventory_cost"`
	ExpectedUsefulLifeYears   float64 `json:"expected_useful_life_years" yaml:"expected_useful_life_years"`

	// FailureDistribution selects the stochastic-engine failure model:
	// "exponential" (constant hazard, standard MTBF) or "weibull"
	// (shape-dependent hazard via WeibullShape).
	FailureDistribution string  `json:"failure_distribution" yaml:"failure_distribution"`
	WeibullShape         float64 `json:"weibull_shape" yaml:"weibull_shape"`
}

// DefaultChargerVariant returns the "Budget-1kW" reference charger.
func DefaultChargerVariant() ChargerVariant {
	return ChargerVariant{
		Name:                      "Budget-1kW",
		PurchaseCostPerSlot:       15_000.0,
		RatedPowerW:               1_500.0,
		ChargingEfficiencyPct:     0.97,
		EfficiencyDecayPctPerYear: 0.005,
		MTBFHours:                80_000.0,
		MTTRHours:                24.0,
		RepairCostPerEvent:       1_000.0,
		ReplacementThreshold:     3,
		FullReplacementCost:      9_500.0,
		SpareInventoryCost:       10_000.0,
		ExpectedUsefulLifeYears:  4.0,
		FailureDistribution:      FailureDistributionExponential,
		WeibullShape:             1.0,
	}
}

func (c ChargerVariant) validate(path string, errs *ValidationErrors) {
	errs.checkGE(path+".purchase_cost_per_slot", c.PurchaseCostPerSlot, 0)
	errs.checkGT(path+".rated_power_w", c.RatedPowerW, 0)
	errs.checkRange(path+".charging_efficiency_pct", c.ChargingEfficiencyPct, 0, 1.0)
	errs.checkGE(path+".efficiency_decay_pct_per_year", c.EfficiencyDecayPctPerYear, 0)
	errs.checkGT(path+".mtbf_hours", c.MTBFHours, 0)
	errs.checkGT(path+".mttr_hours", c.MTTRHours, 0)
	errs.checkGE(path+".repair_cost_per_event", c.RepairCostPerEvent, 0)
	errs.checkIntGE(path+".replacement_threshold", c.ReplacementThreshold, 1)
	errs.checkGE(path+".full_replacement_cost", c.FullReplacementCost, 0)
	errs.checkGE(path+".spare_inventory_cost", c.SpareInventoryCost, 0)
	errs.checkGT(path+".expected_useful_life_years", c.ExpectedUsefulLifeYears, 0)
	errs.checkOneOf(path+".failure_distribution", c.FailureDistribution, FailureDistributionExponential, FailureDistributionWeibull)
	errs.checkGT(path+".weibull_shape", c.WeibullShape, 0)
}
