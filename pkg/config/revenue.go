package config

// RevenueConfig holds swap pricing and fleet-ramp inputs.
type RevenueConfig struct {
	// PricePerSwap is the gross price per swap VISIT (per vehicle, not per
	// pack) — a 2-pack vehicle pays this once per visit.
	PricePerSwap           float64 `json:"price_per_swap" yaml:"price_per_swap"`
	InitialFleetSize       int     `json:"initial_fleet_size" yaml:"initial_fleet_size"`
	MonthlyFleetAdditions  int     `json:"monthly_fleet_additions" yaml:"monthly_fleet_additions"`
}

// DefaultRevenueConfig returns the 200-vehicle, ₹80/swap reference scenario.
func DefaultRevenueConfig() RevenueConfig {
	return RevenueConfig{
		PricePerSwap:          80.0,
		InitialFleetSize:      200,
		MonthlyFleetAdditions: 0,
	}
}

func (r RevenueConfig) validate(path string, errs *ValidationErrors) {
	errs.checkGE(path+".price_per_swap", r.PricePerSwap, 0)
	errs.checkIntGE(path+".initial_fleet_size", r.InitialFleetSize, 1)
	errs.checkIntGE(path+".monthly_fleet_additions", r.MonthlyFleetAdditions, 0)
}
