// Package config defines the scenario input model for the battery-swap
// network simulator: one vehicle type, one pack spec, one or more
// charger variants, and the station/opex/revenue/chaos/demand/finance/
// simulation settings that parameterize a single run.
package config

// VehicleConfig describes one vehicle type, fixed for the duration of a run.
type VehicleConfig struct {
	Name                     string  `json:"name" yaml:"name"`
	PacksPerVehicle          int     `json:"packs_per_vehicle" yaml:"packs_per_vehicle"`
	PackCapacityKWh          float64 `json:"pack_capacity_kwh" yaml:"pack_capacity_kwh"`
	AvgDailyKM               float64 `json:"avg_daily_km" yaml:"avg_daily_km"`
	EnergyConsumptionWhPerKM float64 `json:"energy_consumption_wh_per_km" yaml:"energy_consumption_wh_per_km"`
	SwapTimeMinutes          float64 `json:"swap_time_minutes" yaml:"swap_time_minutes"`
	// RangeAnxietyBufferPct is a behavioural assumption (e.g. 0.20 = driver
	// swaps at 20% SoC), not a hard technical limit.
	RangeAnxietyBufferPct float64 `json:"range_anxiety_buffer_pct" yaml:"range_anxiety_buffer_pct"`
}

// DefaultVehicleConfig returns the "Heavy 2W" reference vehicle.
func DefaultVehicleConfig() VehicleConfig {
	return VehicleConfig{
		Name:                     "Heavy 2W",
		PacksPerVehicle:          2,
		PackCapacityKWh:          1.28,
		AvgDailyKM:               150.0,
		EnergyConsumptionWhPerKM: 30.0,
		SwapTimeMinutes:          0.5,
		RangeAnxietyBufferPct:    0.20,
	}
}

func (v VehicleConfig) validate(path string, errs *ValidationErrors) {
	errs.checkIntRange(path+".packs_per_vehicle", v.PacksPerVehicle, 1, 4)
	errs.checkGT(path+".pack_capacity_kwh", v.PackCapacityKWh, 0)
	errs.checkGT(path+".avg_daily_km", v.AvgDailyKM, 0)
	errs.checkGT(path+".energy_consumption_wh_per_km", v.EnergyConsumptionWhPerKM, 0)
	errs.checkGT(path+".swap_time_minutes", v.SwapTimeMinutes, 0)
	errs.checkRange(path+".range_anxiety_buffer_pct", v.RangeAnxietyBufferPct, 0, 1.0)
}
