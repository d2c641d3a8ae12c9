package config

// OpExConfig holds monthly operating cost inputs.
type OpExConfig struct {
	ElectricityTariffPerKWh                  float64 `json:"electricity_tariff_per_kwh" yaml:"electricity_tariff_per_kwh"`
	AuxiliaryPowerPerMonth                   float64 `json:"auxiliary_power_per_month" yaml:"auxiliary_power_per_month"`
	RentPerMonthPerStation                   float64 `json:"rent_per_month_per_station" yaml:"rent_per_month_per_station"`
	PreventiveMaintenancePerMonthPerStation  float64 `json:"preventive_maintenance_per_month_per_station" yaml:"preventive_maintenance_per_month_per_station"`
	CorrectiveMaintenancePerMonthPerStation  float64 `json:"corrective_maintenance_per_month_per_station" yaml:"corrective_maintenance_per_month_per_station"`
	InsurancePerMonthPerStation              float64 `json:"insurance_per_month_per_station" yaml:"insurance_per_month_per_station"`
	LogisticsPerMonthPerStation              float64 `json:"logistics_per_month_per_station" yaml:"logistics_per_month_per_station"`
	PackHandlingLaborPerSwap                float64 `json:"pack_handling_labor_per_swap" yaml:"pack_handling_labor_per_swap"`
	OverheadPerMonth                        float64 `json:"overhead_per_month" yaml:"overhead_per_month"`
}

// DefaultOpExConfig returns the reference monthly cost structure.
func DefaultOpExConfig() OpExConfig {
	return OpExConfig{
		ElectricityTariffPerKWh:                 6.50,
		AuxiliaryPowerPerMonth:                  2_000.0,
		RentPerMonthPerStation:                  15_000.0,
		PreventiveMaintenancePerMonthPerStation: 3_000.0,
		CorrectiveMaintenancePerMonthPerStation: 1_000.0,
		InsurancePerMonthPerStation:             2_000.0,
		LogisticsPerMonthPerStation:             5_000.0,
		PackHandlingLaborPerSwap:                2.0,
		OverheadPerMonth:                        20_000.0,
	}
}

func (o OpExConfig) validate(path string, errs *ValidationErrors) {
	errs.checkGE(path+".electricity_tariff_per_kwh", o.ElectricityTariffPerKWh, 0)
	errs.checkGE(path+".auxiliary_power_per_month", o.AuxiliaryPowerPerMonth, 0)
	errs.checkGE(path+".rent_per_month_per_station", o.RentPerMonthPerStation, 0)
	errs.checkGE(path+".preventive_maintenance_per_month_per_station", o.PreventiveMaintenancePerMonthPerStation, 0)
	errs.checkGE(path+".corrective_maintenance_per_month_per_station", o.CorrectiveMaintenancePerMonthPerStation, 0)
	errs.checkGE(path+".insurance_per_month_per_station", o.InsurancePerMonthPerStation, 0)
	errs.checkGE(path+".logistics_per_month_per_station", o.LogisticsPerMonthPerStation, 0)
	errs.checkGE(path+".pack_handling_labor_per_swap", o.PackHandlingLaborPerSwap, 0)
	errs.checkGE(path+".overhead_per_month", o.OverheadPerMonth, 0)
}
