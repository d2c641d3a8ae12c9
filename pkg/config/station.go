package config

// StationConfig describes station-level infrastructure inputs.
type StationConfig struct {
	CabinetCost          float64 `json:"cabinet_cost" yaml:"cabinet_cost"`
	SitePrepCost         float64 `json:"site_prep_cost" yaml:"site_prep_cost"`
	GridConnectionCost   float64 `json:"grid_connection_cost" yaml:"grid_connection_cost"`
	SoftwareCost         float64 `json:"software_cost" yaml:"software_cost"`
	SecurityDeposit      float64 `json:"security_deposit" yaml:"security_deposit"`
	NumStations          int     `json:"num_stations" yaml:"num_stations"`
	DocksPerStation      int     `json:"docks_per_station" yaml:"docks_per_station"`
	OperatingHoursPerDay float64 `json:"operating_hours_per_day" yaml:"operating_hours_per_day"`
	// BatteryFloatPct is a configured fraction of extra pack inventory. It
	// is range-checked but no calculation reads it: derived.Compute counts
	// the in-dock float as one pack per dock (PacksInDocks = TotalDocks).
	BatteryFloatPct float64 `json:"battery_float_pct" yaml:"battery_float_pct"`
}

// PerStationCapex returns the one-time build cost of a single station,
// excluding software (software is a network-wide one-time cost).
func (s StationConfig) PerStationCapex() float64 {
	return s.CabinetCost + s.SitePrepCost + s.GridConnectionCost + s.SecurityDeposit
}

// DefaultStationConfig returns the 5-station, 50-dock reference network.
func DefaultStationConfig() StationConfig {
	return StationConfig{
		CabinetCost:          50_000.0,
		SitePrepCost:         30_000.0,
		GridConnectionCost:   500_000.0,
		SoftwareCost:         100_000.0,
		SecurityDeposit:      20_000.0,
		NumStations:          5,
		DocksPerStation:      50,
		OperatingHoursPerDay: 21.0,
		BatteryFloatPct:      0.10,
	}
}

func (s StationConfig) validate(path string, errs *ValidationErrors) {
	errs.checkGE(path+".cabinet_cost", s.CabinetCost, 0)
	errs.checkGE(path+".site_prep_cost", s.SitePrepCost, 0)
	errs.checkRange(path+".grid_connection_cost", s.GridConnectionCost, 0, 2_000_000.0)
	errs.checkGE(path+".software_cost", s.SoftwareCost, 0)
	errs.checkGE(path+".security_deposit", s.SecurityDeposit, 0)
	errs.checkIntGE(path+".num_stations", s.NumStations, 1)
	errs.checkIntRange(path+".docks_per_station", s.DocksPerStation, 1, 100)
	errs.checkRange(path+".operating_hours_per_day", s.OperatingHoursPerDay, 0, 24.0)
	errs.checkRange(path+".battery_float_pct", s.BatteryFloatPct, 0, 1.0)
}
