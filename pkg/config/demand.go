package config

const (
	DemandDistributionPoisson = "poisson"
	DemandDistributionGamma   = "gamma"
	DemandDistributionBimodal = "bimodal"
)

// DemandConfig controls how daily swap demand is generated in the
// stochastic engine. Ignored by the static engine, which uses
// deterministic visits/day from the vehicle/fleet parameters directly.
type DemandConfig struct {
	// Distribution selects the per-day demand model:
	//   "poisson" — visits ~ Poisson(lambda = deterministic visits/day)
	//   "gamma"   — visits ~ Gamma(shape, scale) with CoV = Volatility
	//   "bimodal" — mixture of two Normals (dual-peak demand patterns)
	Distribution      string  `json:"distribution" yaml:"distribution"`
	Volatility        float64 `json:"volatility" yaml:"volatility"`
	WeekendFactor     float64 `json:"weekend_factor" yaml:"weekend_factor"`
	SeasonalAmplitude float64 `json:"seasonal_amplitude" yaml:"seasonal_amplitude"`

	// Bimodal-only parameters (see SPEC_FULL.md §4.5.1).
	BimodalPeakRatio      float64 `json:"bimodal_peak_ratio" yaml:"bimodal_peak_ratio"`
	BimodalPeakSeparation float64 `json:"bimodal_peak_separation" yaml:"bimodal_peak_separation"`
	BimodalStdRatio       float64 `json:"bimodal_std_ratio" yaml:"bimodal_std_ratio"`
}

// DefaultDemandConfig returns the Poisson, no-seasonality reference demand model.
func DefaultDemandConfig() DemandConfig {
	return DemandConfig{
		Distribution:          DemandDistributionPoisson,
		Volatility:            0.15,
		WeekendFactor:         0.6,
		SeasonalAmplitude:     0.0,
		BimodalPeakRatio:      0.6,
		BimodalPeakSeparation: 0.5,
		BimodalStdRatio:       0.15,
	}
}

func (d DemandConfig) validate(path string, errs *ValidationErrors) {
	errs.checkOneOf(path+".distribution", d.Distribution, DemandDistributionPoisson, DemandDistributionGamma, DemandDistributionBimodal)
	errs.checkRange(path+".volatility", d.Volatility, 0.0, 2.0)
	errs.checkRange(path+".weekend_factor", d.WeekendFactor, 0.0, 2.0)
	errs.checkRange(path+".seasonal_amplitude", d.SeasonalAmplitude, 0.0, 1.0)
	errs.checkRange(path+".bimodal_peak_ratio", d.BimodalPeakRatio, 0.1, 0.9)
	errs.checkRange(path+".bimodal_peak_separation", d.BimodalPeakSeparation, 0.1, 2.0)
	errs.checkRange(path+".bimodal_std_ratio", d.BimodalStdRatio, 0.05, 0.5)
}
