package config

const (
	DepreciationStraightLine = "straight_line"
	DepreciationWDV          = "wdv"

	TerminalValueSalvage      = "salvage"
	TerminalValueGordonGrowth = "gordon_growth"
	TerminalValueNone         = "none"
)

// FinanceConfig holds debt structure, depreciation, tax, and terminal-value
// assumptions driving the DCF engine, debt schedule, DSCR, and statements.
type FinanceConfig struct {
	// --- Debt structure ---
	DebtPctOfCapex     float64 `json:"debt_pct_of_capex" yaml:"debt_pct_of_capex"`
	InterestRateAnnual float64 `json:"interest_rate_annual" yaml:"interest_rate_annual"`
	LoanTenorMonths    int     `json:"loan_tenor_months" yaml:"loan_tenor_months"`
	GracePeriodMonths  int     `json:"grace_period_months" yaml:"grace_period_months"`

	// --- Depreciation ---
	DepreciationMethod     string `json:"depreciation_method" yaml:"depreciation_method"`
	AssetUsefulLifeMonths  int    `json:"asset_useful_life_months" yaml:"asset_useful_life_months"`
	WDVRateAnnual          float64 `json:"wdv_rate_annual" yaml:"wdv_rate_annual"`

	// --- Tax ---
	TaxRate float64 `json:"tax_rate" yaml:"tax_rate"`

	// --- Terminal value ---
	TerminalValueMethod string  `json:"terminal_value_method" yaml:"terminal_value_method"`
	TerminalGrowthRate  float64 `json:"terminal_growth_rate" yaml:"terminal_growth_rate"`

	// --- DSCR covenant ---
	DSCRCovenantThreshold float64 `json:"dscr_covenant_threshold" yaml:"dscr_covenant_threshold"`
}

// DefaultFinanceConfig returns the 70%-leverage, straight-line, salvage
// terminal-value reference financing structure.
func DefaultFinanceConfig() FinanceConfig {
	return FinanceConfig{
		DebtPctOfCapex:        0.70,
		InterestRateAnnual:    0.12,
		LoanTenorMonths:       60,
		GracePeriodMonths:     6,
		DepreciationMethod:    DepreciationStraightLine,
		AssetUsefulLifeMonths: 60,
		WDVRateAnnual:         0.25,
		TaxRate:               0.25,
		TerminalValueMethod:   TerminalValueSalvage,
		TerminalGrowthRate:    0.02,
		DSCRCovenantThreshold: 1.20,
	}
}

func (f FinanceConfig) validate(path string, errs *ValidationErrors) {
	errs.checkRange(path+".debt_pct_of_capex", f.DebtPctOfCapex, 0, 1.0)
	errs.checkRange(path+".interest_rate_annual", f.InterestRateAnnual, 0, 0.50)
	errs.checkIntRange(path+".loan_tenor_months", f.LoanTenorMonths, 1, 360)
	errs.checkIntGE(path+".grace_period_months", f.GracePeriodMonths, 0)
	errs.checkOneOf(path+".depreciation_method", f.DepreciationMethod, DepreciationStraightLine, DepreciationWDV)
	errs.checkIntRange(path+".asset_useful_life_months", f.AssetUsefulLifeMonths, 1, 360)
	errs.checkRange(path+".wdv_rate_annual", f.WDVRateAnnual, 0, 1.0)
	errs.checkRange(path+".tax_rate", f.TaxRate, 0, 0.60)
	errs.checkOneOf(path+".terminal_value_method", f.TerminalValueMethod, TerminalValueSalvage, TerminalValueGordonGrowth, TerminalValueNone)
	errs.checkRange(path+".terminal_growth_rate", f.TerminalGrowthRate, 0, 0.10)
	errs.checkGE(path+".dscr_covenant_threshold", f.DSCRCovenantThreshold, 0)
}
