// Package models holds the shared result and record types produced by the
// simulation engines (pkg/core/engine), the financial overlay
// (pkg/core/finance), and the analytical loops (pkg/core/sensitivity,
// pkg/core/optimizer, pkg/core/fielddata).
package models

// DerivedParams holds the L1 operational parameters computed once from a
// scenario's physical inputs (see pkg/core/derived).
type DerivedParams struct {
	EnergyPerSwapCyclePerPackKWh    float64 `json:"energy_per_swap_cycle_per_pack_kwh"`
	EnergyPerSwapCyclePerVehicleKWh float64 `json:"energy_per_swap_cycle_per_vehicle_kwh"`
	TotalEnergyPerVehicleKWh        float64 `json:"total_energy_per_vehicle_kwh"`
	DailyEnergyNeedWh               float64 `json:"daily_energy_need_wh"`
	EnergyPerVisitWh                float64 `json:"energy_per_visit_wh"`
	SwapVisitsPerVehiclePerDay       float64 `json:"swap_visits_per_vehicle_per_day"`
	RatedPowerKW                    float64 `json:"rated_power_kw"`
	ChargeTimeMinutes                float64 `json:"charge_time_minutes"`
	EffectiveCRate                   float64 `json:"effective_c_rate"`
	CyclesPerDayPerDock              float64 `json:"cycles_per_day_per_dock"`
	BetaFraction                     float64 `json:"beta_fraction"`
	EffectiveBeta                    float64 `json:"effective_beta"`
	SOHBudget                        float64 `json:"soh_budget"`
	PackLifetimeCycles               int     `json:"pack_lifetime_cycles"`
	TotalDocks                       int     `json:"total_docks"`
	CyclesPerMonthPerStation          float64 `json:"cycles_per_month_per_station"`
	TotalNetworkCyclesPerMonth        float64 `json:"total_network_cycles_per_month"`
	InitialFleetSize                  int     `json:"initial_fleet_size"`
	PacksOnVehicles                   int     `json:"packs_on_vehicles"`
	PacksInDocks                       int     `json:"packs_in_docks"`
	TotalPacks                         int     `json:"total_packs"`
}

// ChargerTCOBreakdown is the L2 total-cost-of-ownership breakdown for a
// charger variant across the simulation horizon (see pkg/core/tco).
type ChargerTCOBreakdown struct {
	ExpectedFailuresOverHorizon float64 `json:"expected_failures_over_horizon"`
	Availability                float64 `json:"availability"`
	TotalRepairCost             float64 `json:"total_repair_cost"`
	NumReplacements             int     `json:"num_replacements"`
	TotalReplacementCost        float64 `json:"total_replacement_cost"`
	TotalDowntimeHours          float64 `json:"total_downtime_hours"`
	LostRevenue                 float64 `json:"lost_revenue"`
	FleetPurchaseCost           float64 `json:"fleet_purchase_cost"`
	FleetSpareCost              float64 `json:"fleet_spare_cost"`
	TotalTCO                    float64 `json:"total_tco"`
	FleetUptimeHours            float64 `json:"fleet_uptime_hours"`
	FleetCyclesServed           float64 `json:"fleet_cycles_served"`
	CostPerCycle                float64 `json:"cost_per_cycle"`
}

// PackTCOBreakdown is the L2 failure-cost breakdown for the pack fleet
// (purchase cost excluded — that is booked via the CPC degradation
// component instead; see pkg/core/tco).
type PackTCOBreakdown struct {
	ExpectedFailures     float64 `json:"expected_failures"`
	TotalRepairCost      float64 `json:"total_repair_cost"`
	NumReplacements      int     `json:"num_replacements"`
	TotalReplacementCost float64 `json:"total_replacement_cost"`
	TotalFailureTCO      float64 `json:"total_failure_tco"`
	FailureCostPerCycle  float64 `json:"failure_cost_per_cycle"`
}

// CostPerCycleWaterfall is the L3 nine-component cost-per-cycle breakdown
// (see pkg/core/cpc).
type CostPerCycleWaterfall struct {
	Degradation float64 `json:"cpc_battery_degradation"`
	Charger     float64 `json:"cpc_charger"`
	Electricity float64 `json:"cpc_electricity"`
	RealEstate  float64 `json:"cpc_real_estate"`
	Maintenance float64 `json:"cpc_maintenance"`
	Insurance   float64 `json:"cpc_insurance"`
	Sabotage    float64 `json:"cpc_sabotage"`
	Logistics   float64 `json:"cpc_logistics"`
	Overhead    float64 `json:"cpc_overhead"`
	Total       float64 `json:"total"`
}

// MonthlySnapshot is one month's row in the engine's monthly loop output.
// Phase-2 (stochastic) fields are zero-valued for static-engine runs.
type MonthlySnapshot struct {
	Month              int     `json:"month"`
	FleetSize          int     `json:"fleet_size"`
	SwapVisits         int     `json:"swap_visits"`
	TotalCycles        int     `json:"total_cycles"`
	Revenue            float64 `json:"revenue"`
	OpexTotal          float64 `json:"opex_total"`
	CapexThisMonth     float64 `json:"capex_this_month"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	CumulativeCashFlow float64 `json:"cumulative_cash_flow"`
	CostPerCycle       float64 `json:"cost_per_cycle"`

	// Stochastic-engine-only fields.
	AvgSOH                  float64 `json:"avg_soh,omitempty"`
	PacksRetiredThisMonth   int     `json:"packs_retired_this_month,omitempty"`
	PacksReplacedThisMonth  int     `json:"packs_replaced_this_month,omitempty"`
	ReplacementCapexThisMonth float64 `json:"replacement_capex_this_month,omitempty"`
	SalvageCreditThisMonth  float64 `json:"salvage_credit_this_month,omitempty"`
	ChargerFailuresThisMonth int    `json:"charger_failures_this_month,omitempty"`
}

// CohortStatus is a point-in-time snapshot of one pack-replacement cohort.
type CohortStatus struct {
	CohortID         int  `json:"cohort_id"`
	BornMonth        int  `json:"born_month"`
	PackCount        int  `json:"pack_count"`
	CurrentSOH       float64 `json:"current_soh"`
	CumulativeCycles int  `json:"cumulative_cycles"`
	IsRetired        bool `json:"is_retired"`
	RetiredMonth     *int `json:"retired_month,omitempty"`
}

// MonteCarloSummary is the L5 percentile aggregation over N stochastic runs.
type MonteCarloSummary struct {
	NumRuns int `json:"num_runs"`

	NCFP10 float64 `json:"ncf_p10"`
	NCFP50 float64 `json:"ncf_p50"`
	NCFP90 float64 `json:"ncf_p90"`

	BreakEvenP10 *int `json:"break_even_p10,omitempty"`
	BreakEvenP50 *int `json:"break_even_p50,omitempty"`
	BreakEvenP90 *int `json:"break_even_p90,omitempty"`

	CPCP10 float64 `json:"cpc_p10"`
	CPCP50 float64 `json:"cpc_p50"`
	CPCP90 float64 `json:"cpc_p90"`

	AvgPacksRetired    float64 `json:"avg_packs_retired"`
	MaxPacksRetired    int     `json:"max_packs_retired"`
	AvgChargerFailures float64 `json:"avg_charger_failures"`
	AvgFailureToServe  float64 `json:"avg_failure_to_serve"`
	MaxFailureToServe  float64 `json:"max_failure_to_serve"`
}

// RunSummary aggregates one full engine run (static, or one stochastic
// seed) into totals. Phase-2-only fields are zero for static runs.
type RunSummary struct {
	ChargerVariantName string  `json:"charger_variant_name"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalOpex          float64 `json:"total_opex"`
	TotalCapex         float64 `json:"total_capex"`
	TotalNetCashFlow   float64 `json:"total_net_cash_flow"`
	AvgCostPerCycle    float64 `json:"avg_cost_per_cycle"`
	BreakEvenMonth     *int    `json:"break_even_month,omitempty"`

	TotalPacksRetired    int     `json:"total_packs_retired,omitempty"`
	TotalChargerFailures int     `json:"total_charger_failures,omitempty"`
	MeanSOHAtEnd         float64 `json:"mean_soh_at_end,omitempty"`
	TotalReplacementCapex float64 `json:"total_replacement_capex,omitempty"`
	TotalSalvageCredit   float64 `json:"total_salvage_credit,omitempty"`
	// TotalFailureToServe is the unmet-demand total that MonteCarloSummary
	// averages and maxes over runs. Neither engine populates it, so it is
	// always zero.
	TotalFailureToServe float64 `json:"total_failure_to_serve,omitempty"`
}

// SimulationResult is the top-level output of one engine run.
type SimulationResult struct {
	ScenarioID      string                `json:"scenario_id"`
	ChargerVariantID string               `json:"charger_variant_id"`
	EngineType      string                `json:"engine_type"`
	Months          []MonthlySnapshot     `json:"months"`
	Summary         RunSummary            `json:"summary"`
	Derived         DerivedParams         `json:"derived"`
	CPCWaterfall    CostPerCycleWaterfall `json:"cpc_waterfall"`
	ChargerTCO      ChargerTCOBreakdown   `json:"charger_tco"`
	PackTCO         PackTCOBreakdown      `json:"pack_tco"`

	// Stochastic-only.
	CohortHistory [][]CohortStatus   `json:"cohort_history,omitempty"`
	MonteCarlo    *MonteCarloSummary `json:"monte_carlo,omitempty"`
}

// MonthlyDCFRow is one row of the discounted cash flow table.
type MonthlyDCFRow struct {
	Month          int     `json:"month"`
	DiscountFactor float64 `json:"discount_factor"`
	NominalNetCF   float64 `json:"nominal_net_cf"`
	PVNetCF        float64 `json:"pv_net_cf"`
	CumulativePV   float64 `json:"cumulative_pv"`
}

// DCFResult is the L6 discounted-cash-flow output: NPV, IRR, payback, and
// the monthly trajectory behind them.
type DCFResult struct {
	NPV                      float64         `json:"npv"`
	IRR                      *float64        `json:"irr,omitempty"`
	DiscountedPaybackMonth   *int            `json:"discounted_payback_month,omitempty"`
	TerminalValue            float64         `json:"terminal_value"`
	// TerminalValueMethodUsed records which method actually produced
	// TerminalValue — normally equal to the configured method, except
	// when a Gordon-growth terminal value falls back to the salvage
	// formula because r <= g (see DESIGN.md Open Question resolution #3).
	TerminalValueMethodUsed string          `json:"terminal_value_method_used"`
	MonthlyDCF               []MonthlyDCFRow `json:"monthly_dcf"`
	UndiscountedTotal        float64         `json:"undiscounted_total"`
}

// DebtScheduleRow is one month of the amortization schedule.
type DebtScheduleRow struct {
	Month          int     `json:"month"`
	OpeningBalance float64 `json:"opening_balance"`
	Interest       float64 `json:"interest"`
	Principal      float64 `json:"principal"`
	EMI            float64 `json:"emi"`
	ClosingBalance float64 `json:"closing_balance"`
}

// DebtSchedule is the L6 loan amortization schedule.
type DebtSchedule struct {
	LoanAmount          float64           `json:"loan_amount"`
	MonthlyRate         float64           `json:"monthly_rate"`
	Rows                []DebtScheduleRow `json:"rows"`
	TotalInterestPaid   float64           `json:"total_interest_paid"`
	TotalPrincipalPaid  float64           `json:"total_principal_paid"`
}

// DSCRResult is the L6 debt-service-coverage-ratio tracking output.
type DSCRResult struct {
	MonthlyDSCR       []float64 `json:"monthly_dscr"`
	AvgDSCR           float64   `json:"avg_dscr"`
	MinDSCR           float64   `json:"min_dscr"`
	MinDSCRMonth      int       `json:"min_dscr_month"`
	BreachMonths      []int     `json:"breach_months"`
	CovenantThreshold float64   `json:"covenant_threshold"`
	AssetCoverRatio   *float64  `json:"asset_cover_ratio,omitempty"`
}

// MonthlyPnL is one month's profit & loss statement row.
type MonthlyPnL struct {
	Month           int     `json:"month"`
	Revenue         float64 `json:"revenue"`
	ElectricityCost float64 `json:"electricity_cost"`
	LaborCost       float64 `json:"labor_cost"`
	GrossProfit     float64 `json:"gross_profit"`
	StationOpex     float64 `json:"station_opex"`
	EBITDA          float64 `json:"ebitda"`
	Depreciation    float64 `json:"depreciation"`
	EBIT            float64 `json:"ebit"`
	Interest        float64 `json:"interest"`
	EBT             float64 `json:"ebt"`
	Tax             float64 `json:"tax"`
	NetIncome       float64 `json:"net_income"`
}

// MonthlyCashFlowStatement is one month's cash-flow statement row.
type MonthlyCashFlowStatement struct {
	Month        int     `json:"month"`
	OperatingCF  float64 `json:"operating_cf"`
	InvestingCF  float64 `json:"investing_cf"`
	FinancingCF  float64 `json:"financing_cf"`
	NetCF        float64 `json:"net_cf"`
	CumulativeCF float64 `json:"cumulative_cf"`
}

// FinancialStatements bundles the full P&L and cash-flow statement series.
type FinancialStatements struct {
	PnL       []MonthlyPnL               `json:"pnl"`
	CashFlow  []MonthlyCashFlowStatement `json:"cash_flow"`
}

// ChargerNPVResult is the L6 discounted charger TCO trajectory.
type ChargerNPVResult struct {
	ChargerName          string    `json:"charger_name"`
	UndiscountedTCO       float64   `json:"undiscounted_tco"`
	PVPurchase            float64   `json:"pv_purchase"`
	PVRepairs             float64   `json:"pv_repairs"`
	PVReplacements        float64   `json:"pv_replacements"`
	PVLostRevenue         float64   `json:"pv_lost_revenue"`
	PVSpares              float64   `json:"pv_spares"`
	NPVTCO                float64   `json:"npv_tco"`
	DiscountedCPC         float64   `json:"discounted_cpc"`
	MonthlyDiscountedCPC  []float64 `json:"monthly_discounted_cpc"`
}
