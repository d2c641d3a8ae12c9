package cpc

import (
	"math"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

func TestComputeWaterfallZeroCyclesIsAllZero(t *testing.T) {
	d := models.DerivedParams{CyclesPerMonthPerStation: 0}
	w := ComputeWaterfall(d, config.DefaultPackSpec(), config.DefaultChargerVariant(), config.DefaultOpExConfig(), config.DefaultChaosConfig(), config.DefaultStationConfig(), config.DefaultVehicleConfig(), models.ChargerTCOBreakdown{}, models.PackTCOBreakdown{})
	if w.Total != 0 {
		t.Errorf("expected all-zero waterfall when cycles_per_month <= 0, got total=%v", w.Total)
	}
}

func TestComputeWaterfallTotalsReconcile(t *testing.T) {
	d := models.DerivedParams{
		CyclesPerMonthPerStation:   500,
		TotalNetworkCyclesPerMonth: 2500,
		PackLifetimeCycles:         2000,
	}
	w := ComputeWaterfall(d, config.DefaultPackSpec(), config.DefaultChargerVariant(), config.DefaultOpExConfig(), config.DefaultChaosConfig(), config.DefaultStationConfig(), config.DefaultVehicleConfig(), models.ChargerTCOBreakdown{CostPerCycle: 1.5}, models.PackTCOBreakdown{FailureCostPerCycle: 0.2})

	// Each component (and the total) is independently rounded to 4 decimals,
	// so the sum of rounded components can differ from the rounded total by
	// up to a few ten-thousandths.
	sum := w.Degradation + w.Charger + w.Electricity + w.RealEstate + w.Maintenance + w.Insurance + w.Sabotage + w.Logistics + w.Overhead
	if math.Abs(sum-w.Total) > 1e-3 {
		t.Errorf("waterfall total %v does not equal sum of components %v", w.Total, sum)
	}
	if w.Charger != 1.5 {
		t.Errorf("expected Charger component to pass through ChargerTCO.CostPerCycle, got %v", w.Charger)
	}
}
