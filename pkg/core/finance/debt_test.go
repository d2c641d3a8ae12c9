package finance

import (
	"math"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

func TestBuildDebtScheduleZeroLeverageIsEmpty(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	cfg.DebtPctOfCapex = 0
	schedule := BuildDebtSchedule(10_000_000, cfg, 60)
	if schedule.LoanAmount != 0 || len(schedule.Rows) != 0 {
		t.Errorf("expected an empty schedule at 0%% leverage, got loan=%v rows=%d", schedule.LoanAmount, len(schedule.Rows))
	}
}

func TestBuildDebtScheduleAmortizesToZero(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	schedule := BuildDebtSchedule(10_000_000, cfg, cfg.LoanTenorMonths)

	if len(schedule.Rows) != cfg.LoanTenorMonths {
		t.Fatalf("expected %d rows, got %d", cfg.LoanTenorMonths, len(schedule.Rows))
	}
	last := schedule.Rows[len(schedule.Rows)-1]
	if math.Abs(last.ClosingBalance) > 1.0 {
		t.Errorf("expected loan to fully amortize by the last tenor month, closing balance=%v", last.ClosingBalance)
	}
	for i := 0; i < cfg.GracePeriodMonths; i++ {
		if schedule.Rows[i].Principal != 0 {
			t.Errorf("expected no principal repayment during the grace period, month %d had principal=%v", i+1, schedule.Rows[i].Principal)
		}
	}
}

func TestComputeDSCRFlagsBreaches(t *testing.T) {
	cfg := config.DefaultFinanceConfig()
	schedule := BuildDebtSchedule(10_000_000, cfg, cfg.LoanTenorMonths)

	snaps := make([]models.MonthlySnapshot, len(schedule.Rows))
	for i, row := range schedule.Rows {
		snaps[i] = models.MonthlySnapshot{
			Month:     row.Month,
			Revenue:   row.EMI * 0.5, // deliberately thin NOI to force a breach
			OpexTotal: 0,
		}
	}
	dscr := ComputeDSCR(snaps, schedule, cfg, nil)

	if len(dscr.MonthlyDSCR) != len(snaps) {
		t.Fatalf("expected one DSCR value per month, got %d", len(dscr.MonthlyDSCR))
	}
	if len(dscr.BreachMonths) == 0 {
		t.Error("expected at least one covenant breach with deliberately thin NOI")
	}
}
