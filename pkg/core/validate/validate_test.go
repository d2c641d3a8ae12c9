package validate

import (
	"math"
	"testing"
)

func TestCalculateCAGR(t *testing.T) {
	// Revenue growing from $100k to $121k over 2 years = 10% CAGR.
	cagr := CalculateCAGR(100_000, 121_000, 2)
	if math.Abs(cagr-10.0) > 0.01 {
		t.Errorf("CAGR = %.2f%%, expected 10%%", cagr)
	}
}

func TestCalculateCAGRDeclineIsNegative(t *testing.T) {
	// A swap network whose monthly revenue shrinks over the horizon should
	// report a negative CAGR.
	cagr := CalculateCAGR(500_000, 250_000, 4)
	if cagr >= 0 {
		t.Errorf("expected a negative CAGR for declining revenue, got %.2f%%", cagr)
	}
}

func TestCalculateCAGRZeroStartValueIsZero(t *testing.T) {
	if cagr := CalculateCAGR(0, 100_000, 3); cagr != 0 {
		t.Errorf("CalculateCAGR with zero start value = %v, want 0", cagr)
	}
}

func TestCalculateCAGRZeroYearsIsZero(t *testing.T) {
	if cagr := CalculateCAGR(100_000, 200_000, 0); cagr != 0 {
		t.Errorf("CalculateCAGR with zero years = %v, want 0", cagr)
	}
}
