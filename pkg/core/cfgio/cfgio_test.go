package cfgio

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleScenarioYAML = `
vehicle:
  battery_capacity_kwh: 1.28
pack:
  unit_cost: 8000
revenue:
  price_per_swap: 40
  initial_fleet_size: 120
simulation:
  horizon_months: 36
  discount_rate_annual: 0.15
  engine: static
  monte_carlo_runs: 1
`

func TestLoadScenarioParsesYAMLAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(sampleScenarioYAML), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("unexpected error loading scenario: %v", err)
	}
	if scenario.Revenue.InitialFleetSize != 120 {
		t.Errorf("expected initial_fleet_size 120, got %d", scenario.Revenue.InitialFleetSize)
	}
	if scenario.Simulation.HorizonMonths != 36 {
		t.Errorf("expected horizon_months 36, got %d", scenario.Simulation.HorizonMonths)
	}
}

func TestLoadScenarioRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.txt")
	if err := os.WriteFile(path, []byte("irrelevant"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadScenario(path); err == nil {
		t.Error("expected an error for an unrecognized file extension")
	}
}

func TestLoadScenarioMissingFileErrors(t *testing.T) {
	if _, err := LoadScenario("/nonexistent/path/scenario.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadEnvToleratesMissingFile(t *testing.T) {
	// Should not panic or error loudly when the .env file does not exist.
	LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
}
