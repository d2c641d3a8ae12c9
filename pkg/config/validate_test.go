package config

import (
	"strings"
	"testing"
)

func TestDefaultScenarioValidates(t *testing.T) {
	s := DefaultScenario()
	if err := s.Validate(); err != nil {
		t.Fatalf("default scenario should validate, got: %v", err)
	}
}

func TestValidateAccumulatesMultipleErrors(t *testing.T) {
	s := DefaultScenario()
	s.Simulation.HorizonMonths = 0
	s.Simulation.Engine = "quantum"
	s.ChargerVariants = nil

	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}
	ve, ok := err.(*ValidationErrors)
	if !ok {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(ve.Errors) < 3 {
		t.Errorf("expected at least 3 field errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func TestValidateRejectsEmptyChargerVariants(t *testing.T) {
	s := DefaultScenario()
	s.ChargerVariants = nil

	err := s.Validate()
	if err == nil {
		t.Fatal("expected an error for empty charger_variants")
	}
	ve := err.(*ValidationErrors)
	found := false
	for _, fe := range ve.Errors {
		if fe.Path == "charger_variants" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a charger_variants field error, got: %v", ve.Errors)
	}
}

func TestValidateRejectsUnknownEngine(t *testing.T) {
	s := DefaultScenario()
	s.Simulation.Engine = "bogus"

	err := s.Validate()
	if err == nil {
		t.Fatal("expected an error for unknown engine")
	}
}

func TestCloneDeepCopiesChargerVariants(t *testing.T) {
	s := DefaultScenario()
	s.ChargerVariants = append(s.ChargerVariants, DefaultChargerVariant())

	clone := s.Clone()
	clone.ChargerVariants[0].Name = "mutated"

	if s.ChargerVariants[0].Name == "mutated" {
		t.Error("Clone should not share the underlying charger variant slice with the original")
	}
	if len(clone.ChargerVariants) != len(s.ChargerVariants) {
		t.Errorf("clone has %d charger variants, want %d", len(clone.ChargerVariants), len(s.ChargerVariants))
	}
}

func TestValidationErrorsErrorMessageListsAllErrors(t *testing.T) {
	errs := &ValidationErrors{}
	errs.add("foo.bar", "must be positive")
	errs.add("baz.qux", "must be one of [a b]")

	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected a non-empty error message")
	}
	for _, want := range []string{"foo.bar", "baz.qux", "2 validation error"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing substring %q", msg, want)
		}
	}
}

func TestValidationErrorsResultReturnsNilWhenEmpty(t *testing.T) {
	errs := &ValidationErrors{}
	if err := errs.result(); err != nil {
		t.Errorf("expected nil result for empty ValidationErrors, got %v", err)
	}
}
