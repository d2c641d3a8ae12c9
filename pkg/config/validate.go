package config

import "fmt"

// FieldError is a single scenario validation failure, naming the offending
// field path (e.g. "pack.unit_cost") so a caller can point a user at it.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every FieldError found by Scenario.Validate.
// A non-empty ValidationErrors satisfies the error interface so callers
// can treat it as a single error or range over Errors for field-level detail.
type ValidationErrors struct {
	Errors []*FieldError
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "no validation errors"
	}
	msg := fmt.Sprintf("%d validation error(s): ", len(v.Errors))
	for i, e := range v.Errors {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}

func (v *ValidationErrors) add(path, message string) {
	v.Errors = append(v.Errors, &FieldError{Path: path, Message: message})
}

func (v *ValidationErrors) checkGT(path string, value, floor float64) {
	if value <= floor {
		v.add(path, fmt.Sprintf("must be > %v, got %v", floor, value))
	}
}

func (v *ValidationErrors) checkGE(path string, value, floor float64) {
	if value < floor {
		v.add(path, fmt.Sprintf("must be >= %v, got %v", floor, value))
	}
}

func (v *ValidationErrors) checkRange(path string, value, lo, hi float64) {
	if value < lo || value > hi {
		v.add(path, fmt.Sprintf("must be within [%v, %v], got %v", lo, hi, value))
	}
}

func (v *ValidationErrors) checkIntRange(path string, value, lo, hi int) {
	if value < lo || value > hi {
		v.add(path, fmt.Sprintf("must be within [%v, %v], got %v", lo, hi, value))
	}
}

func (v *ValidationErrors) checkIntGE(path string, value, floor int) {
	if value < floor {
		v.add(path, fmt.Sprintf("must be >= %v, got %v", floor, value))
	}
}

func (v *ValidationErrors) checkOneOf(path, value string, options ...string) {
	for _, o := range options {
		if value == o {
			return
		}
	}
	v.add(path, fmt.Sprintf("must be one of %v, got %q", options, value))
}

// result returns nil when no errors were collected and v otherwise, so
// callers can write `return errs.result()`.
func (v *ValidationErrors) result() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}
