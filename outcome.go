package guardrail

import (
	"errors"
	"fmt"
	"strings"
)

// Violation records one constraint failing for one evaluation call.
type Violation struct {
	Field   string
	Message string
}

// Outcome is the complete result of one validation call. The zero value is
// valid and ready to use. Violations keep evaluation order; consumers that
// need determinism across fields should sort (Respond does).
type Outcome struct {
	violations []Violation
}

// IsValid reports whether the outcome carries no violations.
func (o Outcome) IsValid() bool {
	return len(o.violations) == 0
}

// Violations returns the collected violations in evaluation order.
func (o Outcome) Violations() []Violation {
	return o.violations
}

// Add appends a violation to the outcome.
func (o *Outcome) Add(v Violation) {
	o.violations = append(o.violations, v)
}

// Has reports whether any violation was recorded for the given field.
func (o Outcome) Has(field string) bool {
	for _, v := range o.violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Messages returns all violation messages recorded for the given field.
func (o Outcome) Messages(field string) []string {
	var messages []string
	for _, v := range o.violations {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the distinct violated fields in first-violation order.
func (o Outcome) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range o.violations {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// Err returns a *ValidationError carrying the outcome, or nil when valid.
// It is the single error kind for every validation entry point: request
// body, path and query parameters, and service-layer checks all surface
// failures the same way.
func (o Outcome) Err() error {
	if o.IsValid() {
		return nil
	}
	return &ValidationError{outcome: o}
}

// ValidationError wraps a non-empty Outcome as an error. Detect it with
// errors.As and hand the outcome to Respond at the boundary.
type ValidationError struct {
	outcome Outcome
}

// Outcome returns the validation outcome behind the error.
func (e *ValidationError) Outcome() Outcome {
	return e.outcome
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil || e.outcome.IsValid() {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.outcome.violations))
	for _, v := range e.outcome.violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a *ValidationError from an error chain, or nil.
func AsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
