package guardrail

import "errors"

// Schema-class errors. These indicate configuration or programming mistakes,
// never invalid user input, and must not be rendered as validation failures.
var (
	// ErrInvalidConstraint is returned when a constraint is registered with
	// internally inconsistent parameters (empty path, non-compiling pattern,
	// min greater than max).
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrDuplicateRegistration is returned when a type identifier is
	// registered more than once. Registries are build-once.
	ErrDuplicateRegistration = errors.New("type already registered")

	// ErrUnknownType is returned when looking up a type identifier that was
	// never registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrMissingPath is returned when a constraint's target path does not
	// resolve against the instance's shape.
	ErrMissingPath = errors.New("target path not found")

	// ErrTypeMismatch is returned when a constraint is evaluated against a
	// value of an incompatible type, e.g. a range check on a string field.
	ErrTypeMismatch = errors.New("value type does not match constraint")
)
