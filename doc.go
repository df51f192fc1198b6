// Package guardrail provides declarative constraint validation with
// structured error aggregation for HTTP services.
//
// Guardrail replaces annotation-driven validation with an explicit,
// code-constructed model: constraints are declared next to the data shape
// via constructor functions, registered once per input type in a Registry,
// and evaluated against decoded request instances. Every failing constraint
// produces a Violation; all violations of one evaluation pass are collected
// into an Outcome, so clients always see the complete picture instead of
// the first failure.
//
// Key Features:
//
//   - Explicit constraint registration, no reflection over struct tags
//   - Build-then-freeze registries safe for concurrent reads
//   - One unified error kind for body, parameter and service validation
//   - Deterministic 400 JSON rendering of violations
//   - Optional declarative YAML schema files
//
// Basic Usage:
//
//	registry := guardrail.NewRegistry()
//	registry.MustRegister("input",
//		guardrail.Range("numberBetweenOneAndTen", 1, 10),
//		guardrail.Pattern("ipAddress", `^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$`),
//	)
//
//	outcome, err := guardrail.ValidateType(input, "input", registry)
//	if err != nil {
//		// schema error: the constraints do not fit the instance's shape
//	}
//	if verr := outcome.Err(); verr != nil {
//		guardrail.WriteError(w, verr) // 400 {"violations":[...]}
//	}
//
// Error Taxonomy:
//
// Validation failures (user input) and schema errors (configuration bugs)
// are strictly separated. Outcome.Err returns a *ValidationError that
// renders as a 400 response with the full violation list. ErrMissingPath,
// ErrTypeMismatch, ErrInvalidConstraint, ErrUnknownType and
// ErrDuplicateRegistration are schema errors: they fail fast at registry
// build time or surface through Validate's error result, and are never
// downgraded to a client error.
//
// The binder and handler subpackages supply the boundary layer: decoding
// JSON bodies, query strings and path parameters into typed instances, and
// wiring validation in front of business logic as an explicit hook.
package guardrail
