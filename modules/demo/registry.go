package demo

import "github.com/dmitrymomot/guardrail"

// Type identifiers for the constraint registry. Every entry point that
// handles one of these shapes validates against the same sequence.
const (
	TypeInput  = "demo.input"
	TypeItem   = "demo.item"
	TypeSearch = "demo.search"
)

// IPv4Pattern matches dotted-quad strings. Octet ranges are intentionally
// not checked, so "999.1.1.1" passes. Callers needing strict parsing should
// use net/netip instead of a pattern constraint.
const IPv4Pattern = `^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$`

// Constraints builds the registry shared by the HTTP boundary and the
// service layer. Registration panics on malformed constraints, so a broken
// sequence fails at startup rather than on the first matching request.
func Constraints() *guardrail.Registry {
	reg := guardrail.NewRegistry()

	reg.MustRegister(TypeInput,
		guardrail.Range("numberBetweenOneAndTen", 1, 10),
		guardrail.Pattern("ipAddress", IPv4Pattern),
	)

	reg.MustRegister(TypeItem,
		guardrail.Min("id", 5),
	)

	reg.MustRegister(TypeSearch,
		guardrail.NotBlank("q"),
		guardrail.Range("limit", 1, 100),
	)

	return reg
}
