package guardrail

import (
	"fmt"
	"net/mail"
	"reflect"
	"strings"
)

// Validate evaluates the constraint sequence against an instance and
// collects every failure into the returned Outcome. Evaluation follows
// registration order and never short-circuits: the caller sees all
// violations, not just the first.
//
// A non-nil error is always a schema error (ErrMissingPath,
// ErrTypeMismatch, ErrInvalidConstraint): the constraints do not fit the
// instance's shape and the outcome must be discarded. Invalid user input
// never produces an error here, only violations.
//
// Validate is stateless and safe for concurrent use.
func Validate(instance any, constraints []Constraint) (Outcome, error) {
	var outcome Outcome

	for _, c := range constraints {
		if err := c.validate(); err != nil {
			return Outcome{}, err
		}

		value, present, err := resolvePath(instance, c.targetPath)
		if err != nil {
			return Outcome{}, err
		}

		ok, err := c.evaluate(value, present)
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			outcome.Add(Violation{Field: c.targetPath, Message: c.renderMessage(value)})
		}
	}

	return outcome, nil
}

// ValidateType looks up typeID in the registry and validates the instance
// against its constraints.
func ValidateType(instance any, typeID string, registry *Registry) (Outcome, error) {
	constraints, err := registry.Lookup(typeID)
	if err != nil {
		return Outcome{}, err
	}
	return Validate(instance, constraints)
}

// evaluate runs the constraint's predicate. An absent value fails every
// predicate; a present value of an incompatible type is a schema error.
func (c Constraint) evaluate(value any, present bool) (bool, error) {
	if !present {
		return false, nil
	}

	switch c.kind {
	case KindRequired:
		return true, nil

	case KindNotEmpty:
		v := reflect.ValueOf(value)
		switch v.Kind() {
		case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
			return v.Len() > 0, nil
		}
		return false, c.typeMismatch(value, "a string or collection")

	case KindNotBlank:
		s, err := c.stringValue(value)
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(s) != "", nil

	case KindRange:
		return c.inRange(value)

	case KindPattern:
		s, err := c.stringValue(value)
		if err != nil {
			return false, err
		}
		return c.re.MatchString(s), nil

	case KindEmail:
		s, err := c.stringValue(value)
		if err != nil {
			return false, err
		}
		return isEmail(s), nil

	default:
		return false, fmt.Errorf("%w: unknown kind %q", ErrInvalidConstraint, c.kind)
	}
}

func (c Constraint) inRange(value any) (bool, error) {
	v := reflect.ValueOf(value)

	switch c.class {
	case classSigned:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := v.Int()
			return (!c.hasMin || n >= c.minInt) && (!c.hasMax || n <= c.maxInt), nil
		}
	case classUnsigned:
		switch v.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n := v.Uint()
			return (!c.hasMin || n >= c.minUint) && (!c.hasMax || n <= c.maxUint), nil
		}
	case classFloat:
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			n := v.Float()
			return (!c.hasMin || n >= c.minFloat) && (!c.hasMax || n <= c.maxFloat), nil
		}
	}

	return false, c.typeMismatch(value, "a "+c.class.String())
}

func (c Constraint) stringValue(value any) (string, error) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.String {
		return "", c.typeMismatch(value, "a string")
	}
	return v.String(), nil
}

func (c Constraint) typeMismatch(value any, want string) error {
	return fmt.Errorf("%w: path %q: %s constraint needs %s, got %T",
		ErrTypeMismatch, c.targetPath, c.kind, want, value)
}

// isEmail applies a conservative email grammar: a parseable address with a
// non-empty local part and a domain containing at least one interior dot.
func isEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
