package guardrail

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Numeric is the type set accepted by range constraints.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind identifies a constraint rule.
type Kind string

const (
	KindRequired Kind = "required"
	KindNotEmpty Kind = "not_empty"
	KindNotBlank Kind = "not_blank"
	KindRange    Kind = "range"
	KindPattern  Kind = "pattern"
	KindEmail    Kind = "email"
)

// numericClass partitions range bounds so comparisons always happen within
// the declared class. There is no implicit widening across signed, unsigned
// and float values.
type numericClass int

const (
	classNone numericClass = iota
	classSigned
	classUnsigned
	classFloat
)

func (c numericClass) String() string {
	switch c {
	case classSigned:
		return "signed integer"
	case classUnsigned:
		return "unsigned integer"
	case classFloat:
		return "float"
	default:
		return "non-numeric"
	}
}

// Constraint is a single declarative rule bound to one field or parameter.
// Constraints are built with the constructor functions below and validated
// for internal consistency when added to a Registry.
type Constraint struct {
	targetPath string
	kind       Kind
	message    string // custom message template, empty means kind default

	// range parameters
	class              numericClass
	minInt, maxInt     int64
	minUint, maxUint   uint64
	minFloat, maxFloat float64
	hasMin, hasMax     bool

	// pattern parameters
	expr string
	re   *regexp.Regexp

	// deferred construction error, reported by Registry.Register
	err error
}

// TargetPath returns the field or parameter path the constraint guards.
func (c Constraint) TargetPath() string { return c.targetPath }

// Kind returns the constraint's rule kind.
func (c Constraint) Kind() Kind { return c.kind }

// Option customizes a constraint.
type Option func(*Constraint)

// WithMessage overrides the default message template. The token {value} is
// replaced with the rejected value when a violation is rendered.
func WithMessage(template string) Option {
	return func(c *Constraint) {
		c.message = template
	}
}

func newConstraint(path string, kind Kind, opts []Option) Constraint {
	c := Constraint{targetPath: path, kind: kind}
	if strings.TrimSpace(path) == "" {
		c.err = fmt.Errorf("%w: target path must not be empty", ErrInvalidConstraint)
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Required asserts that the value at path is present, i.e. not nil and not a
// nil pointer.
func Required(path string, opts ...Option) Constraint {
	return newConstraint(path, KindRequired, opts)
}

// NotEmpty asserts that the value at path is a string, slice, map or array
// with length greater than zero.
func NotEmpty(path string, opts ...Option) Constraint {
	return newConstraint(path, KindNotEmpty, opts)
}

// NotBlank asserts that the value at path is a string containing at least
// one non-whitespace character.
func NotBlank(path string, opts ...Option) Constraint {
	return newConstraint(path, KindNotBlank, opts)
}

// Range asserts that the numeric value at path satisfies min <= value <= max,
// inclusive on both ends. The comparison class (signed, unsigned or float) is
// fixed by the type parameter; evaluating against a value of a different
// class is a schema error, not a violation.
func Range[T Numeric](path string, min, max T, opts ...Option) Constraint {
	c := newConstraint(path, KindRange, opts)
	setClassBounds(&c, min, true, max, true)
	return c
}

// Min is a Range with no upper bound.
func Min[T Numeric](path string, min T, opts ...Option) Constraint {
	c := newConstraint(path, KindRange, opts)
	var zero T
	setClassBounds(&c, min, true, zero, false)
	return c
}

// Max is a Range with no lower bound.
func Max[T Numeric](path string, max T, opts ...Option) Constraint {
	c := newConstraint(path, KindRange, opts)
	var zero T
	setClassBounds(&c, zero, false, max, true)
	return c
}

// Pattern asserts that the string value at path matches expr in full. The
// expression is anchored at both ends; substring matches do not count.
func Pattern(path, expr string, opts ...Option) Constraint {
	c := newConstraint(path, KindPattern, opts)
	c.expr = expr
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("%w: pattern %q does not compile: %v", ErrInvalidConstraint, expr, err)
		}
		return c
	}
	c.re = re
	return c
}

// Email asserts that the string value at path is a plausible email address:
// a non-empty local part, exactly one @, and a domain containing at least
// one interior dot.
func Email(path string, opts ...Option) Constraint {
	return newConstraint(path, KindEmail, opts)
}

func setClassBounds[T Numeric](c *Constraint, min T, hasMin bool, max T, hasMax bool) {
	c.hasMin, c.hasMax = hasMin, hasMax
	switch reflect.ValueOf(min).Kind() {
	case reflect.Float32, reflect.Float64:
		c.class = classFloat
		c.minFloat, c.maxFloat = float64(min), float64(max)
		if hasMin && hasMax && c.minFloat > c.maxFloat {
			c.boundsError(min, max)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		c.class = classUnsigned
		c.minUint, c.maxUint = uint64(min), uint64(max)
		if hasMin && hasMax && c.minUint > c.maxUint {
			c.boundsError(min, max)
		}
	default:
		c.class = classSigned
		c.minInt, c.maxInt = int64(min), int64(max)
		if hasMin && hasMax && c.minInt > c.maxInt {
			c.boundsError(min, max)
		}
	}
}

func (c *Constraint) boundsError(min, max any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: range min %v exceeds max %v", ErrInvalidConstraint, min, max)
	}
}

func (c Constraint) defaultMessage() string {
	switch c.kind {
	case KindRequired:
		return "field is required"
	case KindNotEmpty:
		return "must not be empty"
	case KindNotBlank:
		return "must not be blank"
	case KindRange:
		switch {
		case c.hasMin && c.hasMax:
			return fmt.Sprintf("must be between %s and %s", c.boundString(true), c.boundString(false))
		case c.hasMin:
			return fmt.Sprintf("must be greater than or equal to %s", c.boundString(true))
		default:
			return fmt.Sprintf("must be less than or equal to %s", c.boundString(false))
		}
	case KindPattern:
		return fmt.Sprintf("must match %q", c.expr)
	case KindEmail:
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

func (c Constraint) boundString(min bool) string {
	switch c.class {
	case classFloat:
		if min {
			return fmt.Sprintf("%v", c.minFloat)
		}
		return fmt.Sprintf("%v", c.maxFloat)
	case classUnsigned:
		if min {
			return fmt.Sprintf("%d", c.minUint)
		}
		return fmt.Sprintf("%d", c.maxUint)
	default:
		if min {
			return fmt.Sprintf("%d", c.minInt)
		}
		return fmt.Sprintf("%d", c.maxInt)
	}
}

// renderMessage produces the violation message for a rejected value.
func (c Constraint) renderMessage(value any) string {
	template := c.message
	if template == "" {
		template = c.defaultMessage()
	}
	if strings.Contains(template, "{value}") {
		return strings.ReplaceAll(template, "{value}", fmt.Sprint(value))
	}
	return template
}

// validate reports the deferred construction error, if any.
func (c Constraint) validate() error {
	return c.err
}
