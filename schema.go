package guardrail

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// schemaFile is the on-disk shape of a declarative constraint schema:
//
//	types:
//	  input:
//	    - path: numberBetweenOneAndTen
//	      kind: range
//	      min: 1
//	      max: 10
//	    - path: ipAddress
//	      kind: pattern
//	      expr: '^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$'
type schemaFile struct {
	Types map[string][]schemaConstraint `yaml:"types"`
}

type schemaConstraint struct {
	Path    string `yaml:"path"`
	Kind    string `yaml:"kind"`
	Min     any    `yaml:"min"`
	Max     any    `yaml:"max"`
	Expr    string `yaml:"expr"`
	Message string `yaml:"message"`
}

// LoadSchema parses a YAML constraint schema into a frozen Registry. All
// registration-time consistency checks apply, so a schema with a
// non-compiling pattern or inverted range bounds fails the load instead of
// validating with partial rules.
func LoadSchema(r io.Reader) (*Registry, error) {
	var file schemaFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: parsing schema: %v", ErrInvalidConstraint, err)
	}

	registry := NewRegistry()

	typeIDs := make([]string, 0, len(file.Types))
	for typeID := range file.Types {
		typeIDs = append(typeIDs, typeID)
	}
	sort.Strings(typeIDs)

	for _, typeID := range typeIDs {
		declarations := file.Types[typeID]
		constraints := make([]Constraint, 0, len(declarations))
		for _, decl := range declarations {
			c, err := decl.build()
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", typeID, err)
			}
			constraints = append(constraints, c)
		}
		if err := registry.Register(typeID, constraints...); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// LoadSchemaFile is LoadSchema reading from a file path.
func LoadSchemaFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema file: %w", err)
	}
	defer f.Close()
	return LoadSchema(f)
}

func (sc schemaConstraint) build() (Constraint, error) {
	var opts []Option
	if sc.Message != "" {
		opts = append(opts, WithMessage(sc.Message))
	}

	switch Kind(sc.Kind) {
	case KindRequired:
		return Required(sc.Path, opts...), nil
	case KindNotEmpty:
		return NotEmpty(sc.Path, opts...), nil
	case KindNotBlank:
		return NotBlank(sc.Path, opts...), nil
	case KindEmail:
		return Email(sc.Path, opts...), nil
	case KindPattern:
		if sc.Expr == "" {
			return Constraint{}, fmt.Errorf("%w: path %q: pattern needs expr", ErrInvalidConstraint, sc.Path)
		}
		return Pattern(sc.Path, sc.Expr, opts...), nil
	case KindRange:
		return sc.buildRange(opts)
	default:
		return Constraint{}, fmt.Errorf("%w: path %q: unknown kind %q", ErrInvalidConstraint, sc.Path, sc.Kind)
	}
}

// buildRange turns YAML bounds into a range constraint. Bounds declared as
// integers compare in the signed class; a float on either side switches the
// whole constraint to the float class.
func (sc schemaConstraint) buildRange(opts []Option) (Constraint, error) {
	min, minFloat, hasMin, err := schemaBound(sc.Path, sc.Min)
	if err != nil {
		return Constraint{}, err
	}
	max, maxFloat, hasMax, err := schemaBound(sc.Path, sc.Max)
	if err != nil {
		return Constraint{}, err
	}

	switch {
	case !hasMin && !hasMax:
		return Constraint{}, fmt.Errorf("%w: path %q: range needs min or max", ErrInvalidConstraint, sc.Path)
	case minFloat || maxFloat:
		fmin := boundAsFloat(sc.Min)
		fmax := boundAsFloat(sc.Max)
		switch {
		case hasMin && hasMax:
			return Range(sc.Path, fmin, fmax, opts...), nil
		case hasMin:
			return Min(sc.Path, fmin, opts...), nil
		default:
			return Max(sc.Path, fmax, opts...), nil
		}
	default:
		switch {
		case hasMin && hasMax:
			return Range(sc.Path, min, max, opts...), nil
		case hasMin:
			return Min(sc.Path, min, opts...), nil
		default:
			return Max(sc.Path, max, opts...), nil
		}
	}
}

func schemaBound(path string, raw any) (value int64, isFloat, present bool, err error) {
	switch n := raw.(type) {
	case nil:
		return 0, false, false, nil
	case int:
		return int64(n), false, true, nil
	case int64:
		return n, false, true, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, false, false, fmt.Errorf("%w: path %q: bound %d overflows", ErrInvalidConstraint, path, n)
		}
		return int64(n), false, true, nil
	case float64:
		return 0, true, true, nil
	default:
		return 0, false, false, fmt.Errorf("%w: path %q: bound %v is not numeric", ErrInvalidConstraint, path, raw)
	}
}

func boundAsFloat(raw any) float64 {
	switch n := raw.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
