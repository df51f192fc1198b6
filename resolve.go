package guardrail

import (
	"fmt"
	"reflect"
	"strings"
)

// resolvePath extracts the value at a dotted path from an instance. It
// understands exported struct fields (addressed by json tag first, then by
// field name), string-keyed maps, and follows pointers and interfaces.
//
// The second result reports presence: nil pointers and missing map keys
// resolve to an absent value because map shapes are dynamic. A path segment
// that does not exist in a struct's static shape is ErrMissingPath, which is
// a schema error and never a user-facing violation.
func resolvePath(instance any, path string) (any, bool, error) {
	current := reflect.ValueOf(instance)

	for _, segment := range strings.Split(path, ".") {
		var absent bool
		current, absent = indirect(current)
		if absent {
			return nil, false, nil
		}

		switch current.Kind() {
		case reflect.Struct:
			field, ok := structField(current, segment)
			if !ok {
				return nil, false, fmt.Errorf("%w: no field %q for path %q on %s",
					ErrMissingPath, segment, path, current.Type())
			}
			current = field

		case reflect.Map:
			if current.Type().Key().Kind() != reflect.String {
				return nil, false, fmt.Errorf("%w: path %q: map keys are not strings",
					ErrMissingPath, path)
			}
			key := reflect.ValueOf(segment).Convert(current.Type().Key())
			value := current.MapIndex(key)
			if !value.IsValid() {
				return nil, false, nil
			}
			current = value

		default:
			return nil, false, fmt.Errorf("%w: path %q: cannot descend into %s",
				ErrMissingPath, path, current.Kind())
		}
	}

	current, absent := indirect(current)
	if absent {
		return nil, false, nil
	}
	return current.Interface(), true, nil
}

// indirect follows pointers and interfaces. A nil along the way means the
// value is absent.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for {
		if !v.IsValid() {
			return v, true
		}
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, true
			}
			v = v.Elem()
		default:
			return v, false
		}
	}
}

// structField finds an exported field by json tag name, exact field name,
// or case-insensitive field name, in that order of preference.
func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		if tagName := strings.Split(tag, ",")[0]; tagName == name {
			return v.Field(i), true
		}
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && f.Name == name {
			return v.Field(i), true
		}
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && strings.EqualFold(f.Name, name) {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}
