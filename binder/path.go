package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a binder that populates struct fields from URL path
// parameters using the provided extractor. The extractor is called once per
// struct field with the parameter name from the `path` struct tag (or the
// lowercased field name).
//
// Example with chi:
//
//	type ItemRequest struct {
//		ID int `path:"id"`
//	}
//
//	r.Get("/items/{id}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, ItemRequest](binder.Path(chi.URLParam)),
//		handler.WithValidation[handler.Context, ItemRequest](registry, "item"),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}

			paramName, skip := parseFieldTag(rt.Field(i), "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				continue
			}

			if err := setFieldValue(field, rt.Field(i).Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, rt.Field(i).Name, err)
			}
		}

		return nil
	}
}
