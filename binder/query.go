package binder

import "net/http"

// Query creates a binder that populates struct fields from the query string.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Supported field types are string, signed and unsigned integers, floats,
// bool, slices of those (repeated or comma-separated parameters), and
// pointers for optional fields. Fields without a tag bind to the lowercased
// field name.
//
// Example:
//
//	type SearchRequest struct {
//		Query string `query:"q"`
//		Limit int    `query:"limit"`
//	}
//
//	r.Get("/search", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
//		handler.WithValidation[handler.Context, SearchRequest](registry, "search"),
//	))
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
