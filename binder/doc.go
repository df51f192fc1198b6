// Package binder decodes HTTP requests into typed input instances before
// validation runs. It is the inbound half of the boundary layer: a binder
// populates a struct from the JSON body, the query string or the URL path,
// and the handler layer then validates the populated instance against a
// guardrail.Registry.
//
// Binders are plain functions with the signature
// func(r *http.Request, v any) error, so they compose with any router and
// can be stacked: each binder only touches the struct tags it owns ("json",
// "query", "path").
//
// Binding errors are client errors (malformed JSON, a non-numeric path
// segment) and are reported through sentinel errors so the boundary can map
// them to a 400 response without inspecting strings.
package binder
