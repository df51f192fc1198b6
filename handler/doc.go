// Package handler wires binding, validation and error rendering around
// type-safe HTTP handlers.
//
// A HandlerFunc receives a Context and an already-bound, already-validated
// request value. Wrap converts it to a plain http.HandlerFunc; binders and
// the validation hook run in front of the handler, so business logic never
// sees invalid input:
//
//	h := handler.HandlerFunc[handler.Context, SubmitInputRequest](
//		func(ctx handler.Context, req SubmitInputRequest) handler.Response {
//			return handler.JSON(map[string]string{"status": "accepted"})
//		},
//	)
//
//	r.Post("/input", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SubmitInputRequest](binder.JSON()),
//		handler.WithValidation[handler.Context, SubmitInputRequest](registry, "input"),
//	))
//
// Validation is an explicit hook, not an implicit framework behavior: it is
// attached per route with WithValidation and evaluates the registered
// constraint sequence for the given type identifier. Failures reach the
// error handler as a *guardrail.ValidationError and render as the uniform
// 400 violations payload; schema errors (unknown type, unresolvable path)
// render as 500 because they are configuration bugs, not user input.
package handler
