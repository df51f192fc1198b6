package handler

import (
	"net/http"

	"github.com/dmitrymomot/guardrail"
)

// HandlerFunc provides type-safe HTTP request handling with custom context
// support. C must implement the Context interface, R can be any request type.
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter. Implementations should
// set headers, status code, and write the body. Render errors are passed to
// the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// Validate checks a bound request value before the handler runs. A returned
// *guardrail.ValidationError renders as a 400 violations payload; any other
// error is treated as a server-side failure.
type Validate[R any] func(req *R) error

// ErrorHandler handles errors from binding, validation or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	validators     []Validate[R]
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
}

// WithBinders sets the request binders applied in order. Each binder should
// process only its specific struct tags.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithValidation attaches the explicit validation hook: after binding, the
// request value is validated against the constraint sequence registered for
// typeID. Multiple hooks run in order; the first failure stops the chain.
func WithValidation[C Context, R any](registry *guardrail.Registry, typeID string) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.validators = append(c.validators, func(req *R) error {
			outcome, err := guardrail.ValidateType(*req, typeID, registry)
			if err != nil {
				return err
			}
			return outcome.Err()
		})
	}
}

// WithValidateFunc attaches a custom validation hook, for checks that go
// beyond declarative constraints.
func WithValidateFunc[C Context, R any](fn Validate[R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if fn != nil {
			c.validators = append(c.validators, fn)
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	http.HandleFunc("/input", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SubmitInputRequest](binder.JSON()),
//		handler.WithValidation[handler.Context, SubmitInputRequest](registry, "input"),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		for _, validate := range cfg.validators {
			if err := validate(&req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
