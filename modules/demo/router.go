package demo

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/guardrail/binder"
	"github.com/dmitrymomot/guardrail/handler"
)

// SubmitInputRequest mirrors the JSON body of POST /input. The json tags are
// the constraint target paths, so violation fieldName values match the wire
// names clients sent.
type SubmitInputRequest struct {
	Number int    `json:"numberBetweenOneAndTen"`
	IP     string `json:"ipAddress"`
}

// GetItemRequest carries the {id} path parameter of GET /items/{id}.
type GetItemRequest struct {
	ID int `json:"id" path:"id"`
}

// SearchRequest carries the query parameters of GET /search.
type SearchRequest struct {
	Query string `json:"q" query:"q"`
	Limit int    `json:"limit" query:"limit"`
}

// Handle mounts the demo routes. Each endpoint binds its own source (body,
// path, query) and validates against the shared registry before the handler
// runs; failures from any source render the same violations payload.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	errorHandler := handler.NewErrorHandler[handler.Context](s.log)

	r.Post("/input", handler.Wrap(s.submitInput,
		handler.WithBinders[handler.Context, SubmitInputRequest](binder.JSON()),
		handler.WithValidation[handler.Context, SubmitInputRequest](s.registry, TypeInput),
		handler.WithErrorHandler[handler.Context, SubmitInputRequest](errorHandler),
	))

	r.Get("/items/{id}", handler.Wrap(s.getItem,
		handler.WithBinders[handler.Context, GetItemRequest](binder.Path(chi.URLParam)),
		handler.WithValidation[handler.Context, GetItemRequest](s.registry, TypeItem),
		handler.WithErrorHandler[handler.Context, GetItemRequest](errorHandler),
	))

	r.Get("/search", handler.Wrap(s.search,
		handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
		handler.WithValidation[handler.Context, SearchRequest](s.registry, TypeSearch),
		handler.WithErrorHandler[handler.Context, SearchRequest](errorHandler),
	))

	return r
}

func (s *Service) submitInput(ctx handler.Context, req SubmitInputRequest) handler.Response {
	if err := s.SubmitInput(ctx, req); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(map[string]string{"status": "accepted"})
}

func (s *Service) getItem(ctx handler.Context, req GetItemRequest) handler.Response {
	item, err := s.GetItem(ctx, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return handler.Error(handler.NewHTTPError(http.StatusNotFound, "item_not_found"))
		}
		return handler.Error(err)
	}
	return handler.JSON(item)
}

func (s *Service) search(ctx handler.Context, req SearchRequest) handler.Response {
	items, err := s.Search(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(map[string]any{"items": items, "count": len(items)})
}
