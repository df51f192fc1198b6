package handler

import (
	"encoding/json"
	"net/http"
)

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a JSON response with status 200 by default.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NoContent creates an empty 204 response.
func NoContent() Response {
	return noContentResponse{}
}

// Error creates a Response that renders err through the standard error
// classification, producing the same payload the error handler would. Use it
// when a handler surfaces an error from a service call.
func Error(err error) Response {
	return errorResponse{err: err}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	info := classifyError(e.err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	return json.NewEncoder(w).Encode(info.Payload)
}

type noContentResponse struct{}

func (noContentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}
