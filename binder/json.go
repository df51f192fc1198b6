package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSON creates a binder that decodes the request body as a JSON document
// into v. The content type must be application/json, unknown fields are
// rejected, and trailing data after the document is an error.
//
// Example:
//
//	handler := handler.HandlerFunc[handler.Context, SubmitInputRequest](
//		func(ctx handler.Context, req SubmitInputRequest) handler.Response {
//			// req is populated from the JSON body and already validated
//			return handler.JSON(result)
//		},
//	)
//
//	r.Post("/input", handler.Wrap(h,
//		handler.WithBinders[handler.Context, SubmitInputRequest](binder.JSON()),
//		handler.WithValidation[handler.Context, SubmitInputRequest](registry, "input"),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		// Ensure the entire body was consumed
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON document", ErrInvalidJSON)
		}

		return nil
	}
}
