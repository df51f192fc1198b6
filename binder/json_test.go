package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/binder"
)

type submitInput struct {
	NumberBetweenOneAndTen int    `json:"numberBetweenOneAndTen"`
	IPAddress              string `json:"ipAddress"`
}

func TestJSON(t *testing.T) {
	bind := binder.JSON()

	t.Run("decodes a valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input",
			strings.NewReader(`{"numberBetweenOneAndTen":3,"ipAddress":"999.1.1.1"}`))
		r.Header.Set("Content-Type", "application/json")

		var v submitInput
		require.NoError(t, bind(r, &v))
		assert.Equal(t, 3, v.NumberBetweenOneAndTen)
		assert.Equal(t, "999.1.1.1", v.IPAddress)
	})

	t.Run("accepts content type with charset parameter", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{"ipAddress":"1.1.1.1"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var v submitInput
		assert.NoError(t, bind(r, &v))
	})

	t.Run("missing content type", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{}`))

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrMissingContentType)
	})

	t.Run("wrong media type", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrUnsupportedMediaType)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrInvalidJSON)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{"ipAddress":`))
		r.Header.Set("Content-Type", "application/json")

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrInvalidJSON)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{"surprise":true}`))
		r.Header.Set("Content-Type", "application/json")

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrInvalidJSON)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/input", strings.NewReader(`{"ipAddress":"1.1.1.1"} {}`))
		r.Header.Set("Content-Type", "application/json")

		var v submitInput
		assert.ErrorIs(t, bind(r, &v), binder.ErrInvalidJSON)
	})
}
