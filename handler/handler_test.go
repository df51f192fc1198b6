package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail"
	"github.com/dmitrymomot/guardrail/binder"
	"github.com/dmitrymomot/guardrail/handler"
)

type submitRequest struct {
	Number int    `json:"numberBetweenOneAndTen"`
	IP     string `json:"ipAddress"`
}

func submitRegistry(t *testing.T) *guardrail.Registry {
	t.Helper()
	reg := guardrail.NewRegistry()
	require.NoError(t, reg.Register("input",
		guardrail.Range("numberBetweenOneAndTen", 1, 10),
		guardrail.Pattern("ipAddress", `^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$`),
	))
	return reg
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/input", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestWrap(t *testing.T) {
	t.Run("binds validates and renders", func(t *testing.T) {
		reg := submitRegistry(t)
		var got submitRequest
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				got = req
				return handler.JSON(map[string]string{"status": "accepted"})
			},
			handler.WithBinders[handler.Context, submitRequest](binder.JSON()),
			handler.WithValidation[handler.Context, submitRequest](reg, "input"),
		)

		rec := postJSON(h, `{"numberBetweenOneAndTen":5,"ipAddress":"192.168.0.1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, got.Number)
		assert.Equal(t, "192.168.0.1", got.IP)
		assert.JSONEq(t, `{"status":"accepted"}`, rec.Body.String())
	})

	t.Run("constraint violations render 400 and skip handler", func(t *testing.T) {
		reg := submitRegistry(t)
		called := false
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				called = true
				return handler.NoContent()
			},
			handler.WithBinders[handler.Context, submitRequest](binder.JSON()),
			handler.WithValidation[handler.Context, submitRequest](reg, "input"),
		)

		rec := postJSON(h, `{"numberBetweenOneAndTen":0,"ipAddress":"not-an-ip"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called, "handler must not run on invalid input")
		assert.JSONEq(t, `{"violations":[
			{"fieldName":"ipAddress","message":"must match \"^[0-9]{1,3}\\.[0-9]{1,3}\\.[0-9]{1,3}\\.[0-9]{1,3}$\""},
			{"fieldName":"numberBetweenOneAndTen","message":"must be between 1 and 10"}
		]}`, rec.Body.String())
	})

	t.Run("unknown type id renders 500 not 400", func(t *testing.T) {
		reg := submitRegistry(t)
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				return handler.NoContent()
			},
			handler.WithBinders[handler.Context, submitRequest](binder.JSON()),
			handler.WithValidation[handler.Context, submitRequest](reg, "no-such-type"),
		)

		rec := postJSON(h, `{"numberBetweenOneAndTen":5,"ipAddress":"192.168.0.1"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "violations")
	})

	t.Run("binding error renders 400", func(t *testing.T) {
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				return handler.NoContent()
			},
			handler.WithBinders[handler.Context, submitRequest](binder.JSON()),
		)

		rec := postJSON(h, `{"numberBetweenOneAndTen":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("custom validate func runs after binding", func(t *testing.T) {
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				return handler.NoContent()
			},
			handler.WithBinders[handler.Context, submitRequest](binder.JSON()),
			handler.WithValidateFunc[handler.Context, submitRequest](func(req *submitRequest) error {
				if req.Number == 7 {
					return handler.ErrUnprocessableEntity
				}
				return nil
			}),
		)

		rec := postJSON(h, `{"numberBetweenOneAndTen":7,"ipAddress":"1.2.3.4"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":"unprocessable_entity"}`, rec.Body.String())
	})

	t.Run("nil response reaches error handler", func(t *testing.T) {
		var gotErr error
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				return nil
			},
			handler.WithErrorHandler[handler.Context, submitRequest](func(ctx handler.Context, err error) {
				gotErr = err
				ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, gotErr, handler.ErrNilResponse)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("custom context factory", func(t *testing.T) {
		factoryUsed := false
		h := handler.Wrap(
			func(ctx handler.Context, req submitRequest) handler.Response {
				return handler.NoContent()
			},
			handler.WithContextFactory[handler.Context, submitRequest](func(w http.ResponseWriter, r *http.Request) handler.Context {
				factoryUsed = true
				return handler.NewContext(w, r)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("GET", "/", nil))
		assert.True(t, factoryUsed)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/things", nil)
	rec := httptest.NewRecorder()
	ctx := handler.NewContext(rec, req)

	assert.Equal(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())
	assert.NoError(t, ctx.Err())
	select {
	case <-ctx.Done():
		t.Fatal("context should not be done")
	default:
	}
}
