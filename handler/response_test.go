package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/handler"
)

func TestJSON(t *testing.T) {
	t.Run("default status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := handler.JSON(map[string]int{"count": 3})
		require.NoError(t, resp.Render(rec, httptest.NewRequest("GET", "/", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"count":3}`, rec.Body.String())
	})

	t.Run("custom status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resp := handler.JSON(map[string]string{"id": "a1"}, handler.WithStatus(http.StatusCreated))
		require.NoError(t, resp.Render(rec, httptest.NewRequest("POST", "/", nil)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := handler.Error(handler.NewHTTPError(http.StatusNotFound, "item_not_found"))
	require.NoError(t, resp.Render(rec, httptest.NewRequest("GET", "/", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"item_not_found"}`, rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, handler.NoContent().Render(rec, httptest.NewRequest("DELETE", "/", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
