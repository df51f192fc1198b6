package binder_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/binder"
)

func TestQuery(t *testing.T) {
	bind := binder.Query()

	type searchRequest struct {
		Query    string   `query:"q"`
		Limit    int      `query:"limit"`
		Tags     []string `query:"tags"`
		Active   *bool    `query:"active"`
		Internal string   `query:"-"`
		Page     int
	}

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?q=widgets&limit=25&page=2", nil)

		var v searchRequest
		require.NoError(t, bind(r, &v))
		assert.Equal(t, "widgets", v.Query)
		assert.Equal(t, 25, v.Limit)
		assert.Equal(t, 2, v.Page)
		assert.Nil(t, v.Active)
	})

	t.Run("binds repeated and comma-separated values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?tags=a&tags=b,c", nil)

		var v searchRequest
		require.NoError(t, bind(r, &v))
		assert.Equal(t, []string{"a", "b", "c"}, v.Tags)
	})

	t.Run("binds optional pointer fields", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?active=true", nil)

		var v searchRequest
		require.NoError(t, bind(r, &v))
		require.NotNil(t, v.Active)
		assert.True(t, *v.Active)
	})

	t.Run("skipped fields stay zero", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?internal=evil", nil)

		var v searchRequest
		require.NoError(t, bind(r, &v))
		assert.Empty(t, v.Internal)
	})

	t.Run("non-numeric value for an int field", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search?limit=lots", nil)

		var v searchRequest
		assert.ErrorIs(t, bind(r, &v), binder.ErrInvalidQuery)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/search", nil)

		var n int
		assert.ErrorIs(t, bind(r, &n), binder.ErrInvalidQuery)
		assert.ErrorIs(t, bind(r, nil), binder.ErrInvalidQuery)
	})
}
