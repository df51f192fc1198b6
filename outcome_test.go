package guardrail_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail"
)

func TestOutcome(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		var outcome guardrail.Outcome
		assert.True(t, outcome.IsValid())
		assert.NoError(t, outcome.Err())
		assert.Empty(t, outcome.Fields())
	})

	t.Run("accessors reflect added violations", func(t *testing.T) {
		var outcome guardrail.Outcome
		outcome.Add(guardrail.Violation{Field: "email", Message: "is required"})
		outcome.Add(guardrail.Violation{Field: "email", Message: "bad format"})
		outcome.Add(guardrail.Violation{Field: "age", Message: "out of range"})

		assert.False(t, outcome.IsValid())
		assert.True(t, outcome.Has("email"))
		assert.False(t, outcome.Has("name"))
		assert.Equal(t, []string{"is required", "bad format"}, outcome.Messages("email"))
		assert.Equal(t, []string{"email", "age"}, outcome.Fields())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("carries the outcome through an error chain", func(t *testing.T) {
		var outcome guardrail.Outcome
		outcome.Add(guardrail.Violation{Field: "id", Message: "must be greater than or equal to 5"})

		wrapped := fmt.Errorf("handling request: %w", outcome.Err())

		verr := guardrail.AsValidationError(wrapped)
		require.NotNil(t, verr)
		assert.Equal(t, outcome.Violations(), verr.Outcome().Violations())
	})

	t.Run("error message lists field and message", func(t *testing.T) {
		var outcome guardrail.Outcome
		outcome.Add(guardrail.Violation{Field: "id", Message: "too small"})

		err := outcome.Err()
		require.Error(t, err)
		assert.Equal(t, "validation failed: id: too small", err.Error())
	})

	t.Run("non-validation errors extract to nil", func(t *testing.T) {
		assert.Nil(t, guardrail.AsValidationError(nil))
		assert.Nil(t, guardrail.AsValidationError(errors.New("boom")))
		assert.Nil(t, guardrail.AsValidationError(guardrail.ErrUnknownType))
	})
}
