package guardrail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail"
)

func TestConstraintMessages(t *testing.T) {
	type record struct {
		Count  int     `json:"count"`
		Weight float64 `json:"weight"`
		Name   string  `json:"name"`
	}

	cases := []struct {
		name       string
		constraint guardrail.Constraint
		instance   record
		message    string
	}{
		{
			name:       "range with both bounds",
			constraint: guardrail.Range("count", 1, 10),
			instance:   record{Count: 0},
			message:    "must be between 1 and 10",
		},
		{
			name:       "min only",
			constraint: guardrail.Min("count", 5),
			instance:   record{Count: 3},
			message:    "must be greater than or equal to 5",
		},
		{
			name:       "max only",
			constraint: guardrail.Max("count", 5),
			instance:   record{Count: 7},
			message:    "must be less than or equal to 5",
		},
		{
			name:       "float bounds",
			constraint: guardrail.Range("weight", 0.5, 2.5),
			instance:   record{Weight: 3.0},
			message:    "must be between 0.5 and 2.5",
		},
		{
			name:       "not blank",
			constraint: guardrail.NotBlank("name"),
			instance:   record{},
			message:    "must not be blank",
		},
		{
			name:       "pattern",
			constraint: guardrail.Pattern("name", `[a-z]+`),
			instance:   record{Name: "123"},
			message:    `must match "[a-z]+"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := guardrail.Validate(tc.instance, []guardrail.Constraint{tc.constraint})
			require.NoError(t, err)
			require.Len(t, outcome.Violations(), 1)
			assert.Equal(t, tc.message, outcome.Violations()[0].Message)
		})
	}
}

func TestRangeBoundInclusivity(t *testing.T) {
	type record struct {
		Count uint `json:"count"`
	}

	constraints := []guardrail.Constraint{guardrail.Range[uint]("count", 2, 4)}

	for value, valid := range map[uint]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		outcome, err := guardrail.Validate(record{Count: value}, constraints)
		require.NoError(t, err)
		assert.Equal(t, valid, outcome.IsValid(), "count=%d", value)
	}
}

func TestConstraintConstructionErrors(t *testing.T) {
	registry := guardrail.NewRegistry()

	t.Run("inverted float bounds", func(t *testing.T) {
		err := registry.Register("t1", guardrail.Range("x", 2.5, 0.5))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)
	})

	t.Run("blank target path", func(t *testing.T) {
		err := registry.Register("t2", guardrail.NotBlank("   "))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)
	})

	t.Run("min equal to max is allowed", func(t *testing.T) {
		assert.NoError(t, registry.Register("t3", guardrail.Range("x", 5, 5)))
	})
}
