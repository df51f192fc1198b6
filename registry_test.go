package guardrail_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("registers and looks up constraints in order", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		require.NoError(t, registry.Register("input",
			guardrail.Range("numberBetweenOneAndTen", 1, 10),
			guardrail.Pattern("ipAddress", ipv4Pattern),
		))

		constraints, err := registry.Lookup("input")
		require.NoError(t, err)
		require.Len(t, constraints, 2)
		assert.Equal(t, "numberBetweenOneAndTen", constraints[0].TargetPath())
		assert.Equal(t, guardrail.KindRange, constraints[0].Kind())
		assert.Equal(t, "ipAddress", constraints[1].TargetPath())
		assert.Equal(t, guardrail.KindPattern, constraints[1].Kind())
	})

	t.Run("rejects duplicate type registration", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		require.NoError(t, registry.Register("input", guardrail.Required("name")))

		err := registry.Register("input", guardrail.Required("name"))
		assert.ErrorIs(t, err, guardrail.ErrDuplicateRegistration)
	})

	t.Run("rejects empty type identifier", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		err := registry.Register("", guardrail.Required("name"))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)
	})

	t.Run("fails fast on inconsistent constraint parameters", func(t *testing.T) {
		registry := guardrail.NewRegistry()

		err := registry.Register("bad-pattern", guardrail.Pattern("ip", `([`))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)

		err = registry.Register("bad-range", guardrail.Range("n", 10, 1))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)

		err = registry.Register("bad-path", guardrail.Required(""))
		assert.ErrorIs(t, err, guardrail.ErrInvalidConstraint)
	})

	t.Run("a failed registration leaves the type unregistered", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		require.Error(t, registry.Register("input", guardrail.Pattern("ip", `([`)))

		_, err := registry.Lookup("input")
		assert.ErrorIs(t, err, guardrail.ErrUnknownType)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		_, err := registry.Lookup("missing")
		assert.ErrorIs(t, err, guardrail.ErrUnknownType)
	})
}

func TestRegistry_MustRegister(t *testing.T) {
	t.Run("panics on invalid registration", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		assert.Panics(t, func() {
			registry.MustRegister("bad", guardrail.Range("n", 5, 1))
		})
	})

	t.Run("does not panic on valid registration", func(t *testing.T) {
		registry := guardrail.NewRegistry()
		assert.NotPanics(t, func() {
			registry.MustRegister("ok", guardrail.Min("id", 5))
		})
	})
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	// Build-then-freeze: population happens before any concurrent reader.
	registry := guardrail.NewRegistry()
	registry.MustRegister("input", inputConstraints()...)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				outcome, err := guardrail.ValidateType(
					inputPayload{NumberBetweenOneAndTen: 3, IPAddress: "1.2.3"}, "input", registry)
				assert.NoError(t, err)
				assert.Len(t, outcome.Violations(), 1)
			}
		}()
	}
	wg.Wait()
}
