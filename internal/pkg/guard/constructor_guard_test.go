package guard_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type ticketRequest struct {
		clientName string
		guard      guard.ConstructorGuard
	}
	errRequestNotConstructed := errors.New("ticketRequest must be created via newTicketRequest")

	newTicketRequest := func(name string) (ticketRequest, error) {
		if name == "" {
			return ticketRequest{}, errors.New("client name is required")
		}
		return ticketRequest{clientName: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		r, err := newTicketRequest("Amina Diallo")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRequestNotConstructed))
		assert.Equal(t, "Amina Diallo", r.clientName)
	})

	t.Run("literal_value_fails_validation", func(t *testing.T) {
		r := ticketRequest{clientName: "Moussa Traoré"}

		assert.Equal(t, errRequestNotConstructed, r.guard.Validate(errRequestNotConstructed))
	})
}
