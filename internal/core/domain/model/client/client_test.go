package client_test

import (
	"math"
	"testing"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should register client without measurements", func(t *testing.T) {
		name, phone, email := gofakeit.Name(), gofakeit.Phone(), gofakeit.Email()

		c, err := client.NewClient(kernel.NewUUID(), name, phone, email)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, name, c.Name())
		assert.Equal(t, phone, c.Phone())
		assert.Equal(t, email, c.Email())
		assert.True(t, c.Measurements().IsEmpty())
		assert.Equal(t, client.LastSeenToday, c.LastSeen())
	})

	t.Run("email is optional", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Fatou Ndiaye", "+221 77 345 67 89", "")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), " ", "", "not-an-email")

		assert.ErrorIs(t, err, client.ErrNameIsRequired)
		assert.ErrorIs(t, err, client.ErrPhoneIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMeasurements(t *testing.T) {
	t.Run("should keep values", func(t *testing.T) {
		m, err := client.NewMeasurements(168, 92, 75, 100, 80)

		require.NoError(t, err)
		assert.Equal(t, 168.0, m.Height())
		assert.Equal(t, 92.0, m.Chest())
		assert.Equal(t, 75.0, m.Waist())
		assert.Equal(t, 100.0, m.Hips())
		assert.Equal(t, 80.0, m.Inseam())
		assert.False(t, m.IsEmpty())
	})

	t.Run("zeros are valid", func(t *testing.T) {
		m, err := client.NewMeasurements(0, 0, 0, 0, 0)

		require.NoError(t, err)
		assert.True(t, m.IsEmpty())
	})

	t.Run("should reject negative and absurd values", func(t *testing.T) {
		_, err := client.NewMeasurements(-1, 92, 75, 1000, math.NaN())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "height")
		assert.Contains(t, err.Error(), "hips")
		assert.Contains(t, err.Error(), "inseam")
		assert.NotContains(t, err.Error(), "chest")
	})
}

func TestClient_UpdateMeasurements(t *testing.T) {
	c, err := client.NewClient(kernel.NewUUID(), "Oumar Camara", "+221 78 901 23 45", "")
	require.NoError(t, err)
	m, err := client.NewMeasurements(179, 102, 85, 99, 84)
	require.NoError(t, err)

	c.UpdateMeasurements(m)

	assert.Equal(t, m, c.Measurements())
}
