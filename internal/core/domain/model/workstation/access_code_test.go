package workstation_test

import (
	"testing"

	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessCode(t *testing.T) {
	for range 50 {
		code := workstation.NewAccessCode()

		require.NoError(t, code.Validate())
		assert.Regexp(t, `^POSTE-[0-9A-F]{4}$`, code.String())

		parsed, err := workstation.AccessCodeFromString(code.String())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(code))
	}
}

func TestAccessCodeFromString(t *testing.T) {
	t.Run("should accept seeded codes", func(t *testing.T) {
		code, err := workstation.AccessCodeFromString("POSTE-A4B8")

		require.NoError(t, err)
		assert.Equal(t, "POSTE-A4B8", code.String())
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, in := range []string{"", "POSTE-", "poste-a4b8", "POSTE-A4B", "POSTE-A4B8X", "POSTE-GHIJ", " POSTE-A4B8"} {
			_, err := workstation.AccessCodeFromString(in)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}

func TestAccessCode_Matches(t *testing.T) {
	code, err := workstation.AccessCodeFromString("POSTE-F9C1")
	require.NoError(t, err)

	assert.True(t, code.Matches("POSTE-F9C1"))
	assert.False(t, code.Matches("poste-f9c1"))
	assert.False(t, code.Matches("POSTE-F9C"))
	assert.False(t, code.Matches(""))

	var zero workstation.AccessCode
	assert.False(t, zero.Matches(""))
	assert.Equal(t, workstation.ErrAccessCodeIsNotConstructed, zero.Validate())
}
