package service

import (
	"testing"

	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/stretchr/testify/require"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

func TestSanitizeUsername(t *testing.T) {
	t.Parallel()

	got, err := sanitizeUsername("  Alice ")
	require.NoError(t, err)
	require.Equal(t, "alice", got)

	_, err = sanitizeUsername("  ")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	got, err := sanitizeEmail(" Alice@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got)

	for _, raw := range []string{"", "not-an-email", "a b@example.com"} {
		_, err = sanitizeEmail(raw)
		require.ErrorIs(t, err, model.ErrValidation, "raw %q", raw)
	}
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	_, err := hashPassword("short")
	require.ErrorIs(t, err, model.ErrValidation)

	hashed, err := hashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotContains(t, hashed, "correct horse")

	require.NoError(t, gcrypto.VerifyHashedPassword(
		[]byte("correct horse battery staple"), hashed))
	require.Error(t, gcrypto.VerifyHashedPassword([]byte("wrong"), hashed))
}
