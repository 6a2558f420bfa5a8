package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("longenough1", 10)
	require.NoError(t, err)
	require.NotEqual(t, "longenough1", hash)
	require.True(t, VerifyPassword("longenough1", hash))
	require.False(t, VerifyPassword("longenough2", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password", 10)
	require.NoError(t, err)
	second, err := HashPassword("same-password", 10)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("same-password", first))
	require.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, VerifyPassword("anything", ""))
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("longenough1", 0)
	require.NoError(t, err)
	require.True(t, VerifyPassword("longenough1", hash))
}
