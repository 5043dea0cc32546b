package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", digest)

	require.True(t, VerifyPassword("correct horse battery staple", digest))
	require.False(t, VerifyPassword("wrong password", digest))
}

func TestHashPassword_SaltRandomness(t *testing.T) {
	first, err := HashPassword("supersecret")
	require.NoError(t, err)

	second, err := HashPassword("supersecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "two hashes of the same input must differ")
	require.True(t, VerifyPassword("supersecret", first))
	require.True(t, VerifyPassword("supersecret", second))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-digest"))
	require.False(t, VerifyPassword("anything", ""))
}
