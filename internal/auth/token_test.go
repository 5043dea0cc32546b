package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueVerifyRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	token, err := issuer.Issue(123)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(123), userID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret"), -1*time.Second)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("right-secret"), time.Hour)

	token, err := issuer.Issue(2)
	require.NoError(t, err)

	other := NewTokenIssuer([]byte("wrong-secret"), time.Hour)
	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	issuer := NewTokenIssuer([]byte("k"), time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
