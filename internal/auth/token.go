package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("session token expired")
	// ErrInvalidToken is returned for a bad signature or malformed payload.
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims embeds the registered claim set plus the authenticated user's ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"user_id"`
}

// TokenIssuer mints and verifies signed session tokens. The signing secret
// is loaded once at startup and never rotated mid-process; rotation requires
// a restart.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetime.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue mints an HS256-signed token embedding the user ID, with expiry
// ttl from now.
func (i *TokenIssuer) Issue(userID uint64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(i.secret)
}

// Verify validates signature and expiry and returns the embedded user ID.
// Expired tokens yield ErrTokenExpired, everything else ErrInvalidToken;
// both read as "unauthenticated" at the HTTP boundary.
func (i *TokenIssuer) Verify(tokenString string) (uint64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
