package auth

import (
	"github.com/wisteria-dev/taskboard-api/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest of the plaintext. Two calls
// on the same input yield different digests; both verify.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), constants.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// Malformed digests verify as false rather than erroring; bcrypt's
// comparison is constant-time over the derived key.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
