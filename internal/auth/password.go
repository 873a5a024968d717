package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront-backend/internal/apperr"
)

// HashPassword produces a salted bcrypt digest of the secret at the default
// work factor. An empty secret is rejected before any CPU is spent.
func HashPassword(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: empty password", apperr.ErrValidation)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether secret matches a digest previously produced
// by HashPassword.
func VerifyPassword(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
