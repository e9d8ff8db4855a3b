// Package service provides the opaque bearer token scheme.
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/allisson/identity/internal/errors"
)

// TokenService generates opaque bearer tokens and hashes them for storage.
// Only the hash is persisted; the plain token is shown to the caller once.
type TokenService interface {
	// GenerateToken creates a new random token. Returns the plain token and
	// its SHA-256 hash.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain token for storage lookup.
	HashToken(plainToken string) string
}

// tokenService implements TokenService using SHA-256 for token hashing.
type tokenService struct{}

// GenerateToken creates a cryptographically secure 32-byte random token,
// base64 URL-encoded for transmission.
func (t *tokenService) GenerateToken() (string, string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken := base64.URLEncoding.EncodeToString(randomBytes)

	return plainToken, t.HashToken(plainToken), nil
}

// HashToken hashes a plain token using SHA-256, hex encoded.
func (t *tokenService) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

// NewTokenService creates a new TokenService instance.
func NewTokenService() TokenService {
	return &tokenService{}
}
