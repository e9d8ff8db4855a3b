// Package service provides the password hashing service for user credentials.
// Uses Argon2id via the pwdhash package; plaintext passwords never leave this
// boundary unhashed.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/identity/internal/errors"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// HashPassword hashes a plaintext password with Argon2id.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword performs a constant-time comparison between a plaintext
	// password and its stored hash.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plaintext password with Argon2id.
func (s *passwordService) HashPassword(plainPassword string) (string, error) {
	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// ComparePassword performs a constant-time comparison between a plaintext
// password and its stored hash.
func (s *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a new PasswordService instance using Argon2id
// with the interactive policy, tuned for login-path latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	return &passwordService{hasher: hasher}
}
