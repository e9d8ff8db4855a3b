// Package domain defines the token models and lifecycle errors.
//
// A token is an opaque bearer credential: the secret handed to the caller is
// random bytes, and only its SHA-256 digest is stored. The token freezes the
// user, scope and role names resolved at issuance time; later assignment
// changes never affect an already-issued token. Lifecycle per token is
// Issued -> Valid -> {Expired | Revoked}, both terminal states absorbing.
package domain

import (
	"time"

	"github.com/google/uuid"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// Token is an issued credential. Scope is nil for unscoped tokens; Roles is
// the role-name set frozen at issuance (empty for unscoped tokens). RevokedAt
// is set by single-token revocation; bulk revocation uses the per-user
// watermark instead and leaves rows untouched.
type Token struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Scope     *scopeDomain.ScopeRef
	Roles     []string
	TokenHash string
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Revoked reports whether single-token revocation has been applied.
func (t *Token) Revoked() bool {
	return t.RevokedAt != nil
}

// IssueInput contains the parameters for issuing a token: the credential to
// verify and an optional requested scope. When Scope is nil the user's
// default project is used; absent that, an unscoped token is issued.
type IssueInput struct {
	DomainID uuid.UUID
	Name     string
	Password string
	Scope    *scopeDomain.ScopeRef
}
