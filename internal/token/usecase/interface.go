// Package usecase implements business logic orchestration for the token
// lifecycle: issue, validate, rescope, revoke and cleanup.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// TokenRepository defines persistence operations for tokens.
type TokenRepository interface {
	// Create stores a new token in the repository.
	Create(ctx context.Context, token *tokenDomain.Token) error

	// GetByHash retrieves a token by its hash. Returns ErrTokenNotFound if no
	// stored token matches.
	GetByHash(ctx context.Context, tokenHash string) (*tokenDomain.Token, error)

	// RevokeByHash marks the token revoked, idempotently.
	RevokeByHash(ctx context.Context, tokenHash string, revokedAt time.Time) error

	// DeleteExpiredBefore removes token rows whose expiry precedes the cutoff.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteByUser removes all token rows issued to the user. User deletion
	// cascades through this; the rows must go before the user row can.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// RevocationRepository defines the per-user revocation watermark operations.
type RevocationRepository interface {
	// SetWatermark records that every token issued to the user at or before
	// the given instant is revoked.
	SetWatermark(ctx context.Context, userID uuid.UUID, revokedBefore time.Time) error

	// GetWatermark retrieves the user's watermark, nil when none exists.
	GetWatermark(ctx context.Context, userID uuid.UUID) (*time.Time, error)

	// DeleteWatermark removes the user's watermark row, if any. Used when the
	// user itself is deleted and the row would dangle.
	DeleteWatermark(ctx context.Context, userID uuid.UUID) error
}

// CredentialVerifier verifies a presented password against the principal store.
type CredentialVerifier interface {
	VerifyCredential(ctx context.Context, domainID uuid.UUID, name, password string) (principalDomain.CredentialStatus, *principalDomain.User, error)
}

// RoleResolver computes the effective roles a principal holds in a scope.
type RoleResolver interface {
	EffectiveRoles(ctx context.Context, principal principalDomain.PrincipalRef, scope scopeDomain.ScopeRef) ([]*roleDomain.Role, error)
}

// TokenUseCase defines business logic operations for the token lifecycle.
type TokenUseCase interface {
	// Issue authenticates the credential and mints a token snapshotting the
	// effective roles for the requested scope. The plain token is returned
	// once and never stored.
	Issue(ctx context.Context, input *tokenDomain.IssueInput) (*tokenDomain.Token, string, error)

	// Validate checks expiry and revocation for the presented token and
	// returns its frozen user/scope/roles. No role re-resolution happens.
	Validate(ctx context.Context, plainToken string) (*tokenDomain.Token, error)

	// Rescope validates the presented token and issues a brand-new token for
	// the new scope. The old token stays valid on its own timeline.
	Rescope(ctx context.Context, plainToken string, newScope scopeDomain.ScopeRef) (*tokenDomain.Token, string, error)

	// Revoke marks the presented token revoked. Idempotent.
	Revoke(ctx context.Context, plainToken string) error

	// RevokeAllForUser invalidates every token issued to the user before the
	// call via the watermark, without touching individual rows.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	// CleanupExpired removes token rows that expired before the audit
	// retention window. Returns the number of rows removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
