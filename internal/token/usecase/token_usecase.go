package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/config"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
	tokenService "github.com/allisson/identity/internal/token/service"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	config             *config.Config
	tokenRepo          TokenRepository
	revocationRepo     RevocationRepository
	credentialVerifier CredentialVerifier
	roleResolver       RoleResolver
	tokenService       tokenService.TokenService
}

// Issue authenticates the credential and mints a new token.
//
// Unknown users, wrong passwords and disabled principals all surface as
// ErrAuthenticationFailed so the public signal cannot be used to probe which
// half of the credential was wrong or whether an account exists. A valid
// credential with zero effective roles in the requested scope aborts with
// ErrScopeForbidden: no scoped token without authorization in that scope.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *tokenDomain.IssueInput,
) (*tokenDomain.Token, string, error) {
	status, user, err := t.credentialVerifier.VerifyCredential(ctx, input.DomainID, input.Name, input.Password)
	if err != nil {
		return nil, "", err
	}
	if status != principalDomain.CredentialValid {
		return nil, "", principalDomain.ErrAuthenticationFailed
	}

	scope := input.Scope
	if scope == nil && user.DefaultProjectID != nil {
		ref := scopeDomain.ProjectRef(*user.DefaultProjectID)
		scope = &ref
	}

	return t.mint(ctx, user.ID, scope)
}

// Validate checks the presented token against expiry, the per-row revocation
// flag and the per-user watermark, in that order. Both revocation paths are
// always checked so a token cannot slip through one of them.
func (t *tokenUseCase) Validate(ctx context.Context, plainToken string) (*tokenDomain.Token, error) {
	token, err := t.tokenRepo.GetByHash(ctx, t.tokenService.HashToken(plainToken))
	if err != nil {
		return nil, err
	}

	if token.Expired(time.Now().UTC()) {
		return nil, tokenDomain.ErrTokenExpired
	}
	if token.Revoked() {
		return nil, tokenDomain.ErrTokenRevoked
	}

	watermark, err := t.revocationRepo.GetWatermark(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if watermark != nil && !token.IssuedAt.After(*watermark) {
		return nil, tokenDomain.ErrTokenRevoked
	}

	return token, nil
}

// Rescope validates the presented token and issues a brand-new token for the
// new scope with a fresh expiry. The old token is not implicitly revoked.
func (t *tokenUseCase) Rescope(
	ctx context.Context,
	plainToken string,
	newScope scopeDomain.ScopeRef,
) (*tokenDomain.Token, string, error) {
	token, err := t.Validate(ctx, plainToken)
	if err != nil {
		return nil, "", err
	}

	return t.mint(ctx, token.UserID, &newScope)
}

// Revoke marks the presented token revoked. Calling it twice produces the
// same end state as calling it once.
func (t *tokenUseCase) Revoke(ctx context.Context, plainToken string) error {
	return t.tokenRepo.RevokeByHash(ctx, t.tokenService.HashToken(plainToken), time.Now().UTC())
}

// RevokeAllForUser moves the user's revocation watermark to now. Every token
// issued at or before this instant stops validating; tokens issued after the
// call returns are unaffected.
func (t *tokenUseCase) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return t.revocationRepo.SetWatermark(ctx, userID, time.Now().UTC())
}

// CleanupExpired removes token rows past the configured audit retention.
func (t *tokenUseCase) CleanupExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-t.config.TokenAuditRetention)
	return t.tokenRepo.DeleteExpiredBefore(ctx, cutoff)
}

// mint resolves the effective roles for the scope, freezes them and stores a
// new token. A nil scope yields an unscoped token with no roles.
func (t *tokenUseCase) mint(
	ctx context.Context,
	userID uuid.UUID,
	scope *scopeDomain.ScopeRef,
) (*tokenDomain.Token, string, error) {
	var roleNames []string
	if scope != nil {
		roles, err := t.roleResolver.EffectiveRoles(ctx, principalDomain.UserRef(userID), *scope)
		if err != nil {
			return nil, "", err
		}
		if len(roles) == 0 {
			return nil, "", tokenDomain.ErrScopeForbidden
		}
		roleNames = roleNamesOf(roles)
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	token := &tokenDomain.Token{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Scope:     scope,
		Roles:     roleNames,
		TokenHash: tokenHash,
		IssuedAt:  now,
		ExpiresAt: now.Add(t.config.TokenLifetime),
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, "", err
	}

	return token, plainToken, nil
}

// roleNamesOf extracts the role names for freezing into a token.
func roleNamesOf(roles []*roleDomain.Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	cfg *config.Config,
	tokenRepo TokenRepository,
	revocationRepo RevocationRepository,
	credentialVerifier CredentialVerifier,
	roleResolver RoleResolver,
	tokenSvc tokenService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:             cfg,
		tokenRepo:          tokenRepo,
		revocationRepo:     revocationRepo,
		credentialVerifier: credentialVerifier,
		roleResolver:       roleResolver,
		tokenService:       tokenSvc,
	}
}
