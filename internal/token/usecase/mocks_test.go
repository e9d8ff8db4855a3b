package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// fakeTokenService generates deterministic sequential tokens.
type fakeTokenService struct {
	counter int
}

func (f *fakeTokenService) GenerateToken() (string, string, error) {
	f.counter++
	plainToken := fmt.Sprintf("plain-token-%d", f.counter)
	return plainToken, f.HashToken(plainToken), nil
}

func (f *fakeTokenService) HashToken(plainToken string) string {
	hash := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(hash[:])
}

// mockTokenRepository is a mock implementation of TokenRepository for testing.
type mockTokenRepository struct {
	mock.Mock
}

func (m *mockTokenRepository) Create(ctx context.Context, token *tokenDomain.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*tokenDomain.Token, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

func (m *mockTokenRepository) RevokeByHash(ctx context.Context, tokenHash string, revokedAt time.Time) error {
	args := m.Called(ctx, tokenHash, revokedAt)
	return args.Error(0)
}

func (m *mockTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockRevocationRepository is a mock implementation of RevocationRepository for testing.
type mockRevocationRepository struct {
	mock.Mock
}

func (m *mockRevocationRepository) SetWatermark(ctx context.Context, userID uuid.UUID, revokedBefore time.Time) error {
	args := m.Called(ctx, userID, revokedBefore)
	return args.Error(0)
}

func (m *mockRevocationRepository) GetWatermark(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *mockRevocationRepository) DeleteWatermark(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockCredentialVerifier is a mock implementation of CredentialVerifier for testing.
type mockCredentialVerifier struct {
	mock.Mock
}

func (m *mockCredentialVerifier) VerifyCredential(
	ctx context.Context,
	domainID uuid.UUID,
	name, password string,
) (principalDomain.CredentialStatus, *principalDomain.User, error) {
	args := m.Called(ctx, domainID, name, password)
	if args.Get(1) == nil {
		return args.Get(0).(principalDomain.CredentialStatus), nil, args.Error(2)
	}
	return args.Get(0).(principalDomain.CredentialStatus), args.Get(1).(*principalDomain.User), args.Error(2)
}

// mockRoleResolver is a mock implementation of RoleResolver for testing.
type mockRoleResolver struct {
	mock.Mock
}

func (m *mockRoleResolver) EffectiveRoles(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
) ([]*roleDomain.Role, error) {
	args := m.Called(ctx, principal, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Role), args.Error(1)
}
