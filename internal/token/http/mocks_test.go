package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// mockTokenUseCase is a mock implementation of tokenUseCase.TokenUseCase for testing.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Issue(ctx context.Context, input *tokenDomain.IssueInput) (*tokenDomain.Token, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*tokenDomain.Token), args.String(1), args.Error(2)
}

func (m *mockTokenUseCase) Validate(ctx context.Context, plainToken string) (*tokenDomain.Token, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

func (m *mockTokenUseCase) Rescope(ctx context.Context, plainToken string, newScope scopeDomain.ScopeRef) (*tokenDomain.Token, string, error) {
	args := m.Called(ctx, plainToken, newScope)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*tokenDomain.Token), args.String(1), args.Error(2)
}

func (m *mockTokenUseCase) Revoke(ctx context.Context, plainToken string) error {
	args := m.Called(ctx, plainToken)
	return args.Error(0)
}

func (m *mockTokenUseCase) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockTokenUseCase) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// mockCatalogLister is a mock implementation of CatalogLister for testing.
type mockCatalogLister struct {
	mock.Mock
}

func (m *mockCatalogLister) List(ctx context.Context, scope *scopeDomain.ScopeRef) ([]*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Endpoint), args.Error(1)
}
