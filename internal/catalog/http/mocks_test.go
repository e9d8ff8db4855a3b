package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// mockCatalogUseCase is a mock implementation of catalogUseCase.CatalogUseCase for testing.
type mockCatalogUseCase struct {
	mock.Mock
}

func (m *mockCatalogUseCase) Create(ctx context.Context, input *catalogDomain.CreateEndpointInput) (*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockCatalogUseCase) Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, endpointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockCatalogUseCase) Update(ctx context.Context, endpointID uuid.UUID, input *catalogDomain.UpdateEndpointInput) (*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, endpointID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockCatalogUseCase) Delete(ctx context.Context, endpointID uuid.UUID) error {
	args := m.Called(ctx, endpointID)
	return args.Error(0)
}

func (m *mockCatalogUseCase) List(ctx context.Context, scope *scopeDomain.ScopeRef) ([]*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Endpoint), args.Error(1)
}
