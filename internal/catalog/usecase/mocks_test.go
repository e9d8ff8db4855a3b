package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
)

// mockEndpointRepository is a mock implementation of EndpointRepository for testing.
type mockEndpointRepository struct {
	mock.Mock
}

func (m *mockEndpointRepository) Create(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	args := m.Called(ctx, endpoint)
	return args.Error(0)
}

func (m *mockEndpointRepository) Update(ctx context.Context, endpoint *catalogDomain.Endpoint) error {
	args := m.Called(ctx, endpoint)
	return args.Error(0)
}

func (m *mockEndpointRepository) Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, endpointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockEndpointRepository) GetByName(ctx context.Context, name string) (*catalogDomain.Endpoint, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockEndpointRepository) List(ctx context.Context) ([]*catalogDomain.Endpoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Endpoint), args.Error(1)
}

func (m *mockEndpointRepository) Delete(ctx context.Context, endpointID uuid.UUID) error {
	args := m.Called(ctx, endpointID)
	return args.Error(0)
}
