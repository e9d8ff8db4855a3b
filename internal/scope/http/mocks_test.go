package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// mockDomainUseCase is a mock implementation of DomainUseCase for testing.
type mockDomainUseCase struct {
	mock.Mock
}

func (m *mockDomainUseCase) Create(
	ctx context.Context,
	input *scopeDomain.CreateDomainInput,
) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainUseCase) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainUseCase) GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainUseCase) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainUseCase) Update(
	ctx context.Context,
	domainID uuid.UUID,
	input *scopeDomain.UpdateDomainInput,
) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, domainID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainUseCase) Delete(ctx context.Context, domainID uuid.UUID) error {
	args := m.Called(ctx, domainID)
	return args.Error(0)
}

// mockProjectUseCase is a mock implementation of ProjectUseCase for testing.
type mockProjectUseCase struct {
	mock.Mock
}

func (m *mockProjectUseCase) Create(
	ctx context.Context,
	input *scopeDomain.CreateProjectInput,
) (*scopeDomain.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Update(
	ctx context.Context,
	projectID uuid.UUID,
	input *scopeDomain.UpdateProjectInput,
) (*scopeDomain.Project, error) {
	args := m.Called(ctx, projectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectUseCase) Delete(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *mockProjectUseCase) Ancestors(
	ctx context.Context,
	scope scopeDomain.ScopeRef,
) ([]scopeDomain.ScopeRef, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scopeDomain.ScopeRef), args.Error(1)
}
