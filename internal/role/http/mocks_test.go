package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// mockRoleUseCase is a mock implementation of RoleUseCase for testing.
type mockRoleUseCase struct {
	mock.Mock
}

func (m *mockRoleUseCase) Create(ctx context.Context, input *roleDomain.CreateRoleInput) (*roleDomain.Role, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleUseCase) Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleUseCase) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleUseCase) List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Role), args.Error(1)
}

func (m *mockRoleUseCase) Update(
	ctx context.Context,
	roleID uuid.UUID,
	input *roleDomain.UpdateRoleInput,
) (*roleDomain.Role, error) {
	args := m.Called(ctx, roleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleUseCase) Delete(ctx context.Context, roleID uuid.UUID) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// mockAssignmentUseCase is a mock implementation of AssignmentUseCase for testing.
type mockAssignmentUseCase struct {
	mock.Mock
}

func (m *mockAssignmentUseCase) Create(ctx context.Context, input *roleDomain.CreateAssignmentInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockAssignmentUseCase) Delete(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
	roleID uuid.UUID,
) error {
	args := m.Called(ctx, principal, scope, roleID)
	return args.Error(0)
}

func (m *mockAssignmentUseCase) List(
	ctx context.Context,
	filter *roleDomain.AssignmentFilter,
	offset, limit int,
) ([]*roleDomain.Assignment, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Assignment), args.Error(1)
}

// mockResolver is a mock implementation of Resolver for testing.
type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) EffectiveRoles(
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
