package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// fakeTxManager executes the function directly without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockRoleRepository is a mock implementation of RoleRepository for testing.
type mockRoleRepository struct {
	mock.Mock
}

func (m *mockRoleRepository) Create(ctx context.Context, role *roleDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *mockRoleRepository) Update(ctx context.Context, role *roleDomain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *mockRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roleDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) GetMany(ctx context.Context, roleIDs []uuid.UUID) ([]*roleDomain.Role, error) {
	args := m.Called(ctx, roleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Role), args.Error(1)
}

func (m *mockRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// mockAssignmentRepository is a mock implementation of AssignmentRepository
// for testing.
type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) Create(ctx context.Context, assignment *roleDomain.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *mockAssignmentRepository) Delete(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
	roleID uuid.UUID,
) error {
	args := m.Called(ctx, principal, scope, roleID)
	return args.Error(0)
}

func (m *mockAssignmentRepository) DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

func (m *mockAssignmentRepository) DeleteByPrincipal(ctx context.Context, principal principalDomain.PrincipalRef) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

func (m *mockAssignmentRepository) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

func (m *mockAssignmentRepository) List(
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

func (m *mockAssignmentRepository) ListByPrincipalsAndScopes(
	ctx context.Context,
	principals []principalDomain.PrincipalRef,
	scopes []scopeDomain.ScopeRef,
) ([]*roleDomain.Assignment, error) {
	args := m.Called(ctx, principals, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Assignment), args.Error(1)
}

// mockAncestorResolver is a mock implementation of AncestorResolver for testing.
type mockAncestorResolver struct {
	mock.Mock
}

func (m *mockAncestorResolver) Ancestors(ctx context.Context, scope scopeDomain.ScopeRef) ([]scopeDomain.ScopeRef, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scopeDomain.ScopeRef), args.Error(1)
}

// mockDomainReader is a mock implementation of DomainReader for testing.
type mockDomainReader struct {
	mock.Mock
}

func (m *mockDomainReader) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

// mockProjectReader is a mock implementation of ProjectReader for testing.
type mockProjectReader struct {
	mock.Mock
}

func (m *mockProjectReader) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

// mockUserReader is a mock implementation of UserReader for testing.
type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

// mockGroupReader is a mock implementation of GroupReader for testing.
type mockGroupReader struct {
	mock.Mock
}

func (m *mockGroupReader) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupReader) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.Group), args.Error(1)
}
