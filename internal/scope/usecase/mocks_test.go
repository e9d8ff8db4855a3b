package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// fakeTxManager executes the function directly without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockDomainRepository is a mock implementation of DomainRepository for testing.
type mockDomainRepository struct {
	mock.Mock
}

func (m *mockDomainRepository) Create(ctx context.Context, domain *scopeDomain.Domain) error {
	args := m.Called(ctx, domain)
	return args.Error(0)
}

func (m *mockDomainRepository) Update(ctx context.Context, domain *scopeDomain.Domain) error {
	args := m.Called(ctx, domain)
	return args.Error(0)
}

func (m *mockDomainRepository) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, domainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainRepository) GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scopeDomain.Domain), args.Error(1)
}

func (m *mockDomainRepository) Delete(ctx context.Context, domainID uuid.UUID) error {
	args := m.Called(ctx, domainID)
	return args.Error(0)
}

// mockDefaultProjectChecker is a mock implementation of DefaultProjectChecker for testing.
type mockDefaultProjectChecker struct {
	mock.Mock
}

func (m *mockDefaultProjectChecker) CountUsersByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// noDefaultProjectChecker reports no default-project references, for tests
// that do not exercise the delete guard.
type noDefaultProjectChecker struct{}

func (n *noDefaultProjectChecker) CountUsersByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	return 0, nil
}

// mockProjectRepository is a mock implementation of ProjectRepository for testing.
type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *scopeDomain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *scopeDomain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*scopeDomain.Project, error) {
	args := m.Called(ctx, domainID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectRepository) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scopeDomain.Project), args.Error(1)
}

func (m *mockProjectRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	args := m.Called(ctx, domainID)
	return args.Int(0), args.Error(1)
}

func (m *mockProjectRepository) CountChildren(ctx context.Context, projectID uuid.UUID) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// mockAssignmentRemover is a mock implementation of AssignmentRemover for testing.
type mockAssignmentRemover struct {
	mock.Mock
}

func (m *mockAssignmentRemover) DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

// mockPrincipalCounter is a mock implementation of PrincipalCounter for testing.
type mockPrincipalCounter struct {
	mock.Mock
}

func (m *mockPrincipalCounter) CountUsersByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	args := m.Called(ctx, domainID)
	return args.Int(0), args.Error(1)
}

func (m *mockPrincipalCounter) CountGroupsByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	args := m.Called(ctx, domainID)
	return args.Int(0), args.Error(1)
}
