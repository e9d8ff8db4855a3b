package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// fakeTxManager executes the function directly without a real transaction.
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakePasswordService is a deterministic stand-in for the Argon2id hasher.
type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(plainPassword string) (string, error) {
	return "hashed:" + plainPassword, nil
}

func (f *fakePasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	return hashedPassword == "hashed:"+plainPassword
}

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *principalDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *principalDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.User, error) {
	args := m.Called(ctx, domainID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.User), args.Error(1)
}

func (m *mockUserRepository) CountByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *mockUserRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	args := m.Called(ctx, domainID)
	return args.Int(0), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockGroupRepository is a mock implementation of GroupRepository for testing.
type mockGroupRepository struct {
	mock.Mock
}

func (m *mockGroupRepository) Create(ctx context.Context, group *principalDomain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *mockGroupRepository) Update(ctx context.Context, group *principalDomain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *mockGroupRepository) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupRepository) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.Group, error) {
	args := m.Called(ctx, domainID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupRepository) List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.Group), args.Error(1)
}

func (m *mockGroupRepository) CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	args := m.Called(ctx, domainID)
	return args.Int(0), args.Error(1)
}

func (m *mockGroupRepository) Delete(ctx context.Context, groupID uuid.UUID) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *mockGroupRepository) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupRepository) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupRepository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.User), args.Error(1)
}

func (m *mockGroupRepository) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.Group), args.Error(1)
}

func (m *mockGroupRepository) DeleteMembersByGroup(ctx context.Context, groupID uuid.UUID) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *mockGroupRepository) DeleteMembersByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

// mockAssignmentRemover is a mock implementation of AssignmentRemover for testing.
type mockAssignmentRemover struct {
	mock.Mock
}

func (m *mockAssignmentRemover) DeleteByPrincipal(ctx context.Context, principal principalDomain.PrincipalRef) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}

// mockTokenRevoker is a mock implementation of TokenRevoker for testing.
type mockTokenRevoker struct {
	mock.Mock
}

func (m *mockTokenRevoker) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockTokenRevoker) PurgeAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
