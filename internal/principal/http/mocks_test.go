package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
)

// mockUserUseCase is a mock implementation of UserUseCase for testing.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(
	ctx context.Context,
	input *principalDomain.CreateUserInput,
) (*principalDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetByName(
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

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Update(
	ctx context.Context,
	userID uuid.UUID,
	input *principalDomain.UpdateUserInput,
) (*principalDomain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.User), args.Error(1)
}

func (m *mockUserUseCase) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *mockUserUseCase) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserUseCase) VerifyCredential(
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

// mockGroupUseCase is a mock implementation of GroupUseCase for testing.
type mockGroupUseCase struct {
	mock.Mock
}

func (m *mockGroupUseCase) Create(
	ctx context.Context,
	input *principalDomain.CreateGroupInput,
) (*principalDomain.Group, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupUseCase) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupUseCase) List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.Group), args.Error(1)
}

func (m *mockGroupUseCase) Update(
	ctx context.Context,
	groupID uuid.UUID,
	input *principalDomain.UpdateGroupInput,
) (*principalDomain.Group, error) {
	args := m.Called(ctx, groupID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*principalDomain.Group), args.Error(1)
}

func (m *mockGroupUseCase) Delete(ctx context.Context, groupID uuid.UUID) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *mockGroupUseCase) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupUseCase) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *mockGroupUseCase) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.User), args.Error(1)
}

func (m *mockGroupUseCase) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*principalDomain.Group), args.Error(1)
}
