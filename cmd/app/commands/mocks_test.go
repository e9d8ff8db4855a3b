package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Issue(ctx context.Context, input *tokenDomain.IssueInput) (*tokenDomain.Token, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
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
		return nil, args.String(1), args.Error(2)
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

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(ctx context.Context, input *principalDomain.CreateUserInput) (*principalDomain.User, error) {
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

func (m *mockUserUseCase) GetByName(ctx context.Context, domainID uuid.UUID, name string) (*principalDomain.User, error) {
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

func (m *mockUserUseCase) Update(ctx context.Context, userID uuid.UUID, input *principalDomain.UpdateUserInput) (*principalDomain.User, error) {
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

func (m *mockUserUseCase) VerifyCredential(ctx context.Context, domainID uuid.UUID, name, password string) (principalDomain.CredentialStatus, *principalDomain.User, error) {
	args := m.Called(ctx, domainID, name, password)
	if args.Get(1) == nil {
		return args.Get(0).(principalDomain.CredentialStatus), nil, args.Error(2)
	}
	return args.Get(0).(principalDomain.CredentialStatus), args.Get(1).(*principalDomain.User), args.Error(2)
}

type mockDomainUseCase struct {
	mock.Mock
}

func (m *mockDomainUseCase) Create(ctx context.Context, input *scopeDomain.CreateDomainInput) (*scopeDomain.Domain, error) {
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

func (m *mockDomainUseCase) Update(ctx context.Context, domainID uuid.UUID, input *scopeDomain.UpdateDomainInput) (*scopeDomain.Domain, error) {
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

type mockProjectUseCase struct {
	mock.Mock
}

func (m *mockProjectUseCase) Create(ctx context.Context, input *scopeDomain.CreateProjectInput) (*scopeDomain.Project, error) {
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

func (m *mockProjectUseCase) Update(ctx context.Context, projectID uuid.UUID, input *scopeDomain.UpdateProjectInput) (*scopeDomain.Project, error) {
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

func (m *mockProjectUseCase) Ancestors(ctx context.Context, scope scopeDomain.ScopeRef) ([]scopeDomain.ScopeRef, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scopeDomain.ScopeRef), args.Error(1)
}

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

func (m *mockRoleUseCase) Update(ctx context.Context, roleID uuid.UUID, input *roleDomain.UpdateRoleInput) (*roleDomain.Role, error) {
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

type mockAssignmentUseCase struct {
	mock.Mock
}

func (m *mockAssignmentUseCase) Create(ctx context.Context, input *roleDomain.CreateAssignmentInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockAssignmentUseCase) Delete(ctx context.Context, principal principalDomain.PrincipalRef, scope scopeDomain.ScopeRef, roleID uuid.UUID) error {
	args := m.Called(ctx, principal, scope, roleID)
	return args.Error(0)
}

func (m *mockAssignmentUseCase) List(ctx context.Context, filter *roleDomain.AssignmentFilter, offset, limit int) ([]*roleDomain.Assignment, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*roleDomain.Assignment), args.Error(1)
}
