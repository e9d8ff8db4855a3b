package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

type userUseCaseMocks struct {
	userRepo       *mockUserRepository
	groupRepo      *mockGroupRepository
	domainReader   *mockDomainReader
	projectReader  *mockProjectReader
	assignmentRepo *mockAssignmentRemover
	tokenRevoker   *mockTokenRevoker
}

func setupUserUseCase(t *testing.T) (UserUseCase, *userUseCaseMocks) {
	t.Helper()

	m := &userUseCaseMocks{
		userRepo:       &mockUserRepository{},
		groupRepo:      &mockGroupRepository{},
		domainReader:   &mockDomainReader{},
		projectReader:  &mockProjectReader{},
		assignmentRepo: &mockAssignmentRemover{},
		tokenRevoker:   &mockTokenRevoker{},
	}

	uc := NewUserUseCase(
		&fakeTxManager{},
		m.userRepo,
		m.groupRepo,
		m.domainReader,
		m.projectReader,
		m.assignmentRepo,
		m.tokenRevoker,
		&fakePasswordService{},
	)

	return uc, m
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())
	acme := &scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}

	t.Run("Success_HashesPassword", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.domainReader.On("Get", ctx, domainID).Return(acme, nil).Once()
		m.userRepo.On("GetByName", ctx, domainID, "alice").
			Return(nil, principalDomain.ErrUserNotFound).
			Once()
		m.userRepo.On("Create", ctx, mock.MatchedBy(func(u *principalDomain.User) bool {
			return u.Name == "alice" && u.PasswordHash == "hashed:Sup3rSecret" && u.DomainID == domainID
		})).
			Return(nil).
			Once()

		user, err := uc.Create(ctx, &principalDomain.CreateUserInput{
			Name:     "alice",
			Enabled:  true,
			DomainID: domainID,
			Password: "Sup3rSecret",
		})

		assert.NoError(t, err)
		assert.NotEqual(t, "Sup3rSecret", user.PasswordHash)
		m.userRepo.AssertExpectations(t)
	})

	t.Run("Error_CrossDomainDefaultProject", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		otherDomainID := uuid.Must(uuid.NewV7())
		projectID := uuid.Must(uuid.NewV7())

		m.domainReader.On("Get", ctx, domainID).Return(acme, nil).Once()
		m.projectReader.On("Get", ctx, projectID).
			Return(&scopeDomain.Project{ID: projectID, Name: "dev", DomainID: otherDomainID}, nil).
			Once()

		_, err := uc.Create(ctx, &principalDomain.CreateUserInput{
			Name:             "alice",
			Enabled:          true,
			DomainID:         domainID,
			DefaultProjectID: &projectID,
			Password:         "Sup3rSecret",
		})

		assert.ErrorIs(t, err, principalDomain.ErrCrossDomainDefaultProject)
		m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateNameWithinDomain", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		existing := &principalDomain.User{ID: uuid.Must(uuid.NewV7()), Name: "alice", DomainID: domainID}
		m.domainReader.On("Get", ctx, domainID).Return(acme, nil).Once()
		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(existing, nil).Once()

		_, err := uc.Create(ctx, &principalDomain.CreateUserInput{
			Name:     "alice",
			DomainID: domainID,
			Password: "Sup3rSecret",
		})

		assert.ErrorIs(t, err, principalDomain.ErrDuplicateName)
	})
}

func TestUserUseCase_VerifyCredential(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	enabledUser := &principalDomain.User{
		ID:           userID,
		Name:         "alice",
		Enabled:      true,
		DomainID:     domainID,
		PasswordHash: "hashed:Sup3rSecret",
	}

	t.Run("Valid_CorrectPassword", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(enabledUser, nil).Once()
		m.domainReader.On("Get", ctx, domainID).
			Return(&scopeDomain.Domain{ID: domainID, Enabled: true}, nil).
			Once()

		status, user, err := uc.VerifyCredential(ctx, domainID, "alice", "Sup3rSecret")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialValid, status)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Invalid_WrongPassword", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(enabledUser, nil).Once()

		status, user, err := uc.VerifyCredential(ctx, domainID, "alice", "wrong")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialInvalid, status)
		assert.Nil(t, user)
	})

	t.Run("Invalid_UnknownUser", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("GetByName", ctx, domainID, "mallory").
			Return(nil, principalDomain.ErrUserNotFound).
			Once()

		status, user, err := uc.VerifyCredential(ctx, domainID, "mallory", "Sup3rSecret")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialInvalid, status)
		assert.Nil(t, user)
	})

	t.Run("Disabled_UserDisabled", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		disabledUser := &principalDomain.User{
			ID:           userID,
			Name:         "alice",
			Enabled:      false,
			DomainID:     domainID,
			PasswordHash: "hashed:Sup3rSecret",
		}
		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(disabledUser, nil).Once()

		status, user, err := uc.VerifyCredential(ctx, domainID, "alice", "Sup3rSecret")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialPrincipalDisabled, status)
		assert.Nil(t, user)
	})

	t.Run("Disabled_OwningDomainDisabled", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(enabledUser, nil).Once()
		m.domainReader.On("Get", ctx, domainID).
			Return(&scopeDomain.Domain{ID: domainID, Enabled: false}, nil).
			Once()

		status, _, err := uc.VerifyCredential(ctx, domainID, "alice", "Sup3rSecret")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialPrincipalDisabled, status)
	})

	t.Run("Disabled_WrongPasswordStillInvalid", func(t *testing.T) {
		// A disabled account with a wrong password reports Invalid, not
		// Disabled, so the disabled state leaks only to valid credentials.
		uc, m := setupUserUseCase(t)

		disabledUser := &principalDomain.User{
			ID:           userID,
			Name:         "alice",
			Enabled:      false,
			DomainID:     domainID,
			PasswordHash: "hashed:Sup3rSecret",
		}
		m.userRepo.On("GetByName", ctx, domainID, "alice").Return(disabledUser, nil).Once()

		status, _, err := uc.VerifyCredential(ctx, domainID, "alice", "wrong")

		require.NoError(t, err)
		assert.Equal(t, principalDomain.CredentialInvalid, status)
	})
}

func TestUserUseCase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	user := &principalDomain.User{ID: userID, Name: "alice", Enabled: true}

	t.Run("Success_RevokesAllTokens", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("Get", ctx, userID).Return(user, nil).Once()
		m.userRepo.On("UpdatePassword", ctx, userID, "hashed:NewSecret1").Return(nil).Once()
		m.tokenRevoker.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		err := uc.ChangePassword(ctx, userID, "NewSecret1")

		assert.NoError(t, err)
		m.tokenRevoker.AssertExpectations(t)
	})

	t.Run("Error_UserNotFound", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("Get", ctx, userID).Return(nil, principalDomain.ErrUserNotFound).Once()

		err := uc.ChangePassword(ctx, userID, "NewSecret1")

		assert.ErrorIs(t, err, principalDomain.ErrUserNotFound)
		m.tokenRevoker.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	domainID := uuid.Must(uuid.NewV7())

	t.Run("Success_DisableRevokesTokens", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		existing := &principalDomain.User{ID: userID, Name: "alice", Enabled: true, DomainID: domainID}
		m.userRepo.On("Get", ctx, userID).Return(existing, nil).Once()
		m.userRepo.On("Update", ctx, mock.MatchedBy(func(u *principalDomain.User) bool {
			return u.ID == userID && !u.Enabled
		})).
			Return(nil).
			Once()
		m.tokenRevoker.On("RevokeAllForUser", ctx, userID).Return(nil).Once()

		user, err := uc.Update(ctx, userID, &principalDomain.UpdateUserInput{Name: "alice", Enabled: false})

		assert.NoError(t, err)
		assert.False(t, user.Enabled)
		m.tokenRevoker.AssertExpectations(t)
	})

	t.Run("Success_NoRevokeWhenStillEnabled", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		existing := &principalDomain.User{ID: userID, Name: "alice", Enabled: true, DomainID: domainID}
		m.userRepo.On("Get", ctx, userID).Return(existing, nil).Once()
		m.userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		_, err := uc.Update(ctx, userID, &principalDomain.UpdateUserInput{Name: "alice", Enabled: true})

		assert.NoError(t, err)
		m.tokenRevoker.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	user := &principalDomain.User{ID: userID, Name: "alice", Enabled: true}

	t.Run("Success_CascadesEverything", func(t *testing.T) {
		uc, m := setupUserUseCase(t)

		m.userRepo.On("Get", ctx, userID).Return(user, nil).Once()
		m.assignmentRepo.On("DeleteByPrincipal", ctx, principalDomain.UserRef(userID)).Return(nil).Once()
		m.groupRepo.On("DeleteMembersByUser", ctx, userID).Return(nil).Once()
		m.tokenRevoker.On("PurgeAllForUser", ctx, userID).Return(nil).Once()
		m.userRepo.On("Delete", ctx, userID).Return(nil).Once()

		err := uc.Delete(ctx, userID)

		assert.NoError(t, err)
		m.assignmentRepo.AssertExpectations(t)
		m.groupRepo.AssertExpectations(t)
		m.tokenRevoker.AssertExpectations(t)
		m.userRepo.AssertExpectations(t)
		// A watermark write would leave a token_revocations row referencing
		// the user about to be deleted.
		m.tokenRevoker.AssertNotCalled(t, "RevokeAllForUser", mock.Anything, mock.Anything)
	})
}
