// Package usecase implements business logic orchestration for principals.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	"github.com/allisson/identity/internal/principal/service"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	groupRepo       GroupRepository
	domainReader    DomainReader
	projectReader   ProjectReader
	assignmentRepo  AssignmentRemover
	tokenRevoker    TokenRevoker
	passwordService service.PasswordService
}

// Create creates a new user with a hashed password.
func (u *userUseCase) Create(
	ctx context.Context,
	input *principalDomain.CreateUserInput,
) (*principalDomain.User, error) {
	if _, err := u.domainReader.Get(ctx, input.DomainID); err != nil {
		return nil, err
	}

	if err := u.checkDefaultProject(ctx, input.DomainID, input.DefaultProjectID); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetByName(ctx, input.DomainID, input.Name); err == nil {
		return nil, principalDomain.ErrDuplicateName
	} else if !errors.Is(err, principalDomain.ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := u.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &principalDomain.User{
		ID:               uuid.Must(uuid.NewV7()),
		Name:             input.Name,
		Description:      input.Description,
		Enabled:          input.Enabled,
		DomainID:         input.DomainID,
		DefaultProjectID: input.DefaultProjectID,
		PasswordHash:     passwordHash,
		CreatedAt:        time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID.
func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error) {
	return u.userRepo.Get(ctx, userID)
}

// GetByName retrieves a user by name within a domain.
func (u *userUseCase) GetByName(
	ctx context.Context,
	domainID uuid.UUID,
	name string,
) (*principalDomain.User, error) {
	return u.userRepo.GetByName(ctx, domainID, name)
}

// List retrieves users with pagination.
func (u *userUseCase) List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error) {
	return u.userRepo.List(ctx, offset, limit)
}

// Update modifies a user. Disabling an enabled user bulk-revokes all of their
// tokens in the same transaction as the update.
func (u *userUseCase) Update(
	ctx context.Context,
	userID uuid.UUID,
	input *principalDomain.UpdateUserInput,
) (*principalDomain.User, error) {
	user, err := u.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != user.Name {
		if existing, err := u.userRepo.GetByName(ctx, user.DomainID, input.Name); err == nil && existing.ID != userID {
			return nil, principalDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, principalDomain.ErrUserNotFound) {
			return nil, err
		}
	}

	if err := u.checkDefaultProject(ctx, user.DomainID, input.DefaultProjectID); err != nil {
		return nil, err
	}

	disabling := user.Enabled && !input.Enabled

	user.Name = input.Name
	user.Description = input.Description
	user.Enabled = input.Enabled
	user.DefaultProjectID = input.DefaultProjectID

	err = u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
		if disabling {
			return u.tokenRevoker.RevokeAllForUser(ctx, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword replaces the user's password and bulk-revokes all of their
// tokens in the same transaction. Tokens issued against the old password must
// not outlive it.
func (u *userUseCase) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if _, err := u.userRepo.Get(ctx, userID); err != nil {
		return err
	}

	passwordHash, err := u.passwordService.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
			return err
		}
		return u.tokenRevoker.RevokeAllForUser(ctx, userID)
	})
}

// Delete removes a user, cascading removal of role assignments, group
// memberships and issued tokens in one transaction.
func (u *userUseCase) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := u.userRepo.Get(ctx, userID); err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := u.assignmentRepo.DeleteByPrincipal(ctx, principalDomain.UserRef(userID)); err != nil {
			return err
		}
		if err := u.groupRepo.DeleteMembersByUser(ctx, userID); err != nil {
			return err
		}
		if err := u.tokenRevoker.PurgeAllForUser(ctx, userID); err != nil {
			return err
		}
		return u.userRepo.Delete(ctx, userID)
	})
}

// VerifyCredential checks a presented password against the stored hash.
// Unknown users and wrong passwords both map to CredentialInvalid so the
// public signal cannot be used to enumerate principals; a matching password
// for a disabled user or domain maps to CredentialPrincipalDisabled.
func (u *userUseCase) VerifyCredential(
	ctx context.Context,
	domainID uuid.UUID,
	name, password string,
) (principalDomain.CredentialStatus, *principalDomain.User, error) {
	user, err := u.userRepo.GetByName(ctx, domainID, name)
	if err != nil {
		if errors.Is(err, principalDomain.ErrUserNotFound) {
			return principalDomain.CredentialInvalid, nil, nil
		}
		return principalDomain.CredentialInvalid, nil, err
	}

	if !u.passwordService.ComparePassword(password, user.PasswordHash) {
		return principalDomain.CredentialInvalid, nil, nil
	}

	if !user.Enabled {
		return principalDomain.CredentialPrincipalDisabled, nil, nil
	}

	owningDomain, err := u.domainReader.Get(ctx, user.DomainID)
	if err != nil {
		return principalDomain.CredentialInvalid, nil, err
	}
	if !owningDomain.Enabled {
		return principalDomain.CredentialPrincipalDisabled, nil, nil
	}

	return principalDomain.CredentialValid, user, nil
}

// checkDefaultProject validates that the default project, if set, exists and
// belongs to the given domain.
func (u *userUseCase) checkDefaultProject(ctx context.Context, domainID uuid.UUID, projectID *uuid.UUID) error {
	if projectID == nil {
		return nil
	}

	project, err := u.projectReader.Get(ctx, *projectID)
	if err != nil {
		return err
	}
	if project.DomainID != domainID {
		return principalDomain.ErrCrossDomainDefaultProject
	}

	return nil
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	groupRepo GroupRepository,
	domainReader DomainReader,
	projectReader ProjectReader,
	assignmentRepo AssignmentRemover,
	tokenRevoker TokenRevoker,
	passwordService service.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		groupRepo:       groupRepo,
		domainReader:    domainReader,
		projectReader:   projectReader,
		assignmentRepo:  assignmentRepo,
		tokenRevoker:    tokenRevoker,
		passwordService: passwordService,
	}
}
