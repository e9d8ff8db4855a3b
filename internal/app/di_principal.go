package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	principalRepository "github.com/allisson/identity/internal/principal/repository"
	principalService "github.com/allisson/identity/internal/principal/service"
	principalUseCase "github.com/allisson/identity/internal/principal/usecase"
	scopeUseCase "github.com/allisson/identity/internal/scope/usecase"
	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// domainPrincipalCounter adapts the user and group repositories to the scope
// module's PrincipalCounter so domain deletion can see both counts.
type domainPrincipalCounter struct {
	userRepo  principalUseCase.UserRepository
	groupRepo principalUseCase.GroupRepository
}

func (d *domainPrincipalCounter) CountUsersByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	return d.userRepo.CountByDomain(ctx, domainID)
}

func (d *domainPrincipalCounter) CountGroupsByDomain(ctx context.Context, domainID uuid.UUID) (int, error) {
	return d.groupRepo.CountByDomain(ctx, domainID)
}

// principalCounter builds the PrincipalCounter adapter for the scope module.
func (c *Container) principalCounter() (scopeUseCase.PrincipalCounter, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, err
	}
	groupRepo, err := c.GroupRepository()
	if err != nil {
		return nil, err
	}
	return &domainPrincipalCounter{userRepo: userRepo, groupRepo: groupRepo}, nil
}

// defaultProjectChecker adapts the user repository to the scope module's
// DefaultProjectChecker so project deletion can see default-project references.
type defaultProjectChecker struct {
	userRepo principalUseCase.UserRepository
}

func (d *defaultProjectChecker) CountUsersByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	return d.userRepo.CountByDefaultProject(ctx, projectID)
}

// projectDefaultChecker builds the DefaultProjectChecker adapter for the scope module.
func (c *Container) projectDefaultChecker() (scopeUseCase.DefaultProjectChecker, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, err
	}
	return &defaultProjectChecker{userRepo: userRepo}, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (principalUseCase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.userRepo = principalRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.userRepo = principalRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["userRepo"]; exists {
		return nil, err
	}
	return c.userRepo, nil
}

// GroupRepository returns the group repository instance.
func (c *Container) GroupRepository() (principalUseCase.GroupRepository, error) {
	c.groupRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["groupRepo"] = fmt.Errorf("failed to get database for group repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.groupRepo = principalRepository.NewMySQLGroupRepository(db)
		case "postgres":
			c.groupRepo = principalRepository.NewPostgreSQLGroupRepository(db)
		default:
			c.initErrors["groupRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["groupRepo"]; exists {
		return nil, err
	}
	return c.groupRepo, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() principalService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = principalService.NewPasswordService()
	})
	return c.passwordService
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (principalUseCase.UserUseCase, error) {
	c.userUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		groupRepo, err := c.GroupRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		projectRepo, err := c.ProjectRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		tokenRepo, err := c.TokenRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		revocationRepo, err := c.RevocationRepository()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}

		c.userUseCase = principalUseCase.NewUserUseCase(
			txManager,
			userRepo,
			groupRepo,
			domainRepo,
			projectRepo,
			assignmentRepo,
			tokenUseCase.NewTokenRevoker(tokenRepo, revocationRepo),
			c.PasswordService(),
		)
	})
	if err, exists := c.initErrors["userUseCase"]; exists {
		return nil, err
	}
	return c.userUseCase, nil
}

// GroupUseCase returns the group use case instance.
func (c *Container) GroupUseCase() (principalUseCase.GroupUseCase, error) {
	c.groupUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		groupRepo, err := c.GroupRepository()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["groupUseCase"] = err
			return
		}

		c.groupUseCase = principalUseCase.NewGroupUseCase(txManager, groupRepo, userRepo, domainRepo, assignmentRepo)
	})
	if err, exists := c.initErrors["groupUseCase"]; exists {
		return nil, err
	}
	return c.groupUseCase, nil
}
