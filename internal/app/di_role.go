package app

import (
	"fmt"

	roleRepository "github.com/allisson/identity/internal/role/repository"
	roleUseCase "github.com/allisson/identity/internal/role/usecase"
)

// RoleRepository returns the role repository instance.
func (c *Container) RoleRepository() (roleUseCase.RoleRepository, error) {
	c.roleRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["roleRepo"] = fmt.Errorf("failed to get database for role repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.roleRepo = roleRepository.NewMySQLRoleRepository(db)
		case "postgres":
			c.roleRepo = roleRepository.NewPostgreSQLRoleRepository(db)
		default:
			c.initErrors["roleRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["roleRepo"]; exists {
		return nil, err
	}
	return c.roleRepo, nil
}

// AssignmentRepository returns the role-assignment repository instance. The
// scope and principal modules also cascade deletions through it.
func (c *Container) AssignmentRepository() (roleUseCase.AssignmentRepository, error) {
	c.assignmentRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["assignmentRepo"] = fmt.Errorf("failed to get database for assignment repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.assignmentRepo = roleRepository.NewMySQLAssignmentRepository(db)
		case "postgres":
			c.assignmentRepo = roleRepository.NewPostgreSQLAssignmentRepository(db)
		default:
			c.initErrors["assignmentRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["assignmentRepo"]; exists {
		return nil, err
	}
	return c.assignmentRepo, nil
}

// RoleUseCase returns the role use case instance.
func (c *Container) RoleUseCase() (roleUseCase.RoleUseCase, error) {
	c.roleUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["roleUseCase"] = err
			return
		}
		roleRepo, err := c.RoleRepository()
		if err != nil {
			c.initErrors["roleUseCase"] = err
			return
		}
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["roleUseCase"] = err
			return
		}

		c.roleUC = roleUseCase.NewRoleUseCase(txManager, roleRepo, assignmentRepo)
	})
	if err, exists := c.initErrors["roleUseCase"]; exists {
		return nil, err
	}
	return c.roleUC, nil
}

// AssignmentUseCase returns the assignment use case instance.
func (c *Container) AssignmentUseCase() (roleUseCase.AssignmentUseCase, error) {
	c.assignmentUseCaseInit.Do(func() {
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}
		roleRepo, err := c.RoleRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}
		projectRepo, err := c.ProjectRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}
		groupRepo, err := c.GroupRepository()
		if err != nil {
			c.initErrors["assignmentUseCase"] = err
			return
		}

		c.assignmentUseCase = roleUseCase.NewAssignmentUseCase(
			assignmentRepo,
			roleRepo,
			domainRepo,
			projectRepo,
			userRepo,
			groupRepo,
		)
	})
	if err, exists := c.initErrors["assignmentUseCase"]; exists {
		return nil, err
	}
	return c.assignmentUseCase, nil
}

// Resolver returns the effective-role resolver instance.
func (c *Container) Resolver() (roleUseCase.Resolver, error) {
	c.resolverInit.Do(func() {
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		roleRepo, err := c.RoleRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		projectUseCase, err := c.ProjectUseCase()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		projectRepo, err := c.ProjectRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}
		groupRepo, err := c.GroupRepository()
		if err != nil {
			c.initErrors["resolver"] = err
			return
		}

		c.resolver = roleUseCase.NewResolver(
			assignmentRepo,
			roleRepo,
			projectUseCase,
			domainRepo,
			projectRepo,
			userRepo,
			groupRepo,
		)
	})
	if err, exists := c.initErrors["resolver"]; exists {
		return nil, err
	}
	return c.resolver, nil
}
