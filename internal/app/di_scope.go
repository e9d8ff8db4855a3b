package app

import (
	"fmt"

	scopeRepository "github.com/allisson/identity/internal/scope/repository"
	scopeUseCase "github.com/allisson/identity/internal/scope/usecase"
)

// DomainRepository returns the domain repository instance.
func (c *Container) DomainRepository() (scopeUseCase.DomainRepository, error) {
	c.domainRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["domainRepo"] = fmt.Errorf("failed to get database for domain repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.domainRepo = scopeRepository.NewMySQLDomainRepository(db)
		case "postgres":
			c.domainRepo = scopeRepository.NewPostgreSQLDomainRepository(db)
		default:
			c.initErrors["domainRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["domainRepo"]; exists {
		return nil, err
	}
	return c.domainRepo, nil
}

// ProjectRepository returns the project repository instance.
func (c *Container) ProjectRepository() (scopeUseCase.ProjectRepository, error) {
	c.projectRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["projectRepo"] = fmt.Errorf("failed to get database for project repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.projectRepo = scopeRepository.NewMySQLProjectRepository(db)
		case "postgres":
			c.projectRepo = scopeRepository.NewPostgreSQLProjectRepository(db)
		default:
			c.initErrors["projectRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["projectRepo"]; exists {
		return nil, err
	}
	return c.projectRepo, nil
}

// DomainUseCase returns the domain use case instance.
func (c *Container) DomainUseCase() (scopeUseCase.DomainUseCase, error) {
	c.domainUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["domainUseCase"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["domainUseCase"] = err
			return
		}
		projectRepo, err := c.ProjectRepository()
		if err != nil {
			c.initErrors["domainUseCase"] = err
			return
		}
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["domainUseCase"] = err
			return
		}
		principalCounter, err := c.principalCounter()
		if err != nil {
			c.initErrors["domainUseCase"] = err
			return
		}

		c.domainUseCase = scopeUseCase.NewDomainUseCase(txManager, domainRepo, projectRepo, assignmentRepo, principalCounter)
	})
	if err, exists := c.initErrors["domainUseCase"]; exists {
		return nil, err
	}
	return c.domainUseCase, nil
}

// ProjectUseCase returns the project use case instance.
func (c *Container) ProjectUseCase() (scopeUseCase.ProjectUseCase, error) {
	c.projectUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["projectUseCase"] = err
			return
		}
		domainRepo, err := c.DomainRepository()
		if err != nil {
			c.initErrors["projectUseCase"] = err
			return
		}
		projectRepo, err := c.ProjectRepository()
		if err != nil {
			c.initErrors["projectUseCase"] = err
			return
		}
		assignmentRepo, err := c.AssignmentRepository()
		if err != nil {
			c.initErrors["projectUseCase"] = err
			return
		}
		defaultProjectChecker, err := c.projectDefaultChecker()
		if err != nil {
			c.initErrors["projectUseCase"] = err
			return
		}

		c.projectUseCase = scopeUseCase.NewProjectUseCase(txManager, domainRepo, projectRepo, assignmentRepo, defaultProjectChecker)
	})
	if err, exists := c.initErrors["projectUseCase"]; exists {
		return nil, err
	}
	return c.projectUseCase, nil
}
