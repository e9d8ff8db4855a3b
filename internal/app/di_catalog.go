package app

import (
	"fmt"

	catalogRepository "github.com/allisson/identity/internal/catalog/repository"
	catalogUseCase "github.com/allisson/identity/internal/catalog/usecase"
)

// EndpointRepository returns the catalog endpoint repository instance.
func (c *Container) EndpointRepository() (catalogUseCase.EndpointRepository, error) {
	c.endpointRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["endpointRepo"] = fmt.Errorf("failed to get database for endpoint repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.endpointRepo = catalogRepository.NewMySQLEndpointRepository(db)
		case "postgres":
			c.endpointRepo = catalogRepository.NewPostgreSQLEndpointRepository(db)
		default:
			c.initErrors["endpointRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["endpointRepo"]; exists {
		return nil, err
	}
	return c.endpointRepo, nil
}

// CatalogUseCase returns the catalog use case instance.
func (c *Container) CatalogUseCase() (catalogUseCase.CatalogUseCase, error) {
	c.catalogUseCaseInit.Do(func() {
		endpointRepo, err := c.EndpointRepository()
		if err != nil {
			c.initErrors["catalogUseCase"] = err
			return
		}

		c.catalogUC = catalogUseCase.NewCatalogUseCase(endpointRepo)
	})
	if err, exists := c.initErrors["catalogUseCase"]; exists {
		return nil, err
	}
	return c.catalogUC, nil
}
