package app

import (
	"fmt"

	tokenRepository "github.com/allisson/identity/internal/token/repository"
	tokenService "github.com/allisson/identity/internal/token/service"
	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// TokenRepository returns the token repository instance.
func (c *Container) TokenRepository() (tokenUseCase.TokenRepository, error) {
	c.tokenRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["tokenRepo"] = fmt.Errorf("failed to get database for token repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.tokenRepo = tokenRepository.NewMySQLTokenRepository(db)
		case "postgres":
			c.tokenRepo = tokenRepository.NewPostgreSQLTokenRepository(db)
		default:
			c.initErrors["tokenRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["tokenRepo"]; exists {
		return nil, err
	}
	return c.tokenRepo, nil
}

// RevocationRepository returns the revocation watermark repository instance.
func (c *Container) RevocationRepository() (tokenUseCase.RevocationRepository, error) {
	c.revocationRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["revocationRepo"] = fmt.Errorf("failed to get database for revocation repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.revocationRepo = tokenRepository.NewMySQLRevocationRepository(db)
		case "postgres":
			c.revocationRepo = tokenRepository.NewPostgreSQLRevocationRepository(db)
		default:
			c.initErrors["revocationRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["revocationRepo"]; exists {
		return nil, err
	}
	return c.revocationRepo, nil
}

// TokenService returns the token generation service.
func (c *Container) TokenService() tokenService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenSvc = tokenService.NewTokenService()
	})
	return c.tokenSvc
}

// TokenUseCase returns the token use case instance, wrapped with metrics.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		tokenRepo, err := c.TokenRepository()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}
		revocationRepo, err := c.RevocationRepository()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}
		userUseCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}
		resolver, err := c.Resolver()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
			return
		}

		useCase := tokenUseCase.NewTokenUseCase(
			c.config,
			tokenRepo,
			revocationRepo,
			userUseCase,
			resolver,
			c.TokenService(),
		)
		c.tokenUC = tokenUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	})
	if err, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, err
	}
	return c.tokenUC, nil
}
