package app

import (
	catalogHTTP "github.com/allisson/identity/internal/catalog/http"
	"github.com/allisson/identity/internal/http"
	principalHTTP "github.com/allisson/identity/internal/principal/http"
	roleHTTP "github.com/allisson/identity/internal/role/http"
	scopeHTTP "github.com/allisson/identity/internal/scope/http"
	tokenHTTP "github.com/allisson/identity/internal/token/http"
)

// HTTPServer returns the API HTTP server with all routes registered.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		logger := c.Logger()

		db, err := c.DB()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		domainUseCase, err := c.DomainUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		projectUseCase, err := c.ProjectUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		userUseCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		groupUseCase, err := c.GroupUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		roleUC, err := c.RoleUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		assignmentUseCase, err := c.AssignmentUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		resolver, err := c.Resolver()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		catalogUC, err := c.CatalogUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		tokenUC, err := c.TokenUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
		server.SetupRouter(&http.RouterConfig{
			Config:            c.config,
			MetricsProvider:   metricsProvider,
			TokenUseCase:      tokenUC,
			TokenHandler:      tokenHTTP.NewTokenHandler(tokenUC, catalogUC, logger),
			DomainHandler:     scopeHTTP.NewDomainHandler(domainUseCase, logger),
			ProjectHandler:    scopeHTTP.NewProjectHandler(projectUseCase, logger),
			UserHandler:       principalHTTP.NewUserHandler(userUseCase, logger),
			GroupHandler:      principalHTTP.NewGroupHandler(groupUseCase, logger),
			RoleHandler:       roleHTTP.NewRoleHandler(roleUC, logger),
			AssignmentHandler: roleHTTP.NewAssignmentHandler(assignmentUseCase, resolver, logger),
			EndpointHandler:   catalogHTTP.NewEndpointHandler(catalogUC, logger),
			CatalogHandler:    catalogHTTP.NewCatalogHandler(catalogUC, logger),
		})

		c.httpServer = server
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}

		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}
