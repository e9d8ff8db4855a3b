package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/allisson/identity/internal/errors"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	principalUseCase "github.com/allisson/identity/internal/principal/usecase"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	roleUseCase "github.com/allisson/identity/internal/role/usecase"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	scopeUseCase "github.com/allisson/identity/internal/scope/usecase"
)

// BootstrapParams groups the bootstrap command inputs.
type BootstrapParams struct {
	DomainName    string
	ProjectName   string
	AdminName     string
	AdminPassword string
	RoleName      string
	Format        string
}

// BootstrapDeps groups the use cases the bootstrap command drives.
type BootstrapDeps struct {
	DomainUseCase     scopeUseCase.DomainUseCase
	ProjectUseCase    scopeUseCase.ProjectUseCase
	UserUseCase       principalUseCase.UserUseCase
	RoleUseCase       roleUseCase.RoleUseCase
	AssignmentUseCase roleUseCase.AssignmentUseCase
}

// defaultRoleNames are always seeded so fresh deployments have the
// conventional role set available for assignments.
var defaultRoleNames = []string{"admin", "member", "reader"}

// bootstrapResult carries the IDs of everything the bootstrap created.
type bootstrapResult struct {
	DomainID  string `json:"domain_id"`
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	RoleID    string `json:"role_id"`
}

// RunBootstrap seeds an empty deployment with a bootstrap domain, a project,
// an admin role and an admin user holding that role on the domain. Everything
// goes through the ordinary use cases, so all invariants apply. The command is
// idempotent: pieces that already exist are reused.
func RunBootstrap(
	ctx context.Context,
	deps BootstrapDeps,
	logger *slog.Logger,
	out io.Writer,
	params BootstrapParams,
) error {
	if params.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}

	logger.Info("bootstrapping deployment",
		slog.String("domain", params.DomainName),
		slog.String("admin", params.AdminName),
	)

	domain, err := deps.DomainUseCase.GetByName(ctx, params.DomainName)
	if errors.Is(err, scopeDomain.ErrDomainNotFound) {
		domain, err = deps.DomainUseCase.Create(ctx, &scopeDomain.CreateDomainInput{
			Name:    params.DomainName,
			Enabled: true,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to bootstrap domain: %w", err)
	}

	project, err := deps.ProjectUseCase.Create(ctx, &scopeDomain.CreateProjectInput{
		Name:     params.ProjectName,
		Enabled:  true,
		DomainID: domain.ID,
	})
	if apperrors.Is(err, apperrors.ErrConflict) {
		project, err = findProjectByName(ctx, deps.ProjectUseCase, domain.ID, params.ProjectName)
	}
	if err != nil {
		return fmt.Errorf("failed to bootstrap project: %w", err)
	}

	role, err := ensureRole(ctx, deps.RoleUseCase, params.RoleName)
	if err != nil {
		return fmt.Errorf("failed to bootstrap role: %w", err)
	}

	for _, name := range defaultRoleNames {
		if name == params.RoleName {
			continue
		}
		if _, err := ensureRole(ctx, deps.RoleUseCase, name); err != nil {
			return fmt.Errorf("failed to bootstrap role %q: %w", name, err)
		}
	}

	user, err := deps.UserUseCase.GetByName(ctx, domain.ID, params.AdminName)
	if errors.Is(err, principalDomain.ErrUserNotFound) {
		user, err = deps.UserUseCase.Create(ctx, &principalDomain.CreateUserInput{
			Name:             params.AdminName,
			Enabled:          true,
			DomainID:         domain.ID,
			DefaultProjectID: &project.ID,
			Password:         params.AdminPassword,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	// Assignment create is idempotent, so re-running is safe.
	err = deps.AssignmentUseCase.Create(ctx, &roleDomain.CreateAssignmentInput{
		Principal: principalDomain.UserRef(user.ID),
		Scope:     scopeDomain.DomainRef(domain.ID),
		RoleID:    role.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap role assignment: %w", err)
	}

	return outputBootstrap(out, logger, domain, project, user, role, params.Format)
}

// ensureRole fetches a role by name, creating it when missing.
func ensureRole(ctx context.Context, useCase roleUseCase.RoleUseCase, name string) (*roleDomain.Role, error) {
	role, err := useCase.GetByName(ctx, name)
	if errors.Is(err, roleDomain.ErrRoleNotFound) {
		return useCase.Create(ctx, &roleDomain.CreateRoleInput{Name: name})
	}
	return role, err
}

// findProjectByName pages through projects to locate one by name within a
// domain. Used on bootstrap re-runs, where the create hits the duplicate
// name guard.
func findProjectByName(
	ctx context.Context,
	projectUseCase scopeUseCase.ProjectUseCase,
	domainID uuid.UUID,
	name string,
) (*scopeDomain.Project, error) {
	const pageSize = 100

	for offset := 0; ; offset += pageSize {
		projects, err := projectUseCase.List(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}
		for _, project := range projects {
			if project.DomainID == domainID && project.Name == name {
				return project, nil
			}
		}
		if len(projects) < pageSize {
			return nil, scopeDomain.ErrProjectNotFound
		}
	}
}

// outputBootstrap renders the bootstrap result in text or JSON format.
func outputBootstrap(
	out io.Writer,
	logger *slog.Logger,
	domain *scopeDomain.Domain,
	project *scopeDomain.Project,
	user *principalDomain.User,
	role *roleDomain.Role,
	format string,
) error {
	result := bootstrapResult{
		DomainID:  domain.ID.String(),
		ProjectID: project.ID.String(),
		UserID:    user.ID.String(),
		RoleID:    role.ID.String(),
	}

	if format == "json" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(jsonBytes))
	} else {
		_, _ = fmt.Fprintln(out, "Bootstrap completed successfully!")
		_, _ = fmt.Fprintf(out, "Domain ID: %s\n", result.DomainID)
		_, _ = fmt.Fprintf(out, "Project ID: %s\n", result.ProjectID)
		_, _ = fmt.Fprintf(out, "Admin User ID: %s\n", result.UserID)
		_, _ = fmt.Fprintf(out, "Role ID: %s\n", result.RoleID)
	}

	logger.Info("bootstrap completed",
		slog.String("domain_id", result.DomainID),
		slog.String("user_id", result.UserID),
	)

	return nil
}
