// Package usecase defines business logic interfaces for the scope hierarchy.
package usecase

import (
	"context"

	"github.com/google/uuid"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// DomainRepository defines persistence operations for domains.
// Implementations must support transaction-aware operations via context propagation.
type DomainRepository interface {
	// Create stores a new domain in the repository.
	Create(ctx context.Context, domain *scopeDomain.Domain) error

	// Update modifies an existing domain in the repository.
	Update(ctx context.Context, domain *scopeDomain.Domain) error

	// Get retrieves a domain by ID. Returns ErrDomainNotFound if not found.
	Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error)

	// GetByName retrieves a domain by its globally unique name.
	GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error)

	// List retrieves domains with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error)

	// Delete removes a domain. Returns ErrDomainNotFound if not found.
	Delete(ctx context.Context, domainID uuid.UUID) error
}

// ProjectRepository defines persistence operations for projects.
// Implementations must support transaction-aware operations via context propagation.
type ProjectRepository interface {
	// Create stores a new project in the repository.
	Create(ctx context.Context, project *scopeDomain.Project) error

	// Update modifies an existing project in the repository.
	Update(ctx context.Context, project *scopeDomain.Project) error

	// Get retrieves a project by ID. Returns ErrProjectNotFound if not found.
	Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error)

	// GetByName retrieves a project by name within its owning domain.
	GetByName(ctx context.Context, domainID uuid.UUID, name string) (*scopeDomain.Project, error)

	// List retrieves projects with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error)

	// CountByDomain returns the number of projects owned by the domain.
	CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error)

	// CountChildren returns the number of direct child projects.
	CountChildren(ctx context.Context, projectID uuid.UUID) (int, error)

	// Delete removes a project. Returns ErrProjectNotFound if not found.
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// AssignmentRemover removes role assignments bound to a scope. Implemented by
// the role-assignment store; scope deletion cascades through it so no
// assignment outlives its scope.
type AssignmentRemover interface {
	DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error
}

// DefaultProjectChecker reports how many users name a project as their
// default. Project deletion is blocked while the count is non-zero, since the
// user rows keep a reference to the project.
type DefaultProjectChecker interface {
	CountUsersByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error)
}

// PrincipalCounter reports how many users and groups a domain still owns.
// Domain deletion is blocked while either count is non-zero.
type PrincipalCounter interface {
	CountUsersByDomain(ctx context.Context, domainID uuid.UUID) (int, error)
	CountGroupsByDomain(ctx context.Context, domainID uuid.UUID) (int, error)
}

// DomainUseCase defines business logic operations for managing domains.
type DomainUseCase interface {
	// Create creates a new domain enforcing global name uniqueness.
	Create(ctx context.Context, input *scopeDomain.CreateDomainInput) (*scopeDomain.Domain, error)

	// Get retrieves a domain by ID. Disabled domains are still returned.
	Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error)

	// GetByName retrieves a domain by name.
	GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error)

	// List retrieves domains with pagination.
	List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error)

	// Update modifies a domain. Disabling a domain keeps it readable but
	// stops all token issuance and role resolution underneath it.
	Update(ctx context.Context, domainID uuid.UUID, input *scopeDomain.UpdateDomainInput) (*scopeDomain.Domain, error)

	// Delete removes a domain. Fails with ErrScopeInUse while the domain
	// still owns projects, users or groups; cascades removal of role
	// assignments bound to the domain scope.
	Delete(ctx context.Context, domainID uuid.UUID) error
}

// ProjectUseCase defines business logic operations for managing projects.
type ProjectUseCase interface {
	// Create creates a new project under a domain, optionally nested under a
	// parent project in the same domain.
	Create(ctx context.Context, input *scopeDomain.CreateProjectInput) (*scopeDomain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error)

	// List retrieves projects with pagination.
	List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error)

	// Update modifies a project's name, description and enabled flag.
	Update(ctx context.Context, projectID uuid.UUID, input *scopeDomain.UpdateProjectInput) (*scopeDomain.Project, error)

	// Delete removes a project. Fails with ErrScopeInUse if child projects
	// exist or users name the project as their default; cascades removal of
	// role assignments bound to the project scope.
	Delete(ctx context.Context, projectID uuid.UUID) error

	// Ancestors resolves the ordered ancestor chain of a scope, from the
	// scope itself up to and including its owning domain. For a domain scope
	// the chain is the domain alone.
	Ancestors(ctx context.Context, scope scopeDomain.ScopeRef) ([]scopeDomain.ScopeRef, error)
}
