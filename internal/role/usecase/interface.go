// Package usecase defines business logic interfaces for roles, assignments
// and effective-role resolution.
package usecase

import (
	"context"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	// Create stores a new role in the repository.
	Create(ctx context.Context, role *roleDomain.Role) error

	// Update modifies an existing role.
	Update(ctx context.Context, role *roleDomain.Role) error

	// Get retrieves a role by ID. Returns ErrRoleNotFound if not found.
	Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error)

	// GetByName retrieves a role by its globally unique name.
	GetByName(ctx context.Context, name string) (*roleDomain.Role, error)

	// GetMany retrieves the roles matching the given IDs.
	GetMany(ctx context.Context, roleIDs []uuid.UUID) ([]*roleDomain.Role, error)

	// List retrieves roles with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error)

	// Delete removes a role. Returns ErrRoleNotFound if not found.
	Delete(ctx context.Context, roleID uuid.UUID) error
}

// AssignmentRepository defines persistence operations for role assignments.
type AssignmentRepository interface {
	// Create stores an assignment. Duplicate triples are a no-op.
	Create(ctx context.Context, assignment *roleDomain.Assignment) error

	// Delete removes the assignment matching the (principal, scope, role) triple.
	Delete(ctx context.Context, principal principalDomain.PrincipalRef, scope scopeDomain.ScopeRef, roleID uuid.UUID) error

	// DeleteByScope removes all assignments bound to a scope.
	DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error

	// DeleteByPrincipal removes all assignments bound to a principal.
	DeleteByPrincipal(ctx context.Context, principal principalDomain.PrincipalRef) error

	// DeleteByRole removes all assignments of a role.
	DeleteByRole(ctx context.Context, roleID uuid.UUID) error

	// List retrieves assignments matching the filter with pagination.
	List(ctx context.Context, filter *roleDomain.AssignmentFilter, offset, limit int) ([]*roleDomain.Assignment, error)

	// ListByPrincipalsAndScopes retrieves assignments whose principal and
	// scope are both in the given sets.
	ListByPrincipalsAndScopes(ctx context.Context, principals []principalDomain.PrincipalRef, scopes []scopeDomain.ScopeRef) ([]*roleDomain.Assignment, error)
}

// AncestorResolver resolves the ordered ancestor chain of a scope, from the
// scope itself up to and including its owning domain.
type AncestorResolver interface {
	Ancestors(ctx context.Context, scope scopeDomain.ScopeRef) ([]scopeDomain.ScopeRef, error)
}

// DomainReader reads domains from the scope store for enabled checks.
type DomainReader interface {
	Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error)
}

// ProjectReader reads projects from the scope store for enabled checks.
type ProjectReader interface {
	Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error)
}

// UserReader reads users from the principal store.
type UserReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error)
}

// GroupReader reads groups and membership from the principal store.
type GroupReader interface {
	Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error)
	ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error)
}

// RoleUseCase defines business logic operations for managing roles.
type RoleUseCase interface {
	// Create creates a new role enforcing global name uniqueness.
	Create(ctx context.Context, input *roleDomain.CreateRoleInput) (*roleDomain.Role, error)

	// Get retrieves a role by ID.
	Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error)

	// GetByName retrieves a role by name.
	GetByName(ctx context.Context, name string) (*roleDomain.Role, error)

	// List retrieves roles with pagination.
	List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error)

	// Update modifies a role. Renaming enforces name uniqueness.
	Update(ctx context.Context, roleID uuid.UUID, input *roleDomain.UpdateRoleInput) (*roleDomain.Role, error)

	// Delete removes a role and cascades removal of its assignments. A role
	// in use may be deleted; its assignments go with it.
	Delete(ctx context.Context, roleID uuid.UUID) error
}

// AssignmentUseCase defines business logic operations for role assignments.
type AssignmentUseCase interface {
	// Create creates an assignment after validating that the principal,
	// scope and role all exist. Duplicate triples are a no-op.
	Create(ctx context.Context, input *roleDomain.CreateAssignmentInput) error

	// Delete removes the assignment matching the (principal, scope, role) triple.
	Delete(ctx context.Context, principal principalDomain.PrincipalRef, scope scopeDomain.ScopeRef, roleID uuid.UUID) error

	// List retrieves assignments matching the filter with pagination.
	List(ctx context.Context, filter *roleDomain.AssignmentFilter, offset, limit int) ([]*roleDomain.Assignment, error)
}

// Resolver computes the effective roles a principal holds in a scope,
// accounting for group membership and scope inheritance.
type Resolver interface {
	// EffectiveRoles returns the union of roles the principal holds at the
	// scope and every ancestor scope, directly or via group membership.
	// Returns an empty set when the target scope, its owning domain or the
	// principal is disabled.
	EffectiveRoles(ctx context.Context, principal principalDomain.PrincipalRef, scope scopeDomain.ScopeRef) ([]*roleDomain.Role, error)
}
