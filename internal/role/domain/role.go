// Package domain defines role and role-assignment models.
//
// A role is an opaque permission label with a globally unique name; what a
// role permits is decided by the resource managers that consume tokens. An
// assignment binds a principal (user or group) to a role at a scope (domain
// or project). Assignments on an ancestor scope are inherited by every
// descendant project.
package domain

import (
	"time"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// Role is a named permission bundle. Names are unique across the whole
// deployment, not per domain.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// Assignment binds a principal to a role at a scope. The (principal, scope,
// role) triple is unique; creating a duplicate is a no-op.
type Assignment struct {
	ID        uuid.UUID
	Principal principalDomain.PrincipalRef
	Scope     scopeDomain.ScopeRef
	RoleID    uuid.UUID
	CreatedAt time.Time
}

// AssignmentFilter narrows assignment listings. Nil fields match everything.
type AssignmentFilter struct {
	Principal *principalDomain.PrincipalRef
	Scope     *scopeDomain.ScopeRef
	RoleID    *uuid.UUID
}

// CreateRoleInput contains the parameters for creating a new role.
type CreateRoleInput struct {
	Name        string
	Description string
}

// UpdateRoleInput contains the mutable fields of a role. Renaming is allowed
// as long as the new name stays unique.
type UpdateRoleInput struct {
	Name        string
	Description string
}

// CreateAssignmentInput contains the parameters for creating an assignment.
type CreateAssignmentInput struct {
	Principal principalDomain.PrincipalRef
	Scope     scopeDomain.ScopeRef
	RoleID    uuid.UUID
}
