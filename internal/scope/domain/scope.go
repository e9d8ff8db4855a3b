// Package domain defines the scope hierarchy models: domains and projects.
//
// A domain is a top-level scope container. Projects belong to exactly one
// domain and may nest under a parent project in the same domain; the parent
// chain is acyclic and terminates at a project with a nil parent. Role
// assignments made on an ancestor scope are inherited by every descendant
// project, so the ancestor chain ordering matters to the authorization
// resolver.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScopeKind discriminates the scope variant carried by a ScopeRef.
type ScopeKind string

const (
	// ScopeKindDomain identifies a domain scope.
	ScopeKindDomain ScopeKind = "domain"
	// ScopeKindProject identifies a project scope.
	ScopeKindProject ScopeKind = "project"
)

// ScopeRef is a tagged reference to a domain or project. Assignments and
// tokens carry ScopeRefs instead of polymorphic scope types so stores and the
// resolver operate on explicit discriminated cases.
type ScopeRef struct {
	Kind ScopeKind
	ID   uuid.UUID
}

// DomainRef builds a ScopeRef for a domain.
func DomainRef(id uuid.UUID) ScopeRef {
	return ScopeRef{Kind: ScopeKindDomain, ID: id}
}

// ProjectRef builds a ScopeRef for a project.
func ProjectRef(id uuid.UUID) ScopeRef {
	return ScopeRef{Kind: ScopeKindProject, ID: id}
}

// Domain is a top-level scope container. Disabling a domain does not delete
// it: lookups still return the row, but token issuance and role resolution
// for the domain and everything under it fail closed.
type Domain struct {
	ID          uuid.UUID
	Name        string // unique among domains
	Description string
	Enabled     bool
	CreatedAt   time.Time
}

// Project is a scope for resource ownership. ParentID is nil for top-level
// projects; when set, the parent must live in the same domain.
type Project struct {
	ID          uuid.UUID
	Name        string // unique within the owning domain
	Description string
	Enabled     bool
	DomainID    uuid.UUID
	ParentID    *uuid.UUID
	CreatedAt   time.Time
}

// CreateDomainInput contains the parameters for creating a new domain.
type CreateDomainInput struct {
	Name        string
	Description string
	Enabled     bool
}

// UpdateDomainInput contains the mutable fields of a domain.
type UpdateDomainInput struct {
	Name        string
	Description string
	Enabled     bool
}

// CreateProjectInput contains the parameters for creating a new project.
// When ParentID is set the project nests under that parent and inherits its
// domain; DomainID must still match the parent's domain.
type CreateProjectInput struct {
	Name        string
	Description string
	Enabled     bool
	DomainID    uuid.UUID
	ParentID    *uuid.UUID
}

// UpdateProjectInput contains the mutable fields of a project. The owning
// domain and parent are fixed at creation time.
type UpdateProjectInput struct {
	Name        string
	Description string
	Enabled     bool
}
