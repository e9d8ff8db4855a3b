// Package domain defines the principal models: users, groups and membership.
//
// A principal is the subject of role assignments: a user authenticates with a
// password, a group collects users so roles can be granted once for the whole
// set. Both belong to exactly one domain; membership edges never cross domain
// boundaries.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalKind discriminates the principal variant carried by a PrincipalRef.
type PrincipalKind string

const (
	// PrincipalKindUser identifies a user principal.
	PrincipalKindUser PrincipalKind = "user"
	// PrincipalKindGroup identifies a group principal.
	PrincipalKindGroup PrincipalKind = "group"
)

// PrincipalRef is a tagged reference to a user or group. Role assignments
// carry PrincipalRefs so the store and resolver operate on explicit
// discriminated cases instead of polymorphic principal types.
type PrincipalRef struct {
	Kind PrincipalKind
	ID   uuid.UUID
}

// UserRef builds a PrincipalRef for a user.
func UserRef(id uuid.UUID) PrincipalRef {
	return PrincipalRef{Kind: PrincipalKindUser, ID: id}
}

// GroupRef builds a PrincipalRef for a group.
func GroupRef(id uuid.UUID) PrincipalRef {
	return PrincipalRef{Kind: PrincipalKindGroup, ID: id}
}

// CredentialStatus is the tri-state outcome of credential verification.
// Disabled principals fail closed even when the presented password is correct.
type CredentialStatus int

const (
	// CredentialInvalid means the password did not match or the user is unknown.
	CredentialInvalid CredentialStatus = iota
	// CredentialValid means the password matched an enabled user.
	CredentialValid
	// CredentialPrincipalDisabled means the password matched but the user or
	// its owning domain is disabled.
	CredentialPrincipalDisabled
)

// User is a principal with authentication credentials. PasswordHash holds the
// Argon2id-encoded secret; the plaintext password is never stored.
// DefaultProjectID, when set, must reference a project in the same domain.
type User struct {
	ID               uuid.UUID
	Name             string // unique within the owning domain
	Description      string
	Enabled          bool
	DomainID         uuid.UUID
	DefaultProjectID *uuid.UUID
	PasswordHash     string
	CreatedAt        time.Time
}

// Group collects users within a single domain so role assignments can target
// the whole set at once.
type Group struct {
	ID          uuid.UUID
	Name        string // unique within the owning domain
	Description string
	DomainID    uuid.UUID
	CreatedAt   time.Time
}

// CreateUserInput contains the parameters for creating a new user.
type CreateUserInput struct {
	Name             string
	Description      string
	Enabled          bool
	DomainID         uuid.UUID
	DefaultProjectID *uuid.UUID
	Password         string
}

// UpdateUserInput contains the mutable fields of a user. The owning domain is
// fixed at creation time; password changes go through ChangePassword.
type UpdateUserInput struct {
	Name             string
	Description      string
	Enabled          bool
	DefaultProjectID *uuid.UUID
}

// CreateGroupInput contains the parameters for creating a new group.
type CreateGroupInput struct {
	Name        string
	Description string
	DomainID    uuid.UUID
}

// UpdateGroupInput contains the mutable fields of a group.
type UpdateGroupInput struct {
	Name        string
	Description string
}
