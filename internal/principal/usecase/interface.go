// Package usecase defines business logic interfaces for principals.
package usecase

import (
	"context"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// UserRepository defines persistence operations for users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user in the repository.
	Create(ctx context.Context, user *principalDomain.User) error

	// Update modifies an existing user. Password changes go through UpdatePassword.
	Update(ctx context.Context, user *principalDomain.User) error

	// UpdatePassword replaces a user's stored password hash.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// Get retrieves a user by ID. Returns ErrUserNotFound if not found.
	Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error)

	// GetByName retrieves a user by name within its owning domain.
	GetByName(ctx context.Context, domainID uuid.UUID, name string) (*principalDomain.User, error)

	// List retrieves users with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error)

	// CountByDomain returns the number of users owned by the domain.
	CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error)

	// CountByDefaultProject returns the number of users naming the project as
	// their default.
	CountByDefaultProject(ctx context.Context, projectID uuid.UUID) (int, error)

	// Delete removes a user. Returns ErrUserNotFound if not found.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// GroupRepository defines persistence operations for groups and membership edges.
type GroupRepository interface {
	// Create stores a new group in the repository.
	Create(ctx context.Context, group *principalDomain.Group) error

	// Update modifies an existing group.
	Update(ctx context.Context, group *principalDomain.Group) error

	// Get retrieves a group by ID. Returns ErrGroupNotFound if not found.
	Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error)

	// GetByName retrieves a group by name within its owning domain.
	GetByName(ctx context.Context, domainID uuid.UUID, name string) (*principalDomain.Group, error)

	// List retrieves groups with offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error)

	// CountByDomain returns the number of groups owned by the domain.
	CountByDomain(ctx context.Context, domainID uuid.UUID) (int, error)

	// Delete removes a group. Returns ErrGroupNotFound if not found.
	Delete(ctx context.Context, groupID uuid.UUID) error

	// AddMember adds a user to a group. Idempotent.
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error

	// RemoveMember removes a user from a group. Idempotent.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error

	// ListMembers retrieves the users belonging to a group.
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error)

	// ListGroupsForUser retrieves the groups a user belongs to.
	ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error)

	// DeleteMembersByGroup removes all membership edges of a group.
	DeleteMembersByGroup(ctx context.Context, groupID uuid.UUID) error

	// DeleteMembersByUser removes all membership edges of a user.
	DeleteMembersByUser(ctx context.Context, userID uuid.UUID) error
}

// DomainReader reads domains from the scope store. Credential verification
// checks the owning domain's enabled flag through it.
type DomainReader interface {
	Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error)
}

// ProjectReader reads projects from the scope store. Used to validate that a
// user's default project lives in the user's own domain.
type ProjectReader interface {
	Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error)
}

// AssignmentRemover removes role assignments bound to a principal. Implemented
// by the role-assignment store; user and group deletion cascade through it.
type AssignmentRemover interface {
	DeleteByPrincipal(ctx context.Context, principal principalDomain.PrincipalRef) error
}

// TokenRevoker invalidates a user's tokens in the token store. Password
// changes and account disables move the revocation watermark; user deletion
// purges the token and watermark rows so nothing references the user row.
type TokenRevoker interface {
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	PurgeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// UserUseCase defines business logic operations for managing users.
type UserUseCase interface {
	// Create creates a new user with a hashed password. Name uniqueness is
	// enforced per domain; the default project, if set, must belong to the
	// user's domain.
	Create(ctx context.Context, input *principalDomain.CreateUserInput) (*principalDomain.User, error)

	// Get retrieves a user by ID.
	Get(ctx context.Context, userID uuid.UUID) (*principalDomain.User, error)

	// GetByName retrieves a user by name within a domain.
	GetByName(ctx context.Context, domainID uuid.UUID, name string) (*principalDomain.User, error)

	// List retrieves users with pagination.
	List(ctx context.Context, offset, limit int) ([]*principalDomain.User, error)

	// Update modifies a user. Disabling a user bulk-revokes all of their tokens.
	Update(ctx context.Context, userID uuid.UUID, input *principalDomain.UpdateUserInput) (*principalDomain.User, error)

	// ChangePassword replaces the user's password and bulk-revokes all of
	// their tokens in the same transaction.
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error

	// Delete removes a user, cascading removal of role assignments, group
	// memberships and issued tokens.
	Delete(ctx context.Context, userID uuid.UUID) error

	// VerifyCredential checks a presented password against the stored hash.
	// Returns CredentialInvalid for unknown users and wrong passwords alike,
	// and CredentialPrincipalDisabled when the password matched but the user
	// or its owning domain is disabled.
	VerifyCredential(ctx context.Context, domainID uuid.UUID, name, password string) (principalDomain.CredentialStatus, *principalDomain.User, error)
}

// GroupUseCase defines business logic operations for managing groups.
type GroupUseCase interface {
	// Create creates a new group. Name uniqueness is enforced per domain.
	Create(ctx context.Context, input *principalDomain.CreateGroupInput) (*principalDomain.Group, error)

	// Get retrieves a group by ID.
	Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error)

	// List retrieves groups with pagination.
	List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error)

	// Update modifies a group's name and description.
	Update(ctx context.Context, groupID uuid.UUID, input *principalDomain.UpdateGroupInput) (*principalDomain.Group, error)

	// Delete removes a group, cascading removal of role assignments and
	// membership edges.
	Delete(ctx context.Context, groupID uuid.UUID) error

	// AddMember adds a user to a group in the same domain. Idempotent.
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error

	// RemoveMember removes a user from a group. Idempotent.
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error

	// ListMembers retrieves the users belonging to a group.
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error)

	// ListGroupsForUser retrieves the groups a user belongs to.
	ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error)
}
