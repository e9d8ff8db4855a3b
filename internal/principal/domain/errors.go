package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Principal errors.
var (
	// ErrUserNotFound indicates a user with the specified ID was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrGroupNotFound indicates a group with the specified ID was not found.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "group not found")

	// ErrPrincipalNotFound indicates a supplied principal reference does not
	// resolve to an existing user or group.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrNotFound, "principal not found")

	// ErrDuplicateName indicates a name-uniqueness violation within the owning
	// domain (user and group names are unique per domain).
	ErrDuplicateName = errors.Wrap(errors.ErrConflict, "duplicate name")

	// ErrAuthenticationFailed is the single public signal for both "user does
	// not exist" and "password wrong". The two cases stay collapsed so callers
	// cannot enumerate principals.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrPrincipalDisabled indicates the password was correct but the user or
	// its owning domain is disabled.
	ErrPrincipalDisabled = errors.Wrap(errors.ErrForbidden, "principal disabled")

	// ErrCrossDomainMembership indicates an attempt to add a user to a group
	// in a different domain.
	ErrCrossDomainMembership = errors.Wrap(errors.ErrInvalidInput, "user and group belong to different domains")

	// ErrCrossDomainDefaultProject indicates a user's default project living
	// in a different domain than the user.
	ErrCrossDomainDefaultProject = errors.Wrap(errors.ErrInvalidInput, "default project belongs to a different domain")
)
