package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Role and assignment errors.
var (
	// ErrRoleNotFound indicates a role with the specified ID was not found.
	ErrRoleNotFound = errors.Wrap(errors.ErrNotFound, "role not found")

	// ErrAssignmentNotFound indicates no assignment matched the
	// (principal, scope, role) triple.
	ErrAssignmentNotFound = errors.Wrap(errors.ErrNotFound, "assignment not found")

	// ErrDuplicateName indicates a role-name uniqueness violation. Role names
	// are global.
	ErrDuplicateName = errors.Wrap(errors.ErrConflict, "duplicate name")
)
