package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Scope hierarchy errors.
var (
	// ErrDomainNotFound indicates a domain with the specified ID was not found.
	ErrDomainNotFound = errors.Wrap(errors.ErrNotFound, "domain not found")

	// ErrProjectNotFound indicates a project with the specified ID was not found.
	ErrProjectNotFound = errors.Wrap(errors.ErrNotFound, "project not found")

	// ErrScopeNotFound indicates a supplied scope reference does not resolve
	// to an existing domain or project.
	ErrScopeNotFound = errors.Wrap(errors.ErrNotFound, "scope not found")

	// ErrScopeDisabled indicates the scope exists but is disabled, so it
	// cannot authorize anything.
	ErrScopeDisabled = errors.Wrap(errors.ErrForbidden, "scope disabled")

	// ErrScopeInUse indicates a delete was blocked because the scope still
	// has child projects or owned principals.
	ErrScopeInUse = errors.Wrap(errors.ErrConflict, "scope in use")

	// ErrDuplicateName indicates a name-uniqueness violation within the
	// relevant namespace (domain names globally, project names per domain).
	ErrDuplicateName = errors.Wrap(errors.ErrConflict, "duplicate name")

	// ErrCrossDomainParent indicates a project parent living in a different
	// domain than the project being created.
	ErrCrossDomainParent = errors.Wrap(errors.ErrInvalidInput, "parent project belongs to a different domain")

	// ErrParentChainBroken indicates the ancestor walk hit a missing parent
	// or exceeded the maximum supported depth (a cycle in stored data).
	ErrParentChainBroken = errors.Wrap(errors.ErrInvalidInput, "project parent chain is broken")
)
