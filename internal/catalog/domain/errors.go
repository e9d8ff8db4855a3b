package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Catalog errors.
var (
	// ErrEndpointNotFound indicates an endpoint with the specified ID was not found.
	ErrEndpointNotFound = errors.Wrap(errors.ErrNotFound, "endpoint not found")

	// ErrDuplicateName indicates an endpoint name is already registered.
	ErrDuplicateName = errors.Wrap(errors.ErrConflict, "duplicate name")
)
