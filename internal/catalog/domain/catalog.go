// Package domain defines the service catalog models.
//
// The catalog is a flat list of registered service endpoints handed to holders
// of a valid token. Endpoint URLs may embed a $(project_id)s placeholder that
// is filled with the token's project scope at read time.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Endpoint is a registered external service endpoint.
type Endpoint struct {
	ID        uuid.UUID
	Name      string // unique among endpoints
	Type      string // service family, e.g. "compute", "network"
	URL       string
	CreatedAt time.Time
}

// CreateEndpointInput contains the parameters for registering an endpoint.
type CreateEndpointInput struct {
	Name string
	Type string
	URL  string
}

// UpdateEndpointInput contains the mutable fields of an endpoint.
type UpdateEndpointInput struct {
	Name string
	Type string
	URL  string
}
