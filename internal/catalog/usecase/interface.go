// Package usecase implements business logic for the service catalog.
package usecase

import (
	"context"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// EndpointRepository defines persistence operations for catalog endpoints.
type EndpointRepository interface {
	// Create stores a new endpoint in the repository.
	Create(ctx context.Context, endpoint *catalogDomain.Endpoint) error

	// Update modifies an existing endpoint.
	Update(ctx context.Context, endpoint *catalogDomain.Endpoint) error

	// Get retrieves an endpoint by ID. Returns ErrEndpointNotFound if not found.
	Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error)

	// GetByName retrieves an endpoint by its unique name.
	GetByName(ctx context.Context, name string) (*catalogDomain.Endpoint, error)

	// List retrieves all endpoints ordered by type then name.
	List(ctx context.Context) ([]*catalogDomain.Endpoint, error)

	// Delete removes an endpoint. Returns ErrEndpointNotFound if not found.
	Delete(ctx context.Context, endpointID uuid.UUID) error
}

// CatalogUseCase defines business logic operations for the service catalog.
type CatalogUseCase interface {
	// Create registers a new endpoint enforcing name uniqueness.
	Create(ctx context.Context, input *catalogDomain.CreateEndpointInput) (*catalogDomain.Endpoint, error)

	// Get retrieves an endpoint by ID.
	Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error)

	// Update modifies an endpoint.
	Update(ctx context.Context, endpointID uuid.UUID, input *catalogDomain.UpdateEndpointInput) (*catalogDomain.Endpoint, error)

	// Delete removes an endpoint.
	Delete(ctx context.Context, endpointID uuid.UUID) error

	// List returns the catalog for a token's scope. Project-scoped reads fill
	// the $(project_id)s URL placeholder; otherwise the placeholder stays as is.
	List(ctx context.Context, scope *scopeDomain.ScopeRef) ([]*catalogDomain.Endpoint, error)
}
