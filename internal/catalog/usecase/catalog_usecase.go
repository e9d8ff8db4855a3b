package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// projectIDPlaceholder is the URL placeholder filled with the scoped project
// id when a project-scoped caller reads the catalog.
const projectIDPlaceholder = "$(project_id)s"

// catalogUseCase implements CatalogUseCase.
type catalogUseCase struct {
	endpointRepo EndpointRepository
}

// Create registers a new endpoint. Endpoint names are unique.
func (c *catalogUseCase) Create(
	ctx context.Context,
	input *catalogDomain.CreateEndpointInput,
) (*catalogDomain.Endpoint, error) {
	if _, err := c.endpointRepo.GetByName(ctx, input.Name); err == nil {
		return nil, catalogDomain.ErrDuplicateName
	} else if !errors.Is(err, catalogDomain.ErrEndpointNotFound) {
		return nil, err
	}

	endpoint := &catalogDomain.Endpoint{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Type:      input.Type,
		URL:       input.URL,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.endpointRepo.Create(ctx, endpoint); err != nil {
		return nil, err
	}

	return endpoint, nil
}

// Get retrieves an endpoint by ID.
func (c *catalogUseCase) Get(ctx context.Context, endpointID uuid.UUID) (*catalogDomain.Endpoint, error) {
	return c.endpointRepo.Get(ctx, endpointID)
}

// Update modifies an endpoint. Renaming keeps the uniqueness invariant.
func (c *catalogUseCase) Update(
	ctx context.Context,
	endpointID uuid.UUID,
	input *catalogDomain.UpdateEndpointInput,
) (*catalogDomain.Endpoint, error) {
	endpoint, err := c.endpointRepo.Get(ctx, endpointID)
	if err != nil {
		return nil, err
	}

	if input.Name != endpoint.Name {
		if existing, err := c.endpointRepo.GetByName(ctx, input.Name); err == nil && existing.ID != endpointID {
			return nil, catalogDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, catalogDomain.ErrEndpointNotFound) {
			return nil, err
		}
	}

	endpoint.Name = input.Name
	endpoint.Type = input.Type
	endpoint.URL = input.URL

	if err := c.endpointRepo.Update(ctx, endpoint); err != nil {
		return nil, err
	}

	return endpoint, nil
}

// Delete removes an endpoint.
func (c *catalogUseCase) Delete(ctx context.Context, endpointID uuid.UUID) error {
	return c.endpointRepo.Delete(ctx, endpointID)
}

// List returns the catalog templated for the given scope. The stored rows are
// never mutated; templated copies are returned.
func (c *catalogUseCase) List(
	ctx context.Context,
	scope *scopeDomain.ScopeRef,
) ([]*catalogDomain.Endpoint, error) {
	endpoints, err := c.endpointRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if scope == nil || scope.Kind != scopeDomain.ScopeKindProject {
		return endpoints, nil
	}

	projectID := scope.ID.String()
	templated := make([]*catalogDomain.Endpoint, 0, len(endpoints))
	for _, endpoint := range endpoints {
		e := *endpoint
		e.URL = strings.ReplaceAll(e.URL, projectIDPlaceholder, projectID)
		templated = append(templated, &e)
	}

	return templated, nil
}

// NewCatalogUseCase creates a new CatalogUseCase with the provided dependencies.
func NewCatalogUseCase(endpointRepo EndpointRepository) CatalogUseCase {
	return &catalogUseCase{endpointRepo: endpointRepo}
}
