package dto

import (
	"time"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// DomainResponse represents a domain in API responses.
type DomainResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapDomainToResponse converts a domain model to its API representation.
func MapDomainToResponse(domain *scopeDomain.Domain) DomainResponse {
	return DomainResponse{
		ID:          domain.ID.String(),
		Name:        domain.Name,
		Description: domain.Description,
		Enabled:     domain.Enabled,
		CreatedAt:   domain.CreatedAt,
	}
}

// ListDomainsResponse represents a paginated list of domains in API responses.
type ListDomainsResponse struct {
	Data []DomainResponse `json:"data"`
}

// MapDomainsToListResponse converts a slice of domains to a list response.
func MapDomainsToListResponse(domains []*scopeDomain.Domain) ListDomainsResponse {
	data := make([]DomainResponse, 0, len(domains))
	for _, domain := range domains {
		data = append(data, MapDomainToResponse(domain))
	}

	return ListDomainsResponse{
		Data: data,
	}
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	DomainID    string    `json:"domain_id"`
	ParentID    *string   `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapProjectToResponse converts a project model to its API representation.
func MapProjectToResponse(project *scopeDomain.Project) ProjectResponse {
	var parentID *string
	if project.ParentID != nil {
		id := project.ParentID.String()
		parentID = &id
	}

	return ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		Enabled:     project.Enabled,
		DomainID:    project.DomainID.String(),
		ParentID:    parentID,
		CreatedAt:   project.CreatedAt,
	}
}

// ListProjectsResponse represents a paginated list of projects in API responses.
type ListProjectsResponse struct {
	Data []ProjectResponse `json:"data"`
}

// MapProjectsToListResponse converts a slice of projects to a list response.
func MapProjectsToListResponse(projects []*scopeDomain.Project) ListProjectsResponse {
	data := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		data = append(data, MapProjectToResponse(project))
	}

	return ListProjectsResponse{
		Data: data,
	}
}
