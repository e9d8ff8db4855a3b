package dto

import (
	"time"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
)

// EndpointResponse represents an endpoint in API responses.
type EndpointResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// MapEndpointToResponse converts an endpoint model to its API representation.
func MapEndpointToResponse(endpoint *catalogDomain.Endpoint) EndpointResponse {
	return EndpointResponse{
		ID:        endpoint.ID.String(),
		Name:      endpoint.Name,
		Type:      endpoint.Type,
		URL:       endpoint.URL,
		CreatedAt: endpoint.CreatedAt,
	}
}

// ListEndpointsResponse represents the full endpoint list in API responses.
type ListEndpointsResponse struct {
	Data []EndpointResponse `json:"data"`
}

// MapEndpointsToListResponse converts a slice of endpoints to a list response.
func MapEndpointsToListResponse(endpoints []*catalogDomain.Endpoint) ListEndpointsResponse {
	data := make([]EndpointResponse, 0, len(endpoints))
	for _, endpoint := range endpoints {
		data = append(data, MapEndpointToResponse(endpoint))
	}

	return ListEndpointsResponse{
		Data: data,
	}
}
