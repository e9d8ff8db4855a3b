package dto

import (
	"time"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// ScopeResponse represents a token's scope binding in API responses.
type ScopeResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// EndpointResponse represents a catalog endpoint in API responses.
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

// TokenResponse represents an issued or validated token in API responses. The
// token secret itself travels in the X-Subject-Token header, never in the body.
type TokenResponse struct {
	UserID    string             `json:"user_id"`
	Scope     *ScopeResponse     `json:"scope"`
	Roles     []string           `json:"roles"`
	IssuedAt  time.Time          `json:"issued_at"`
	ExpiresAt time.Time          `json:"expires_at"`
	Catalog   []EndpointResponse `json:"catalog"`
}

// MapTokenToResponse converts a token model and its catalog view to the API
// representation.
func MapTokenToResponse(token *tokenDomain.Token, endpoints []*catalogDomain.Endpoint) TokenResponse {
	var scope *ScopeResponse
	if token.Scope != nil {
		scope = &ScopeResponse{
			Kind: string(token.Scope.Kind),
			ID:   token.Scope.ID.String(),
		}
	}

	roles := token.Roles
	if roles == nil {
		roles = []string{}
	}

	catalog := make([]EndpointResponse, 0, len(endpoints))
	for _, endpoint := range endpoints {
		catalog = append(catalog, MapEndpointToResponse(endpoint))
	}

	return TokenResponse{
		UserID:    token.UserID.String(),
		Scope:     scope,
		Roles:     roles,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.ExpiresAt,
		Catalog:   catalog,
	}
}
