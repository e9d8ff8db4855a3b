package dto

import (
	"time"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
)

// UserResponse represents a user in API responses. The password hash is never
// exposed.
type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Enabled          bool      `json:"enabled"`
	DomainID         string    `json:"domain_id"`
	DefaultProjectID *string   `json:"default_project_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// MapUserToResponse converts a user model to its API representation.
func MapUserToResponse(user *principalDomain.User) UserResponse {
	var defaultProjectID *string
	if user.DefaultProjectID != nil {
		id := user.DefaultProjectID.String()
		defaultProjectID = &id
	}

	return UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		Description:      user.Description,
		Enabled:          user.Enabled,
		DomainID:         user.DomainID.String(),
		DefaultProjectID: defaultProjectID,
		CreatedAt:        user.CreatedAt,
	}
}

// ListUsersResponse represents a paginated list of users in API responses.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts a slice of users to a list response.
func MapUsersToListResponse(users []*principalDomain.User) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, MapUserToResponse(user))
	}

	return ListUsersResponse{
		Data: data,
	}
}

// GroupResponse represents a group in API responses.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DomainID    string    `json:"domain_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapGroupToResponse converts a group model to its API representation.
func MapGroupToResponse(group *principalDomain.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		DomainID:    group.DomainID.String(),
		CreatedAt:   group.CreatedAt,
	}
}

// ListGroupsResponse represents a paginated list of groups in API responses.
type ListGroupsResponse struct {
	Data []GroupResponse `json:"data"`
}

// MapGroupsToListResponse converts a slice of groups to a list response.
func MapGroupsToListResponse(groups []*principalDomain.Group) ListGroupsResponse {
	data := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		data = append(data, MapGroupToResponse(group))
	}

	return ListGroupsResponse{
		Data: data,
	}
}
