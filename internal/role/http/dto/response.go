package dto

import (
	"time"

	roleDomain "github.com/allisson/identity/internal/role/domain"
)

// RoleResponse represents a role in API responses.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapRoleToResponse converts a role model to its API representation.
func MapRoleToResponse(role *roleDomain.Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
	}
}

// ListRolesResponse represents a paginated list of roles in API responses.
type ListRolesResponse struct {
	Data []RoleResponse `json:"data"`
}

// MapRolesToListResponse converts a slice of roles to a list response.
func MapRolesToListResponse(roles []*roleDomain.Role) ListRolesResponse {
	data := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		data = append(data, MapRoleToResponse(role))
	}

	return ListRolesResponse{
		Data: data,
	}
}

// AssignmentResponse represents a role assignment in API responses.
type AssignmentResponse struct {
	ID            string    `json:"id"`
	PrincipalKind string    `json:"principal_kind"`
	PrincipalID   string    `json:"principal_id"`
	ScopeKind     string    `json:"scope_kind"`
	ScopeID       string    `json:"scope_id"`
	RoleID        string    `json:"role_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// MapAssignmentToResponse converts an assignment model to its API representation.
func MapAssignmentToResponse(assignment *roleDomain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            assignment.ID.String(),
		PrincipalKind: string(assignment.Principal.Kind),
		PrincipalID:   assignment.Principal.ID.String(),
		ScopeKind:     string(assignment.Scope.Kind),
		ScopeID:       assignment.Scope.ID.String(),
		RoleID:        assignment.RoleID.String(),
		CreatedAt:     assignment.CreatedAt,
	}
}

// ListAssignmentsResponse represents a paginated list of assignments in API
// responses.
type ListAssignmentsResponse struct {
	Data []AssignmentResponse `json:"data"`
}

// MapAssignmentsToListResponse converts a slice of assignments to a list response.
func MapAssignmentsToListResponse(assignments []*roleDomain.Assignment) ListAssignmentsResponse {
	data := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		data = append(data, MapAssignmentToResponse(assignment))
	}

	return ListAssignmentsResponse{
		Data: data,
	}
}
