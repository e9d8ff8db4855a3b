// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// CreateRoleRequest contains the parameters for creating a role.
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Validate checks if the create role request is valid.
func (r *CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.EntityName{MaxLength: 64},
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
	)
}

// UpdateRoleRequest contains the mutable fields of a role.
type UpdateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Validate checks if the update role request is valid.
func (r *UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.EntityName{MaxLength: 64},
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
	)
}

// CreateAssignmentRequest contains the parameters for creating a role
// assignment. Creating an assignment that already exists is a no-op.
type CreateAssignmentRequest struct {
	PrincipalKind string `json:"principal_kind" binding:"required"`
	PrincipalID   string `json:"principal_id" binding:"required"`
	ScopeKind     string `json:"scope_kind" binding:"required"`
	ScopeID       string `json:"scope_id" binding:"required"`
	RoleID        string `json:"role_id" binding:"required"`
}

// Validate checks if the create assignment request is valid.
func (r *CreateAssignmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalKind,
			validation.Required,
			validation.In("user", "group"),
		),
		validation.Field(&r.PrincipalID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.ScopeKind,
			validation.Required,
			validation.In("domain", "project"),
		),
		validation.Field(&r.ScopeID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.RoleID,
			validation.Required,
			validation.Length(36, 36),
		),
	)
}

// DeleteAssignmentRequest identifies the assignment triple to remove. Bound
// from query parameters.
type DeleteAssignmentRequest struct {
	PrincipalKind string `form:"principal_kind"`
	PrincipalID   string `form:"principal_id"`
	ScopeKind     string `form:"scope_kind"`
	ScopeID       string `form:"scope_id"`
	RoleID        string `form:"role_id"`
}

// Validate checks if the delete assignment request is valid.
func (r *DeleteAssignmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalKind,
			validation.Required,
			validation.In("user", "group"),
		),
		validation.Field(&r.PrincipalID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.ScopeKind,
			validation.Required,
			validation.In("domain", "project"),
		),
		validation.Field(&r.ScopeID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.RoleID,
			validation.Required,
			validation.Length(36, 36),
		),
	)
}

// ListAssignmentsRequest narrows assignment listings. All fields are
// optional; kind and id fields come in pairs. Bound from query parameters.
type ListAssignmentsRequest struct {
	PrincipalKind string `form:"principal_kind"`
	PrincipalID   string `form:"principal_id"`
	ScopeKind     string `form:"scope_kind"`
	ScopeID       string `form:"scope_id"`
	RoleID        string `form:"role_id"`
}

// Validate checks if the list assignments request is valid.
func (r *ListAssignmentsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalKind,
			validation.In("user", "group"),
			validation.Required.When(r.PrincipalID != "").Error("principal_kind is required when principal_id is set"),
		),
		validation.Field(&r.PrincipalID,
			validation.Length(36, 36),
			validation.Required.When(r.PrincipalKind != "").Error("principal_id is required when principal_kind is set"),
		),
		validation.Field(&r.ScopeKind,
			validation.In("domain", "project"),
			validation.Required.When(r.ScopeID != "").Error("scope_kind is required when scope_id is set"),
		),
		validation.Field(&r.ScopeID,
			validation.Length(36, 36),
			validation.Required.When(r.ScopeKind != "").Error("scope_id is required when scope_kind is set"),
		),
		validation.Field(&r.RoleID,
			validation.Length(36, 36),
		),
	)
}

// EffectiveRolesRequest identifies the principal and scope to resolve
// effective roles for. Bound from query parameters.
type EffectiveRolesRequest struct {
	PrincipalKind string `form:"principal_kind"`
	PrincipalID   string `form:"principal_id"`
	ScopeKind     string `form:"scope_kind"`
	ScopeID       string `form:"scope_id"`
}

// Validate checks if the effective roles request is valid.
func (r *EffectiveRolesRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PrincipalKind,
			validation.Required,
			validation.In("user", "group"),
		),
		validation.Field(&r.PrincipalID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.ScopeKind,
			validation.Required,
			validation.In("domain", "project"),
		),
		validation.Field(&r.ScopeID,
			validation.Required,
			validation.Length(36, 36),
		),
	)
}
