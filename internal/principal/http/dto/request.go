// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// passwordRules is the shared password policy for create and change requests.
var passwordRules = []validation.Rule{
	validation.Required,
	validation.Length(8, 128),
	customValidation.PasswordStrength{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	},
}

// CreateUserRequest contains the parameters for creating a user.
type CreateUserRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	Enabled          *bool  `json:"enabled"`
	DomainID         string `json:"domain_id" binding:"required"`
	DefaultProjectID string `json:"default_project_id"`
	Password         string `json:"password" binding:"required"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.EntityName{MaxLength: 64},
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
		validation.Field(&r.DomainID,
			validation.Required,
			validation.Length(36, 36),
		),
		validation.Field(&r.DefaultProjectID,
			validation.Length(36, 36),
		),
		validation.Field(&r.Password, passwordRules...),
	)
}

// IsEnabled returns the enabled flag, defaulting to true when omitted.
func (r *CreateUserRequest) IsEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

// UpdateUserRequest contains the mutable fields of a user.
type UpdateUserRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	Enabled          bool   `json:"enabled"`
	DefaultProjectID string `json:"default_project_id"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.EntityName{MaxLength: 64},
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
		validation.Field(&r.DefaultProjectID,
			validation.Length(36, 36),
		),
	)
}

// ChangePasswordRequest contains the new password for a user.
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// Validate checks if the change password request is valid.
func (r *ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password, passwordRules...),
	)
}

// CreateGroupRequest contains the parameters for creating a group.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DomainID    string `json:"domain_id" binding:"required"`
}

// Validate checks if the create group request is valid.
func (r *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.EntityName{MaxLength: 64},
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
		validation.Field(&r.DomainID,
			validation.Required,
			validation.Length(36, 36),
		),
	)
}

// UpdateGroupRequest contains the mutable fields of a group.
type UpdateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Validate checks if the update group request is valid.
func (r *UpdateGroupRequest) Validate() error {
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

// AddMemberRequest contains the user to add to a group.
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Validate checks if the add member request is valid.
func (r *AddMemberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID,
			validation.Required,
			validation.Length(36, 36),
		),
	)
}
