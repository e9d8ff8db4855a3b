// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/identity/internal/validation"
)

// CreateDomainRequest contains the parameters for creating a domain.
type CreateDomainRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Enabled     *bool  `json:"enabled"`
}

// Validate checks if the create domain request is valid.
func (r *CreateDomainRequest) Validate() error {
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

// IsEnabled returns the enabled flag, defaulting to true when omitted.
func (r *CreateDomainRequest) IsEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

// UpdateDomainRequest contains the mutable fields of a domain.
type UpdateDomainRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Validate checks if the update domain request is valid.
func (r *UpdateDomainRequest) Validate() error {
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

// CreateProjectRequest contains the parameters for creating a project.
// ParentID is optional; when set the parent must live in the same domain.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Enabled     *bool  `json:"enabled"`
	DomainID    string `json:"domain_id" binding:"required"`
	ParentID    string `json:"parent_id"`
}

// Validate checks if the create project request is valid.
func (r *CreateProjectRequest) Validate() error {
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
		validation.Field(&r.ParentID,
			validation.Length(36, 36),
		),
	)
}

// IsEnabled returns the enabled flag, defaulting to true when omitted.
func (r *CreateProjectRequest) IsEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

// UpdateProjectRequest contains the mutable fields of a project.
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Validate checks if the update project request is valid.
func (r *UpdateProjectRequest) Validate() error {
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
