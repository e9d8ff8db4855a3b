package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	customValidation "github.com/allisson/identity/internal/validation"
)

// CreateEndpointRequest represents the request body for registering an endpoint.
type CreateEndpointRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Validate validates the create endpoint request fields.
func (r CreateEndpointRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, customValidation.EntityName{MaxLength: 64}),
		validation.Field(&r.Type, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.URL, validation.Required, is.RequestURL),
	)
}

// UpdateEndpointRequest represents the request body for updating an endpoint.
type UpdateEndpointRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Validate validates the update endpoint request fields.
func (r UpdateEndpointRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, customValidation.EntityName{MaxLength: 64}),
		validation.Field(&r.Type, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.URL, validation.Required, is.RequestURL),
	)
}
