package dto

import (
	validation "github.com/jellydator/validation"
)

// ScopeRequest identifies the scope a token should be bound to.
type ScopeRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// Validate validates the scope reference fields.
func (r ScopeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In("domain", "project")),
		validation.Field(&r.ID, validation.Required, validation.Length(36, 36)),
	)
}

// IssueTokenRequest represents the request body for issuing a token.
type IssueTokenRequest struct {
	DomainID string        `json:"domain_id"`
	Name     string        `json:"name"`
	Password string        `json:"password"`
	Scope    *ScopeRequest `json:"scope"`
}

// Validate validates the issue token request fields.
func (r IssueTokenRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.DomainID, validation.Required, validation.Length(36, 36)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required),
	); err != nil {
		return err
	}

	if r.Scope != nil {
		return r.Scope.Validate()
	}

	return nil
}

// RescopeTokenRequest represents the request body for rescoping a token.
type RescopeTokenRequest struct {
	Scope ScopeRequest `json:"scope"`
}

// Validate validates the rescope token request fields.
func (r RescopeTokenRequest) Validate() error {
	return r.Scope.Validate()
}
