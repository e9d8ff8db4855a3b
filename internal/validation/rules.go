// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/identity/internal/errors"
)

var (
	// entityNameRegex matches names for domains, projects, users, groups and roles.
	entityNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// EntityName validates scope/principal/role names: must start with an
// alphanumeric character and contain only alphanumerics, dots, underscores
// and hyphens, within the configured length bounds.
type EntityName struct {
	MaxLength int
}

// Validate checks if the value is a well-formed entity name.
func (n EntityName) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_entity_name", "name must be a string")
	}

	maxLength := n.MaxLength
	if maxLength == 0 {
		maxLength = 64
	}

	if len(s) == 0 || len(s) > maxLength {
		return validation.NewError(
			"validation_entity_name_length",
			fmt.Sprintf("name must be between 1 and %d characters", maxLength),
		)
	}

	if !entityNameRegex.MatchString(s) {
		return validation.NewError(
			"validation_entity_name_charset",
			"name must start with an alphanumeric character and contain only alphanumerics, dots, underscores and hyphens",
		)
	}

	return nil
}

// PasswordStrength validates a password meets minimum security requirements.
type PasswordStrength struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireNumber bool
}

// Validate checks if the password meets the configured requirements.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}

	if p.RequireUpper && !hasUpperCase(s) {
		return validation.NewError(
			"validation_password_uppercase",
			"password must contain at least one uppercase letter",
		)
	}

	if p.RequireLower && !hasLowerCase(s) {
		return validation.NewError(
			"validation_password_lowercase",
			"password must contain at least one lowercase letter",
		)
	}

	if p.RequireNumber && !hasNumber(s) {
		return validation.NewError(
			"validation_password_number",
			"password must contain at least one number",
		)
	}

	return nil
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasLowerCase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
