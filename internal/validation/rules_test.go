package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/identity/internal/errors"
)

func TestEntityName(t *testing.T) {
	rule := EntityName{}

	valid := []string{"acme", "acme-dev", "acme.dev", "dev_team_1", "A1"}
	for _, name := range valid {
		t.Run("valid/"+name, func(t *testing.T) {
			assert.NoError(t, rule.Validate(name))
		})
	}

	invalid := []string{"", "-leading-hyphen", ".leading-dot", "has space", "emoji☃"}
	for _, name := range invalid {
		t.Run("invalid/"+name, func(t *testing.T) {
			assert.Error(t, rule.Validate(name))
		})
	}

	t.Run("enforces max length", func(t *testing.T) {
		rule := EntityName{MaxLength: 4}
		assert.NoError(t, rule.Validate("abcd"))
		assert.Error(t, rule.Validate("abcde"))
	})

	t.Run("rejects non-string", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true}

	t.Run("accepts strong password", func(t *testing.T) {
		assert.NoError(t, rule.Validate("Sup3rSecret"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		assert.Error(t, rule.Validate("Ab1"))
	})

	t.Run("rejects missing uppercase", func(t *testing.T) {
		assert.Error(t, rule.Validate("sup3rsecret"))
	})

	t.Run("rejects missing number", func(t *testing.T) {
		assert.Error(t, rule.Validate("SuperSecret"))
	})
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
