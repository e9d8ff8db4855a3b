package http

import (
	"github.com/gin-gonic/gin"

	tokenDomain "github.com/allisson/identity/internal/token/domain"
)

// tokenContextKey is the gin context key the authenticated token is stored under.
const tokenContextKey = "auth_token"

// SetToken stores the authenticated token on the gin context.
func SetToken(c *gin.Context, token *tokenDomain.Token) {
	c.Set(tokenContextKey, token)
}

// TokenFromContext retrieves the authenticated token from the gin context.
// Returns nil when the request was not authenticated.
func TokenFromContext(c *gin.Context) *tokenDomain.Token {
	value, exists := c.Get(tokenContextKey)
	if !exists {
		return nil
	}

	token, ok := value.(*tokenDomain.Token)
	if !ok {
		return nil
	}

	return token
}
