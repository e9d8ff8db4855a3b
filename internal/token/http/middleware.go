package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/httputil"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
)

// Header names for the authentication surface. The auth token authenticates
// the caller; the subject token is the one being operated on.
const (
	AuthTokenHeader    = "X-Auth-Token"
	SubjectTokenHeader = "X-Subject-Token"
)

// AuthenticationMiddleware validates the X-Auth-Token header and stores the
// authenticated token on the context. Requests without a valid token are
// rejected before reaching the handler.
func AuthenticationMiddleware(useCase tokenUseCase.TokenUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainToken := c.GetHeader(AuthTokenHeader)
		if plainToken == "" {
			httputil.HandleErrorGin(c, tokenDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		token, err := useCase.Validate(c.Request.Context(), plainToken)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		SetToken(c, token)
		c.Next()
	}
}
