package domain

import (
	"github.com/allisson/identity/internal/errors"
)

// Token lifecycle errors.
var (
	// ErrTokenNotFound indicates the presented token does not match any stored
	// token.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrTokenExpired indicates the token is past its expiry. Terminal.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenRevoked indicates the token was revoked, either individually or
	// through the per-user watermark. Terminal.
	ErrTokenRevoked = errors.Wrap(errors.ErrUnauthorized, "token revoked")

	// ErrScopeForbidden indicates the authenticated principal resolves to zero
	// roles in the requested scope, so no scoped token is issued.
	ErrScopeForbidden = errors.Wrap(errors.ErrForbidden, "no roles in requested scope")

	// ErrMissingToken indicates the request carried no token header.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing token header")
)
