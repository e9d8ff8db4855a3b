// Package http provides the authentication surface: token issue, validate,
// rescope and revoke, driven by the X-Auth-Token and X-Subject-Token headers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	"github.com/allisson/identity/internal/httputil"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenDomain "github.com/allisson/identity/internal/token/domain"
	"github.com/allisson/identity/internal/token/http/dto"
	tokenUseCase "github.com/allisson/identity/internal/token/usecase"
	customValidation "github.com/allisson/identity/internal/validation"
)

// CatalogLister returns the catalog view for a token's scope.
type CatalogLister interface {
	List(ctx context.Context, scope *scopeDomain.ScopeRef) ([]*catalogDomain.Endpoint, error)
}

// TokenHandler handles HTTP requests for the token lifecycle.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	catalog      CatalogLister
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(useCase tokenUseCase.TokenUseCase, catalog CatalogLister, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		catalog:      catalog,
		logger:       logger,
	}
}

// IssueHandler authenticates a credential and issues a token.
// POST /v1/auth/tokens - Returns 201 Created with the token representation;
// the token secret travels in the X-Subject-Token response header.
func (h *TokenHandler) IssueHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	domainID, err := uuid.Parse(req.DomainID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid domain_id: must be a valid uuid"), h.logger)
		return
	}

	var scope *scopeDomain.ScopeRef
	if req.Scope != nil {
		ref, err := parseScopeRequest(*req.Scope)
		if err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
		scope = &ref
	}

	token, plainToken, err := h.tokenUseCase.Issue(c.Request.Context(), &tokenDomain.IssueInput{
		DomainID: domainID,
		Name:     req.Name,
		Password: req.Password,
		Scope:    scope,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	endpoints, err := h.catalog.List(c.Request.Context(), token.Scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header(SubjectTokenHeader, plainToken)
	c.JSON(http.StatusCreated, dto.MapTokenToResponse(token, endpoints))
}

// ValidateHandler checks the subject token and returns its frozen view.
// GET /v1/auth/tokens - Returns 200 OK with the token representation.
func (h *TokenHandler) ValidateHandler(c *gin.Context) {
	subjectToken := c.GetHeader(SubjectTokenHeader)
	if subjectToken == "" {
		httputil.HandleErrorGin(c, tokenDomain.ErrMissingToken, h.logger)
		return
	}

	token, err := h.tokenUseCase.Validate(c.Request.Context(), subjectToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	endpoints, err := h.catalog.List(c.Request.Context(), token.Scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token, endpoints))
}

// RescopeHandler exchanges the subject token for a new token in another scope.
// POST /v1/auth/tokens/rescope - Returns 201 Created; the new secret travels
// in the X-Subject-Token response header, the old token stays valid.
func (h *TokenHandler) RescopeHandler(c *gin.Context) {
	subjectToken := c.GetHeader(SubjectTokenHeader)
	if subjectToken == "" {
		httputil.HandleErrorGin(c, tokenDomain.ErrMissingToken, h.logger)
		return
	}

	var req dto.RescopeTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	newScope, err := parseScopeRequest(req.Scope)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	token, plainToken, err := h.tokenUseCase.Rescope(c.Request.Context(), subjectToken, newScope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	endpoints, err := h.catalog.List(c.Request.Context(), token.Scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header(SubjectTokenHeader, plainToken)
	c.JSON(http.StatusCreated, dto.MapTokenToResponse(token, endpoints))
}

// RevokeHandler revokes the subject token.
// DELETE /v1/auth/tokens - Returns 204 No Content, idempotently.
func (h *TokenHandler) RevokeHandler(c *gin.Context) {
	subjectToken := c.GetHeader(SubjectTokenHeader)
	if subjectToken == "" {
		httputil.HandleErrorGin(c, tokenDomain.ErrMissingToken, h.logger)
		return
	}

	if err := h.tokenUseCase.Revoke(c.Request.Context(), subjectToken); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseScopeRequest converts a scope request into a domain scope reference.
func parseScopeRequest(req dto.ScopeRequest) (scopeDomain.ScopeRef, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return scopeDomain.ScopeRef{}, fmt.Errorf("invalid scope id: must be a valid uuid")
	}

	switch scopeDomain.ScopeKind(req.Kind) {
	case scopeDomain.ScopeKindDomain:
		return scopeDomain.DomainRef(id), nil
	case scopeDomain.ScopeKindProject:
		return scopeDomain.ProjectRef(id), nil
	default:
		return scopeDomain.ScopeRef{}, fmt.Errorf("invalid scope kind: must be domain or project")
	}
}
