package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/identity/internal/httputil"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	"github.com/allisson/identity/internal/role/http/dto"
	roleUseCase "github.com/allisson/identity/internal/role/usecase"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	customValidation "github.com/allisson/identity/internal/validation"
)

// AssignmentHandler handles HTTP requests for role assignment management and
// effective-role resolution.
type AssignmentHandler struct {
	assignmentUseCase roleUseCase.AssignmentUseCase
	resolver          roleUseCase.Resolver
	logger            *slog.Logger
}

// NewAssignmentHandler creates a new assignment handler with required dependencies.
func NewAssignmentHandler(
	assignmentUseCase roleUseCase.AssignmentUseCase,
	resolver roleUseCase.Resolver,
	logger *slog.Logger,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUseCase: assignmentUseCase,
		resolver:          resolver,
		logger:            logger,
	}
}

// CreateHandler grants a role to a principal at a scope. Granting an already
// existing assignment succeeds without effect.
// POST /v1/role-assignments - Returns 204 No Content.
func (h *AssignmentHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAssignmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principal, scope, roleID, err := parseAssignmentTriple(
		req.PrincipalKind, req.PrincipalID, req.ScopeKind, req.ScopeID, req.RoleID,
	)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	err = h.assignmentUseCase.Create(c.Request.Context(), &roleDomain.CreateAssignmentInput{
		Principal: principal,
		Scope:     scope,
		RoleID:    roleID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler revokes a role from a principal at a scope.
// DELETE /v1/role-assignments?principal_kind=...&principal_id=...&scope_kind=...&scope_id=...&role_id=...
// Returns 204 No Content.
func (h *AssignmentHandler) DeleteHandler(c *gin.Context) {
	var req dto.DeleteAssignmentRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principal, scope, roleID, err := parseAssignmentTriple(
		req.PrincipalKind, req.PrincipalID, req.ScopeKind, req.ScopeID, req.RoleID,
	)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.assignmentUseCase.Delete(c.Request.Context(), principal, scope, roleID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListHandler retrieves assignments matching the optional filters.
// GET /v1/role-assignments?principal_kind=...&offset=0&limit=50 - Returns 200 OK.
func (h *AssignmentHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.ListAssignmentsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	filter, err := buildAssignmentFilter(&req)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	assignments, err := h.assignmentUseCase.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssignmentsToListResponse(assignments))
}

// EffectiveRolesHandler resolves the roles a principal holds in a scope,
// accounting for group membership and scope inheritance.
// GET /v1/effective-roles?principal_kind=...&principal_id=...&scope_kind=...&scope_id=...
// Returns 200 OK with the role list; disabled entities yield an empty list.
func (h *AssignmentHandler) EffectiveRolesHandler(c *gin.Context) {
	var req dto.EffectiveRolesRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principal, err := parsePrincipalRef(req.PrincipalKind, req.PrincipalID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	scope, err := parseScopeRef(req.ScopeKind, req.ScopeID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	roles, err := h.resolver.EffectiveRoles(c.Request.Context(), principal, scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRolesToListResponse(roles))
}

// parsePrincipalRef builds a PrincipalRef from its wire representation.
func parsePrincipalRef(kind, id string) (principalDomain.PrincipalRef, error) {
	principalID, err := uuid.Parse(id)
	if err != nil {
		return principalDomain.PrincipalRef{}, fmt.Errorf("invalid principal_id: must be a valid uuid")
	}
	return principalDomain.PrincipalRef{Kind: principalDomain.PrincipalKind(kind), ID: principalID}, nil
}

// parseScopeRef builds a ScopeRef from its wire representation.
func parseScopeRef(kind, id string) (scopeDomain.ScopeRef, error) {
	scopeID, err := uuid.Parse(id)
	if err != nil {
		return scopeDomain.ScopeRef{}, fmt.Errorf("invalid scope_id: must be a valid uuid")
	}
	return scopeDomain.ScopeRef{Kind: scopeDomain.ScopeKind(kind), ID: scopeID}, nil
}

// parseAssignmentTriple builds the (principal, scope, role) triple from its
// wire representation.
func parseAssignmentTriple(
	principalKind, principalID, scopeKind, scopeID, roleID string,
) (principalDomain.PrincipalRef, scopeDomain.ScopeRef, uuid.UUID, error) {
	principal, err := parsePrincipalRef(principalKind, principalID)
	if err != nil {
		return principalDomain.PrincipalRef{}, scopeDomain.ScopeRef{}, uuid.Nil, err
	}

	scope, err := parseScopeRef(scopeKind, scopeID)
	if err != nil {
		return principalDomain.PrincipalRef{}, scopeDomain.ScopeRef{}, uuid.Nil, err
	}

	rID, err := uuid.Parse(roleID)
	if err != nil {
		return principalDomain.PrincipalRef{}, scopeDomain.ScopeRef{}, uuid.Nil,
			fmt.Errorf("invalid role_id: must be a valid uuid")
	}

	return principal, scope, rID, nil
}

// buildAssignmentFilter converts the wire filter into the domain filter.
func buildAssignmentFilter(req *dto.ListAssignmentsRequest) (*roleDomain.AssignmentFilter, error) {
	filter := &roleDomain.AssignmentFilter{}

	if req.PrincipalKind != "" {
		principal, err := parsePrincipalRef(req.PrincipalKind, req.PrincipalID)
		if err != nil {
			return nil, err
		}
		filter.Principal = &principal
	}

	if req.ScopeKind != "" {
		scope, err := parseScopeRef(req.ScopeKind, req.ScopeID)
		if err != nil {
			return nil, err
		}
		filter.Scope = &scope
	}

	if req.RoleID != "" {
		roleID, err := uuid.Parse(req.RoleID)
		if err != nil {
			return nil, fmt.Errorf("invalid role_id: must be a valid uuid")
		}
		filter.RoleID = &roleID
	}

	return filter, nil
}
