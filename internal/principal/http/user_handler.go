// Package http provides HTTP handlers for principal management: users, groups
// and group membership.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/identity/internal/httputil"
	"github.com/allisson/identity/internal/principal/http/dto"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	principalUseCase "github.com/allisson/identity/internal/principal/usecase"
	customValidation "github.com/allisson/identity/internal/validation"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	userUseCase principalUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase principalUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new user.
// POST /v1/users - Returns 201 Created. The password is hashed before storage
// and never echoed back.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateUserRequest

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

	var defaultProjectID *uuid.UUID
	if req.DefaultProjectID != "" {
		id, err := uuid.Parse(req.DefaultProjectID)
		if err != nil {
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid default_project_id: must be a valid uuid"), h.logger)
			return
		}
		defaultProjectID = &id
	}

	user, err := h.userUseCase.Create(c.Request.Context(), &principalDomain.CreateUserInput{
		Name:             req.Name,
		Description:      req.Description,
		Enabled:          req.IsEnabled(),
		DomainID:         domainID,
		DefaultProjectID: defaultProjectID,
		Password:         req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetHandler retrieves a user by ID.
// GET /v1/users/:id - Returns 200 OK.
func (h *UserHandler) GetHandler(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ListHandler retrieves users with pagination support.
// GET /v1/users?offset=0&limit=50 - Returns 200 OK.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(users))
}

// UpdateHandler modifies a user.
// PUT /v1/users/:id - Returns 200 OK. Disabling a user bulk-revokes all of
// their tokens.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var defaultProjectID *uuid.UUID
	if req.DefaultProjectID != "" {
		id, err := uuid.Parse(req.DefaultProjectID)
		if err != nil {
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid default_project_id: must be a valid uuid"), h.logger)
			return
		}
		defaultProjectID = &id
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, &principalDomain.UpdateUserInput{
		Name:             req.Name,
		Description:      req.Description,
		Enabled:          req.Enabled,
		DefaultProjectID: defaultProjectID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ChangePasswordHandler replaces a user's password and bulk-revokes their tokens.
// POST /v1/users/:id/password - Returns 204 No Content.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.ChangePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.userUseCase.ChangePassword(c.Request.Context(), userID, req.Password); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler removes a user with all their assignments, memberships and tokens.
// DELETE /v1/users/:id - Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseIDParam extracts and parses the ":id" path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id parameter: must be a valid uuid")
	}
	return id, nil
}
