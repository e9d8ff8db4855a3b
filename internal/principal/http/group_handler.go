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

// GroupHandler handles HTTP requests for group management operations.
type GroupHandler struct {
	groupUseCase principalUseCase.GroupUseCase
	logger       *slog.Logger
}

// NewGroupHandler creates a new group handler with required dependencies.
func NewGroupHandler(groupUseCase principalUseCase.GroupUseCase, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new group.
// POST /v1/groups - Returns 201 Created.
func (h *GroupHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateGroupRequest

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

	group, err := h.groupUseCase.Create(c.Request.Context(), &principalDomain.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		DomainID:    domainID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGroupToResponse(group))
}

// GetHandler retrieves a group by ID.
// GET /v1/groups/:id - Returns 200 OK.
func (h *GroupHandler) GetHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	group, err := h.groupUseCase.Get(c.Request.Context(), groupID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupToResponse(group))
}

// ListHandler retrieves groups with pagination support.
// GET /v1/groups?offset=0&limit=50 - Returns 200 OK.
func (h *GroupHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	groups, err := h.groupUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupsToListResponse(groups))
}

// UpdateHandler modifies a group's name and description.
// PUT /v1/groups/:id - Returns 200 OK.
func (h *GroupHandler) UpdateHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateGroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	group, err := h.groupUseCase.Update(c.Request.Context(), groupID, &principalDomain.UpdateGroupInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGroupToResponse(group))
}

// DeleteHandler removes a group with its assignments and membership edges.
// DELETE /v1/groups/:id - Returns 204 No Content.
func (h *GroupHandler) DeleteHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.groupUseCase.Delete(c.Request.Context(), groupID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// AddMemberHandler adds a user to a group.
// POST /v1/groups/:id/members - Returns 204 No Content. Idempotent.
func (h *GroupHandler) AddMemberHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.AddMemberRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid user_id: must be a valid uuid"), h.logger)
		return
	}

	if err := h.groupUseCase.AddMember(c.Request.Context(), groupID, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RemoveMemberHandler removes a user from a group.
// DELETE /v1/groups/:id/members/:user_id - Returns 204 No Content. Idempotent.
func (h *GroupHandler) RemoveMemberHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid user_id parameter: must be a valid uuid"), h.logger)
		return
	}

	if err := h.groupUseCase.RemoveMember(c.Request.Context(), groupID, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ListMembersHandler retrieves the users belonging to a group.
// GET /v1/groups/:id/members - Returns 200 OK.
func (h *GroupHandler) ListMembersHandler(c *gin.Context) {
	groupID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	members, err := h.groupUseCase.ListMembers(c.Request.Context(), groupID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToListResponse(members))
}
