package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/identity/internal/httputil"
	"github.com/allisson/identity/internal/scope/http/dto"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	scopeUseCase "github.com/allisson/identity/internal/scope/usecase"
	customValidation "github.com/allisson/identity/internal/validation"
)

// ProjectHandler handles HTTP requests for project management operations.
type ProjectHandler struct {
	projectUseCase scopeUseCase.ProjectUseCase
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler with required dependencies.
func NewProjectHandler(projectUseCase scopeUseCase.ProjectUseCase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new project under a domain.
// POST /v1/projects - Returns 201 Created with the project representation.
func (h *ProjectHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateProjectRequest

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

	var parentID *uuid.UUID
	if req.ParentID != "" {
		id, err := uuid.Parse(req.ParentID)
		if err != nil {
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid parent_id: must be a valid uuid"), h.logger)
			return
		}
		parentID = &id
	}

	project, err := h.projectUseCase.Create(c.Request.Context(), &scopeDomain.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Enabled:     req.IsEnabled(),
		DomainID:    domainID,
		ParentID:    parentID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProjectToResponse(project))
}

// GetHandler retrieves a project by ID.
// GET /v1/projects/:id - Returns 200 OK.
func (h *ProjectHandler) GetHandler(c *gin.Context) {
	projectID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	project, err := h.projectUseCase.Get(c.Request.Context(), projectID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// ListHandler retrieves projects with pagination support.
// GET /v1/projects?offset=0&limit=50 - Returns 200 OK.
func (h *ProjectHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	projects, err := h.projectUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectsToListResponse(projects))
}

// UpdateHandler modifies a project's name, description and enabled flag.
// PUT /v1/projects/:id - Returns 200 OK with the updated representation.
func (h *ProjectHandler) UpdateHandler(c *gin.Context) {
	projectID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateProjectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	project, err := h.projectUseCase.Update(c.Request.Context(), projectID, &scopeDomain.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Enabled:     req.Enabled,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProjectToResponse(project))
}

// DeleteHandler removes a project with no children.
// DELETE /v1/projects/:id - Returns 204 No Content.
func (h *ProjectHandler) DeleteHandler(c *gin.Context) {
	projectID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), projectID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
