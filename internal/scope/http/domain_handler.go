// Package http provides HTTP handlers for the scope hierarchy: domains and projects.
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

// DomainHandler handles HTTP requests for domain management operations.
type DomainHandler struct {
	domainUseCase scopeUseCase.DomainUseCase
	logger        *slog.Logger
}

// NewDomainHandler creates a new domain handler with required dependencies.
func NewDomainHandler(domainUseCase scopeUseCase.DomainUseCase, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{
		domainUseCase: domainUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new domain.
// POST /v1/domains - Returns 201 Created with the domain representation.
func (h *DomainHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateDomainRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	domain, err := h.domainUseCase.Create(c.Request.Context(), &scopeDomain.CreateDomainInput{
		Name:        req.Name,
		Description: req.Description,
		Enabled:     req.IsEnabled(),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDomainToResponse(domain))
}

// GetHandler retrieves a domain by ID.
// GET /v1/domains/:id - Returns 200 OK.
func (h *DomainHandler) GetHandler(c *gin.Context) {
	domainID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	domain, err := h.domainUseCase.Get(c.Request.Context(), domainID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainToResponse(domain))
}

// ListHandler retrieves domains with pagination support.
// GET /v1/domains?offset=0&limit=50 - Returns 200 OK.
func (h *DomainHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	domains, err := h.domainUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainsToListResponse(domains))
}

// UpdateHandler modifies a domain's name, description and enabled flag.
// PUT /v1/domains/:id - Returns 200 OK with the updated representation.
func (h *DomainHandler) UpdateHandler(c *gin.Context) {
	domainID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateDomainRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	domain, err := h.domainUseCase.Update(c.Request.Context(), domainID, &scopeDomain.UpdateDomainInput{
		Name:        req.Name,
		Description: req.Description,
		Enabled:     req.Enabled,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainToResponse(domain))
}

// DeleteHandler removes a domain once nothing references it.
// DELETE /v1/domains/:id - Returns 204 No Content.
func (h *DomainHandler) DeleteHandler(c *gin.Context) {
	domainID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.domainUseCase.Delete(c.Request.Context(), domainID); err != nil {
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
