// Package http provides HTTP handlers for the service catalog: endpoint
// management and the scoped catalog read.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogDomain "github.com/allisson/identity/internal/catalog/domain"
	"github.com/allisson/identity/internal/catalog/http/dto"
	catalogUseCase "github.com/allisson/identity/internal/catalog/usecase"
	"github.com/allisson/identity/internal/httputil"
	customValidation "github.com/allisson/identity/internal/validation"
)

// EndpointHandler handles HTTP requests for endpoint management operations.
type EndpointHandler struct {
	catalogUseCase catalogUseCase.CatalogUseCase
	logger         *slog.Logger
}

// NewEndpointHandler creates a new endpoint handler with required dependencies.
func NewEndpointHandler(useCase catalogUseCase.CatalogUseCase, logger *slog.Logger) *EndpointHandler {
	return &EndpointHandler{
		catalogUseCase: useCase,
		logger:         logger,
	}
}

// CreateHandler registers a new endpoint.
// POST /v1/endpoints - Returns 201 Created with the endpoint representation.
func (h *EndpointHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateEndpointRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	endpoint, err := h.catalogUseCase.Create(c.Request.Context(), &catalogDomain.CreateEndpointInput{
		Name: req.Name,
		Type: req.Type,
		URL:  req.URL,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEndpointToResponse(endpoint))
}

// GetHandler retrieves an endpoint by ID.
// GET /v1/endpoints/:id - Returns 200 OK.
func (h *EndpointHandler) GetHandler(c *gin.Context) {
	endpointID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	endpoint, err := h.catalogUseCase.Get(c.Request.Context(), endpointID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEndpointToResponse(endpoint))
}

// ListHandler retrieves all registered endpoints with raw URL templates.
// GET /v1/endpoints - Returns 200 OK.
func (h *EndpointHandler) ListHandler(c *gin.Context) {
	endpoints, err := h.catalogUseCase.List(c.Request.Context(), nil)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEndpointsToListResponse(endpoints))
}

// UpdateHandler modifies an endpoint's name, type and URL.
// PUT /v1/endpoints/:id - Returns 200 OK with the updated representation.
func (h *EndpointHandler) UpdateHandler(c *gin.Context) {
	endpointID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateEndpointRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	endpoint, err := h.catalogUseCase.Update(c.Request.Context(), endpointID, &catalogDomain.UpdateEndpointInput{
		Name: req.Name,
		Type: req.Type,
		URL:  req.URL,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEndpointToResponse(endpoint))
}

// DeleteHandler removes an endpoint.
// DELETE /v1/endpoints/:id - Returns 204 No Content.
func (h *EndpointHandler) DeleteHandler(c *gin.Context) {
	endpointID, err := parseIDParam(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.catalogUseCase.Delete(c.Request.Context(), endpointID); err != nil {
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
