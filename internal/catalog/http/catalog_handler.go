package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/catalog/http/dto"
	catalogUseCase "github.com/allisson/identity/internal/catalog/usecase"
	"github.com/allisson/identity/internal/httputil"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	tokenHTTP "github.com/allisson/identity/internal/token/http"
)

// CatalogHandler serves the catalog view for the authenticated token.
type CatalogHandler struct {
	catalogUseCase catalogUseCase.CatalogUseCase
	logger         *slog.Logger
}

// NewCatalogHandler creates a new catalog handler with required dependencies.
func NewCatalogHandler(useCase catalogUseCase.CatalogUseCase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: useCase,
		logger:         logger,
	}
}

// ListHandler returns the catalog as seen through the caller's token scope.
// Project-scoped tokens get endpoint URLs with the project placeholder filled.
// GET /v1/catalog - Returns 200 OK.
func (h *CatalogHandler) ListHandler(c *gin.Context) {
	var scope *scopeDomain.ScopeRef
	if token := tokenHTTP.TokenFromContext(c); token != nil {
		scope = token.Scope
	}

	endpoints, err := h.catalogUseCase.List(c.Request.Context(), scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEndpointsToListResponse(endpoints))
}
