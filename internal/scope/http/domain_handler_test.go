package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
	"github.com/allisson/identity/internal/scope/http/dto"
)

func setupDomainHandler(t *testing.T) (*DomainHandler, *mockDomainUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mockDomainUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDomainHandler(mockUseCase, logger), mockUseCase
}

func TestDomainHandler_CreateHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domainID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mockUseCase.On("Create", mock.Anything, mock.MatchedBy(func(input *scopeDomain.CreateDomainInput) bool {
			return input.Name == "acme" && input.Enabled
		})).
			Return(&scopeDomain.Domain{
				ID:        domainID,
				Name:      "acme",
				Enabled:   true,
				CreatedAt: now,
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/domains", dto.CreateDomainRequest{Name: "acme"})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.DomainResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, domainID.String(), response.ID)
		assert.Equal(t, "acme", response.Name)
		assert.True(t, response.Enabled)
	})

	t.Run("Error_InvalidName", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/domains", dto.CreateDomainRequest{Name: "-bad-name"})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, scopeDomain.ErrDuplicateName).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/domains", dto.CreateDomainRequest{Name: "acme"})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDomainHandler_GetHandler(t *testing.T) {
	t.Run("Success_FoundDomain", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domainID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Get", mock.Anything, domainID).
			Return(&scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/domains/"+domainID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: domainID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domainID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Get", mock.Anything, domainID).
			Return(nil, scopeDomain.ErrDomainNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/domains/"+domainID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: domainID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupDomainHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/domains/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDomainHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_EmptyDomain", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domainID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, domainID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/domains/"+domainID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: domainID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_ScopeInUse", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domainID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, domainID).
			Return(scopeDomain.ErrScopeInUse).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/domains/"+domainID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: domainID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDomainHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultPagination", func(t *testing.T) {
		handler, mockUseCase := setupDomainHandler(t)

		domains := []*scopeDomain.Domain{
			{ID: uuid.Must(uuid.NewV7()), Name: "acme", Enabled: true},
			{ID: uuid.Must(uuid.NewV7()), Name: "globex", Enabled: false},
		}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(domains, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/domains", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListDomainsResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
		assert.Equal(t, "acme", response.Data[0].Name)
	})
}
