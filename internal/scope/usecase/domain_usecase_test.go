package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

func TestDomainUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateNewDomain", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("GetByName", ctx, "acme").
			Return(nil, scopeDomain.ErrDomainNotFound).
			Once()
		domainRepo.On("Create", ctx, mock.MatchedBy(func(d *scopeDomain.Domain) bool {
			return d.Name == "acme" && d.Enabled && d.ID != uuid.Nil
		})).
			Return(nil).
			Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		domain, err := uc.Create(ctx, &scopeDomain.CreateDomainInput{Name: "acme", Enabled: true})

		assert.NoError(t, err)
		assert.NotNil(t, domain)
		assert.Equal(t, "acme", domain.Name)
		domainRepo.AssertExpectations(t)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		existing := &scopeDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "acme"}
		domainRepo := &mockDomainRepository{}
		domainRepo.On("GetByName", ctx, "acme").Return(existing, nil).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		domain, err := uc.Create(ctx, &scopeDomain.CreateDomainInput{Name: "acme", Enabled: true})

		assert.ErrorIs(t, err, scopeDomain.ErrDuplicateName)
		assert.Nil(t, domain)
		domainRepo.AssertExpectations(t)
	})
}

func TestDomainUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DisableDomain", func(t *testing.T) {
		domainID := uuid.Must(uuid.NewV7())
		existing := &scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}

		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(existing, nil).Once()
		domainRepo.On("Update", ctx, mock.MatchedBy(func(d *scopeDomain.Domain) bool {
			return d.ID == domainID && !d.Enabled
		})).
			Return(nil).
			Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		domain, err := uc.Update(ctx, domainID, &scopeDomain.UpdateDomainInput{Name: "acme", Enabled: false})

		assert.NoError(t, err)
		assert.False(t, domain.Enabled)
		domainRepo.AssertExpectations(t)
	})

	t.Run("Error_RenameToExistingName", func(t *testing.T) {
		domainID := uuid.Must(uuid.NewV7())
		existing := &scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}
		other := &scopeDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "globex"}

		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(existing, nil).Once()
		domainRepo.On("GetByName", ctx, "globex").Return(other, nil).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		_, err := uc.Update(ctx, domainID, &scopeDomain.UpdateDomainInput{Name: "globex", Enabled: true})

		assert.ErrorIs(t, err, scopeDomain.ErrDuplicateName)
		domainRepo.AssertExpectations(t)
	})

	t.Run("Error_DomainNotFound", func(t *testing.T) {
		domainID := uuid.Must(uuid.NewV7())
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(nil, scopeDomain.ErrDomainNotFound).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		_, err := uc.Update(ctx, domainID, &scopeDomain.UpdateDomainInput{Name: "acme"})

		assert.ErrorIs(t, err, scopeDomain.ErrDomainNotFound)
	})
}

func TestDomainUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())
	existing := &scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}

	t.Run("Success_CascadesAssignments", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(existing, nil).Once()
		domainRepo.On("Delete", ctx, domainID).Return(nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("CountByDomain", ctx, domainID).Return(0, nil).Once()

		counter := &mockPrincipalCounter{}
		counter.On("CountUsersByDomain", ctx, domainID).Return(0, nil).Once()
		counter.On("CountGroupsByDomain", ctx, domainID).Return(0, nil).Once()

		remover := &mockAssignmentRemover{}
		remover.On("DeleteByScope", ctx, scopeDomain.DomainRef(domainID)).Return(nil).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, projectRepo, remover, counter)
		err := uc.Delete(ctx, domainID)

		assert.NoError(t, err)
		domainRepo.AssertExpectations(t)
		remover.AssertExpectations(t)
	})

	t.Run("Error_ScopeInUse_Projects", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(existing, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("CountByDomain", ctx, domainID).Return(2, nil).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, &mockPrincipalCounter{})
		err := uc.Delete(ctx, domainID)

		assert.ErrorIs(t, err, scopeDomain.ErrScopeInUse)
		domainRepo.AssertNotCalled(t, "Delete", ctx, domainID)
	})

	t.Run("Error_ScopeInUse_Users", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(existing, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("CountByDomain", ctx, domainID).Return(0, nil).Once()

		counter := &mockPrincipalCounter{}
		counter.On("CountUsersByDomain", ctx, domainID).Return(1, nil).Once()

		uc := NewDomainUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, counter)
		err := uc.Delete(ctx, domainID)

		assert.ErrorIs(t, err, scopeDomain.ErrScopeInUse)
	})
}
